package service

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"placeholder/app/jsonplaceholder"
	"placeholder/app/models"

	"github.com/goccy/go-json"
)

// demoTimeFormat is the timestamp layout the demo inserts into a post.
const demoTimeFormat = "01/02/2006 15:04:05"

// clientCommand parses the shared client flags, then runs fn with the
// remaining positional arguments.
func clientCommand(name string, args []string, minArgs int, usage string, fn func(ctx context.Context, c *jsonplaceholder.Client, fs *flag.FlagSet) error, setup ...func(fs *flag.FlagSet)) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	baseURL := fs.String("base-url", "", "API base URL (defaults to the configured one)")
	for _, s := range setup {
		s(fs)
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < minArgs {
		fmt.Printf("Usage: placeholder %s\n", usage)
		return 1
	}

	client, err := newClient(*baseURL)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	if err := fn(context.Background(), client, fs); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}

// HandleClientCommand runs one of the API client commands.
func HandleClientCommand(cmd string, args []string) int {
	switch cmd {
	case "post":
		return clientCommand(cmd, args, 1, "post [-base-url U] <id>", func(ctx context.Context, c *jsonplaceholder.Client, fs *flag.FlagSet) error {
			id, err := parseID(fs.Arg(0))
			if err != nil {
				return err
			}
			rec, err := c.GetPostRecord(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(rec)
		})
	case "field":
		return clientCommand(cmd, args, 2, "field [-base-url U] <id> <field>", func(ctx context.Context, c *jsonplaceholder.Client, fs *flag.FlagSet) error {
			id, err := parseID(fs.Arg(0))
			if err != nil {
				return err
			}
			v, err := c.GetPostField(ctx, id, fs.Arg(1))
			if err != nil {
				return err
			}
			return printJSON(v)
		})
	case "insert":
		return clientCommand(cmd, args, 3, "insert [-base-url U] <id> <key> <value>", func(ctx context.Context, c *jsonplaceholder.Client, fs *flag.FlagSet) error {
			id, err := parseID(fs.Arg(0))
			if err != nil {
				return err
			}
			rec, err := c.InsertField(ctx, id, fs.Arg(1), parseValue(fs.Arg(2)))
			if err != nil {
				return err
			}
			return printJSON(rec)
		})
	case "comments":
		return clientCommand(cmd, args, 1, "comments [-base-url U] <id>", func(ctx context.Context, c *jsonplaceholder.Client, fs *flag.FlagSet) error {
			id, err := parseID(fs.Arg(0))
			if err != nil {
				return err
			}
			comments, err := c.GetPostComments(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(comments)
		})
	case "create":
		var title, body *string
		var userID *int
		return clientCommand(cmd, args, 0, "create [-base-url U] -title T -body B [-user N]", func(ctx context.Context, c *jsonplaceholder.Client, fs *flag.FlagSet) error {
			post, err := c.CreatePost(ctx, &models.Post{UserID: *userID, Title: *title, Body: *body})
			if err != nil {
				return err
			}
			return printJSON(post)
		}, func(fs *flag.FlagSet) {
			title = fs.String("title", "", "post title")
			body = fs.String("body", "", "post body")
			userID = fs.Int("user", 1, "author user id")
		})
	case "delete":
		return clientCommand(cmd, args, 1, "delete [-base-url U] <id>", func(ctx context.Context, c *jsonplaceholder.Client, fs *flag.FlagSet) error {
			id, err := parseID(fs.Arg(0))
			if err != nil {
				return err
			}
			if err := c.DeletePost(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted post %d\n", id)
			return nil
		})
	case "demo":
		return clientCommand(cmd, args, 0, "demo [-base-url U]", runDemo)
	default:
		fmt.Printf("Unknown client command: %s\n", cmd)
		return 1
	}
}

// runDemo walks through each client operation against the API, reporting
// failures inline and carrying on.
func runDemo(ctx context.Context, c *jsonplaceholder.Client, _ *flag.FlagSet) error {
	failed := 0
	report := func(step string, err error) {
		failed++
		fmt.Printf("%s: %v\n", step, err)
	}

	if title, err := c.GetPostField(ctx, 99, "title"); err != nil {
		report("title of post 99", err)
	} else {
		fmt.Println(title)
	}

	now := time.Now().UTC().Format(demoTimeFormat)
	if rec, err := c.InsertField(ctx, 100, "time", now); err != nil {
		report("insert into post 100", err)
	} else if err := printJSON(rec); err != nil {
		return err
	}

	resp, err := c.Requester().Post(ctx, "/posts", &models.Post{
		UserID: 500,
		Title:  "Security Interview Post",
		Body:   "This is an insertion test with a known API",
	}, nil)
	if err != nil {
		report("create post", err)
	} else {
		var created models.Post
		if err := resp.Decode(&created); err != nil {
			report("create post", err)
		} else {
			fmt.Printf("id: %d, resp_code: %d, \"X-Powered-By\" header: %s\n",
				created.ID, resp.StatusCode, resp.Header.Get("X-Powered-By"))
		}
	}

	resp, err = c.Requester().Delete(ctx, "/posts/101", nil, nil)
	if err != nil {
		report("delete post 101", err)
	} else {
		fmt.Printf("(%d, %s)\n", resp.StatusCode, resp.Header.Get("X-Content-Type-Options"))
	}

	if failed > 0 {
		return fmt.Errorf("%d demo steps failed", failed)
	}
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseValue reads a command-line value as JSON when it parses, so numbers
// and booleans keep their type, and as a plain string otherwise.
func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
