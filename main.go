package main

import (
	"fmt"
	"os"
	"strings"

	"placeholder/app/config"
	"placeholder/app/logging"
	"placeholder/service"
)

// CliVersion is reported by the version command.
const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches os.Args to a command and exits with its status.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
		return
	case "version":
		fmt.Printf("placeholder version %s\n", CliVersion)
		return
	}

	cfg, err := config.Load(".env", ".")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		exit(1)
		return
	}
	service.Configure(cfg, logging.New(os.Stderr, cfg.Log.Level))

	var code int
	switch cmd {
	case "serve":
		code = service.RunServer(os.Args[2:])
	case "db":
		code = service.HandleDBCommand(os.Args[2:])
	case "demo", "post", "field", "insert", "comments", "create", "delete":
		code = service.HandleClientCommand(cmd, os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		code = 1
	}
	if code != 0 {
		exit(code)
	}
}

func printHelp() {
	helpText := `Usage: placeholder <command> [options]
Commands:
  help                               Display this help message.
  version                            Show version information.
  demo                               Run every client operation once.
  post <id>                          Print a post.
  field <id> <field>                 Print one field of a post.
  insert <id> <key> <value>          Print a post with a field added (the server copy is unchanged).
  comments <id>                      Print the comments of a post.
  create -title T -body B [-user N]  Create a post.
  delete <id>                        Delete a post.
  serve [-addr :8080] [-memory]      Run the local stub API.
  db <init|clean|backup|restore|seed|help>
                                     Manage the stub API database.

Client commands accept -base-url to target another API, e.g. a local "serve".
Configuration is read from .env, placeholder.yaml and PLACEHOLDER_* variables.
`
	fmt.Println(helpText)
}
