package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(f func()) string {
	var buf bytes.Buffer
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan bool)
	go func() {
		_, _ = io.Copy(&buf, r)
		done <- true
	}()

	f()
	_ = w.Close()
	os.Stdout = oldStdout
	<-done

	return buf.String()
}

func callMain() (int, string) {
	var exitCode int
	oldExit := exit
	defer func() { exit = oldExit }()
	exit = func(code int) {
		exitCode = code
		panic("exit")
	}

	output := captureOutput(func() {
		defer func() {
			if r := recover(); r != nil {
				if r != "exit" {
					panic(r)
				}
			}
		}()
		RealMain()
	})

	return exitCode, output
}

func TestMain(t *testing.T) {
	// Save original args
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	tests := []struct {
		name           string
		args           []string
		expectedExit   int
		expectedOutput string
	}{
		{
			name:           "no arguments",
			args:           []string{"placeholder"},
			expectedExit:   1,
			expectedOutput: "Usage: placeholder <command>",
		},
		{
			name:           "help command",
			args:           []string{"placeholder", "help"},
			expectedExit:   0,
			expectedOutput: "Usage: placeholder <command> [options]",
		},
		{
			name:           "version command",
			args:           []string{"placeholder", "version"},
			expectedExit:   0,
			expectedOutput: "placeholder version " + CliVersion,
		},
		{
			name:           "unknown command",
			args:           []string{"placeholder", "unknown"},
			expectedExit:   1,
			expectedOutput: "Unknown command: unknown",
		},
		{
			name:           "post without id",
			args:           []string{"placeholder", "post"},
			expectedExit:   1,
			expectedOutput: "Usage: placeholder post",
		},
		{
			name:           "db help",
			args:           []string{"placeholder", "db", "help"},
			expectedExit:   0,
			expectedOutput: "Usage: placeholder db <command>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			exitCode, output := callMain()

			assert.Contains(t, output, tt.expectedOutput)
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestMainInvalidConfig(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	t.Setenv("PLACEHOLDER_API_BASE_URL", "ftp://example.com")

	os.Args = []string{"placeholder", "post", "1"}
	exitCode, output := callMain()

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, output, "api.base_url")
}

func TestPrintHelp(t *testing.T) {
	output := captureOutput(func() {
		printHelp()
	})

	for _, cmd := range []string{"help", "version", "demo", "post", "field", "insert", "comments", "create", "delete", "serve", "db"} {
		assert.Contains(t, output, cmd)
	}
	assert.Contains(t, output, "-base-url")
}
