package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/logger"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

var exitFunc = os.Exit

func main() {
	if code := run(context.Background(), os.Args[1:], os.Stderr); code != 0 {
		exitFunc(code)
	}
}

// run executes the command tree with args and returns the process exit code.
// Errors are printed to stderr.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
