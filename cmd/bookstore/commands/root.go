package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the bookstore command tree with one subcommand per flow.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookstore",
		Short: "bookstore runs CSV driven batches against the bookstore API.",
		Long: `bookstore reads one CSV row per request, calls the bookstore API, and writes
one CSV row per input with the classified outcome.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "YAML config file layered over the built-in defaults")
	pf.String("base-url", "", "bookstore API base URL")
	pf.Duration("timeout", 0, "per-request timeout")
	pf.String("record", "", "directory to record HTTP exchanges into")
	pf.BoolP("verbose", "v", false, "log at debug level in a human readable format")

	for _, name := range flowCommands {
		root.AddCommand(newFlowCommand(name))
	}
	return root
}

func ExecuteContext(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
