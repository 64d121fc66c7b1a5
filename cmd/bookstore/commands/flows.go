package commands

import (
	"github.com/ZulvikaK/bookstore/bookstore"
	"github.com/spf13/cobra"
)

var flowCommands = bookstore.FlowNames

var flowDescriptions = map[bookstore.FlowName]string{
	bookstore.LookupFlow:   "Fetch user details and books for rows of userID,token.",
	bookstore.LoginFlow:    "Log in and generate a token for rows of username,password.",
	bookstore.RegisterFlow: "Register users from rows of userName,password.",
}

func newFlowCommand(name bookstore.FlowName) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(name),
		Short: flowDescriptions[name],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlow(cmd, name)
		},
	}
	f := cmd.Flags()
	f.StringP("input", "i", "", "input CSV file (defaults to the flow's configured input)")
	f.StringP("output", "o", "", "output CSV file (defaults to the flow's configured output)")
	f.Duration("delay", 0, "pause between requests (defaults to the flow's configured delay)")
	f.Bool("verify", false, "compare results with expected_status_code/expected_message columns and fail on mismatch")
	return cmd
}
