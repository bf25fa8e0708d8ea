package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools over JSON-RPC on stdin and stdout (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd)
		},
	}
}

func (c *CLI) serve(cmd *cobra.Command) error {
	return c.app.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
