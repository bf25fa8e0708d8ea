package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

type toolEntry struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func (c *CLI) newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tools := c.app.Tools()
			entries := make([]toolEntry, 0, len(tools))
			for _, t := range tools {
				entries = append(entries, toolEntry{
					Name:        t.Name,
					Description: t.Description,
					InputSchema: t.InputSchema(),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			if err := enc.Encode(entries); err != nil {
				return zerr.Wrap(err, "failed to write tool catalog")
			}
			return nil
		},
	}
}
