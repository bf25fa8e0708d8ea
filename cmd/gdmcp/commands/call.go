package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [arguments-json]",
		Short: "Run a single tool and print its response",
		Example: `  gdmcp call get_godot_version
  gdmcp call list_projects '{"directory":"/home/me/games","recursive":true}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			if len(args) == 2 {
				raw = []byte(args[1])
			}
			params, err := domain.ParseParams(raw)
			if err != nil {
				return zerr.Wrap(err, "invalid tool arguments")
			}

			res, err := c.app.Call(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return zerr.Wrap(err, "failed to write response")
			}
			if res.IsError {
				return zerr.With(zerr.Wrap(domain.ErrToolFailed, res.Text()), "tool", args[0])
			}
			return nil
		},
	}
}
