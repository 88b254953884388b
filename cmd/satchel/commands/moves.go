package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "moves <satchel>",
		Short:   "Show the result of every exchange on one satchel",
		Example: `  satchel moves "50p 5n 2d 1q"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Moves(cmd.Context(), strings.Join(args, " "))
		},
	}
}
