package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/satchel/internal/app"
	"go.trai.ch/satchel/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newEnumerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enumerate [amount]",
		Short: "List every satchel worth the amount, in cents",
		Long: "Start from the amount in pennies and apply every minimal exchange until no new\n" +
			"combination appears. The amount may also come from the settings file.",
		Aliases: []string{"enum"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.enumerateOptions(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Enumerate(cmd.Context(), opts)
		},
	}
	addEnumerateFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [amount]",
		Short: "Enumerate again whenever the settings file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.enumerateOptions(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), opts)
		},
	}
	addEnumerateFlags(cmd)
	return cmd
}

func addEnumerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("order", "o", "", "Sort order: desc, asc, or text (default desc)")
	cmd.Flags().StringP("format", "f", "", "Report format: text, json, or yaml (default text)")
	cmd.Flags().IntP("parallel", "p", 0, "Workers expanding each round (default 1)")
	cmd.Flags().Bool("progress", false, "Show each round while enumerating")
}

// enumerateOptions reads the optional amount argument and the enumerate flags.
func (c *CLI) enumerateOptions(cmd *cobra.Command, args []string) (app.EnumerateOptions, error) {
	var amount int
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return app.EnumerateOptions{}, zerr.With(zerr.Wrap(domain.ErrInvalidAmount, "amount must be a whole number of cents"), "amount", args[0])
		}
		if n <= 0 {
			return app.EnumerateOptions{}, zerr.With(zerr.Wrap(domain.ErrInvalidAmount, "amount must be positive"), "amount", n)
		}
		amount = n
	}

	order, _ := cmd.Flags().GetString("order")
	format, _ := cmd.Flags().GetString("format")
	parallel, _ := cmd.Flags().GetInt("parallel")
	progress, _ := cmd.Flags().GetBool("progress")

	return app.EnumerateOptions{
		ConfigPath:  c.configPath,
		Amount:      amount,
		Order:       order,
		Format:      format,
		Parallelism: parallel,
		Progress:    progress,
	}, nil
}
