// Package commands implements the CLI commands for satchel.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/satchel/internal/app"
	"go.trai.ch/satchel/internal/build"
)

// CLI represents the command line interface for satchel.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	verbose    bool
	logJSON    bool
	color      string
}

// Application represents the application logic interface.
type Application interface {
	ConfigureOutput(opts app.OutputOptions)
	Enumerate(ctx context.Context, opts app.EnumerateOptions) error
	Moves(ctx context.Context, text string) error
	Watch(ctx context.Context, opts app.EnumerateOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "satchel",
		Short:         "Enumerate every way to make change with pennies, nickels, dimes and quarters",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.ConfigureOutput(app.OutputOptions{
				Verbose: c.verbose,
				LogJSON: c.logJSON,
				Color:   c.color,
			})
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to a satchel.yaml settings file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Log per-round progress")
	flags.BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")
	flags.StringVar(&c.color, "color", "auto", "Style text reports: auto, always, or never")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newEnumerateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newMovesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
