// Package commands implements the CLI commands for pkgscout.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pkgscout/pkgscout/internal/app"
	"github.com/pkgscout/pkgscout/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for pkgscout.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Scan(ctx context.Context, opts app.Options) error
	Pick(ctx context.Context, opts app.Options) error
	Clean(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkgscout",
		Short:         "Discover Swift package dependency options in a workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newPickCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

// addWorkspaceFlags registers the flags shared by scan and pick.
func addWorkspaceFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Emit results as JSON instead of styled text")
	cmd.Flags().BoolP("sequential", "s", false, "Describe packages one at a time")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent describe invocations (0 uses the configured value)")
	cmd.Flags().StringSliceP("exclude", "e", nil, "Exclusion patterns overriding the configuration")
}

// workspaceOptions reads the shared flags and the optional root argument.
func workspaceOptions(cmd *cobra.Command, args []string) app.Options {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	sequential, _ := cmd.Flags().GetBool("sequential")
	jobs, _ := cmd.Flags().GetInt("jobs")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")

	return app.Options{
		Root:       root,
		Exclude:    exclude,
		Jobs:       jobs,
		Sequential: sequential,
		JSON:       jsonOut,
	}
}
