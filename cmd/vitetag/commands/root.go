// Package commands implements the CLI commands for vitetag.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/vitetag/internal/app"
	"go.trai.ch/vitetag/internal/build"
	"go.trai.ch/vitetag/internal/core/domain"
)

// CLI represents the command line interface for vitetag.
type CLI struct {
	app             Application
	rootCmd         *cobra.Command
	shutdownTracing func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Tags(ctx context.Context, entryPoints []string, opts app.Options) (*domain.TagSet, error)
	Asset(ctx context.Context, asset string, opts app.Options) (string, error)
	Hash(ctx context.Context, opts app.Options) (string, bool, error)
	Refresh(ctx context.Context, opts app.Options) (string, error)
	Watch(ctx context.Context, opts app.Options) error
	EnableTracing() func(context.Context) error
	SetJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vitetag",
		Short:         "Render the HTML tags for Vite entry points",
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

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to vite.yaml (discovered from the working directory by default)")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log resolver spans with their timings")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json")
		c.app.SetJSONLogs(jsonLogs)

		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			c.shutdownTracing = c.app.EnableTracing()
		}
	}

	rootCmd.AddCommand(c.newTagsCmd())
	rootCmd.AddCommand(c.newAssetCmd())
	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newRefreshCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	defer func() {
		if c.shutdownTracing != nil {
			_ = c.shutdownTracing(context.WithoutCancel(ctx))
		}
	}()

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

// options collects the configuration flags shared by the resolver commands.
func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	opts := app.Options{ConfigPath: configPath}
	if f := cmd.Flags().Lookup("build-dir"); f != nil {
		opts.BuildDirectory = f.Value.String()
	}
	return opts
}

func addBuildDirFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("build-dir", "b", "", "Build directory inside the public directory (overrides the configuration)")
}
