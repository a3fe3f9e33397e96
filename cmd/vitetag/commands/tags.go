package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/vitetag/internal/adapters/detector"
	"go.trai.ch/vitetag/internal/app"
)

func (c *CLI) newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags [entry...]",
		Short: "Print the tags for the given entry points",
		Long: "Print the script, stylesheet and preload tags for the given entry points.\n" +
			"Without arguments the entryPoints from vite.yaml are used.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			requested, err := detector.ParseMode(format)
			if err != nil {
				return err
			}
			mode := detector.ResolveMode(detector.DetectEnvironment(), requested)

			set, err := c.app.Tags(cmd.Context(), args, options(cmd))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.FormatTags(set, mode))
			return err
		},
	}
	addBuildDirFlag(cmd)
	cmd.Flags().String("format", "auto", "Output format: auto, lines or inline")
	return cmd
}
