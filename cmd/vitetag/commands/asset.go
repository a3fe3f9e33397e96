package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newAssetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset <path>",
		Short: "Print the URL of a single asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := c.app.Asset(cmd.Context(), args[0], options(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
	addBuildDirFlag(cmd)
	return cmd
}
