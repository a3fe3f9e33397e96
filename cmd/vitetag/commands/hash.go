package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the manifest content hash",
		Long:  "Print the manifest content hash. An empty line is printed while the dev server runs or no manifest exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hash, _, err := c.app.Hash(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
	addBuildDirFlag(cmd)
	return cmd
}
