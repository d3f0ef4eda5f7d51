package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nettopo/topograph/pkg/topology"
)

// rootCommand creates the root command: resolve and print the nearest
// backbone device for a target without building the tree.
func (c *CLI) rootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "root <device>",
		Short: "Print the nearest backbone router for a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, closer, err := c.newSource(ctx)
			if err != nil {
				return err
			}
			defer closer.Close()

			root, err := topology.FindRoot(ctx, src, args[0])
			if err != nil {
				return err
			}
			if root == "" {
				printWarning("no backbone device reachable from %s", args[0])
				return nil
			}
			fmt.Println(root)
			return nil
		},
	}
}
