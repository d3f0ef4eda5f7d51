package cli

import (
	"github.com/spf13/cobra"

	"github.com/nettopo/topograph/pkg/topology"
)

// classifyCommand creates the classify command: partition device
// identifiers into backbone and access devices by the naming convention.
func (c *CLI) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <device>...",
		Short: "Partition device names into backbone and access devices",
		Long: `Partition device names into backbone and access devices.

A device is backbone when its hostname follows the P/PE convention:
dash-separated labels ending in an optional "p", an "e", and digits,
e.g. "sweden-pe1.example.com" or "core-east-p2.net".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backbone, access := topology.Partition(args, topology.BackbonePattern)

			printInfo("backbone (%d)", len(backbone))
			for _, d := range backbone {
				printDetail("%s", StyleBackbone.Render(d))
			}
			printInfo("access (%d)", len(access))
			for _, d := range access {
				printDetail("%s", d)
			}
			return nil
		},
	}
}
