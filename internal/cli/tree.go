package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nettopo/topograph/pkg/render"
	"github.com/nettopo/topograph/pkg/source"
	"github.com/nettopo/topograph/pkg/topology"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	plain bool // uncolored output honoring the plain text contract
	full  bool // print from the backbone root instead of the target device
}

// treeCommand creates the tree command: find the target's backbone root,
// build the dependency tree beneath it, and print the target's subtree.
//
// Without an argument the command offers an interactive device picker when
// the selected source can enumerate its devices.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree [device]",
		Short: "Print the topology tree for a device",
		Long: `Print the topology tree for a device.

The device's nearest backbone (P/PE) router is located by walking neighbor
links, a tree of dependent devices is built beneath that root, and the
target's subtree is printed. Use --full to print from the backbone root.

Examples:
  topograph tree sweden-a1.example.com
  topograph tree --full sweden-a1.example.com
  topograph tree --source=file --file=topology.toml sweden-a1.example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, closer, err := c.newSource(ctx)
			if err != nil {
				return err
			}
			defer closer.Close()

			target, err := pickDevice(ctx, src, args)
			if err != nil {
				return err
			}
			if target == "" {
				return nil // picker dismissed
			}

			return c.runTree(ctx, src, target, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.plain, "plain", false, "plain uncolored output")
	cmd.Flags().BoolVar(&opts.full, "full", false, "print from the backbone root instead of the target")

	return cmd
}

// runTree builds and prints the tree for target.
func (c *CLI) runTree(ctx context.Context, src source.Source, target string, opts *treeOpts) error {
	logger := loggerFromContext(ctx)

	root, err := topology.FindRoot(ctx, src, target)
	if err != nil {
		return err
	}
	if root == "" {
		printWarning("no backbone device reachable from %s; cannot build a tree", target)
		return nil
	}
	logger.Debugf("backbone root for %s: %s", target, root)

	prog := newProgress(logger)
	tree, err := topology.NewBuilder(src).Build(ctx, root)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built tree with %d devices under %s", tree.Len(), root))

	from := target
	if opts.full {
		from = root
	} else if _, ok := tree.Node(target); !ok {
		printWarning("%s is not part of the tree under %s; printing from the root", target, root)
		from = root
	}

	if opts.plain {
		fmt.Print(render.Text(tree, from))
		return nil
	}
	printTree(tree, from)
	return nil
}

// pickDevice resolves the target device from args, falling back to the
// interactive picker for enumerable sources.
func pickDevice(ctx context.Context, src source.Source, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	e, ok := src.(source.Enumerator)
	if !ok {
		return "", fmt.Errorf("device argument required (source cannot enumerate devices)")
	}
	devices, err := e.Devices(ctx)
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", fmt.Errorf("source knows no devices")
	}
	return selectDevice(devices)
}
