package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nettopo/topograph/pkg/render"
	"github.com/nettopo/topograph/pkg/source"
	"github.com/nettopo/topograph/pkg/topology"
)

// Output formats for the export command.
const (
	formatText = "text"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	format string // text, json, dot, or svg
	output string // output file path (stdout if empty)
}

// exportCommand creates the export command: build the tree for a device
// and write it in a machine-readable format.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "export <device>",
		Short: "Export a device's topology tree as text, JSON, DOT, or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}

			ctx := cmd.Context()
			src, closer, err := c.newSource(ctx)
			if err != nil {
				return err
			}
			defer closer.Close()

			return c.runExport(ctx, src, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json (default), text, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatDOT, formatSVG:
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be 'text', 'json', 'dot', or 'svg')", f)
}

// runExport builds the tree rooted at the target's backbone root and writes
// it in the requested format.
func (c *CLI) runExport(ctx context.Context, src source.Source, target string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)

	root, err := topology.FindRoot(ctx, src, target)
	if err != nil {
		return err
	}
	if root == "" {
		printWarning("no backbone device reachable from %s; nothing to export", target)
		return nil
	}

	tree, err := topology.NewBuilder(src).Build(ctx, root)
	if err != nil {
		return err
	}
	logger.Debugf("built tree with %d devices under %s", tree.Len(), root)

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch opts.format {
	case formatText:
		err = render.WriteText(out, tree, root)
	case formatJSON:
		err = render.WriteJSON(out, tree, root)
	case formatDOT:
		_, err = io.WriteString(out, render.ToDOT(tree, root))
	case formatSVG:
		var svg []byte
		svg, err = render.RenderSVG(ctx, render.ToDOT(tree, root))
		if err == nil {
			_, err = out.Write(svg)
		}
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Wrote %s (%s)", opts.output, opts.format)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method, making os.Stdout
// compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
