package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"packgen/pkg/kernel"
	"packgen/pkg/kernel/sdfx"
	"packgen/pkg/packer"
	"packgen/pkg/stl"
)

// newPreviewCmd creates the preview subcommand: evaluate the model
// through the sdfx kernel and write a binary STL mesh. configPath
// points at the persistent --config flag on the root command.
func newPreviewCmd(configPath *string) *cobra.Command {
	var (
		output string
		cells  int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the model to a binary STL mesh",
		Long:  `Preview lowers the solid tree onto the sdfx signed-distance kernel, tessellates it with marching cubes, and writes a binary STL file for mesh viewers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), *configPath, output, cells)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "packer.stl", "output .stl path")
	cmd.Flags().IntVar(&cells, "resolution", 0, "marching cubes cells (0 = default)")

	return cmd
}

func runPreview(ctx context.Context, configPath, output string, cells int) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	design, err := packer.Assemble(cfg)
	if err != nil {
		return err
	}

	backend := sdfx.New(cells)
	solid, err := kernel.Evaluate(backend, design)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	logger.Debug("tessellating with marching cubes")
	mesh, err := backend.ToMesh(solid)
	if err != nil {
		return fmt.Errorf("tessellate: %w", err)
	}

	if err := stl.Create(output, mesh); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	p.done(fmt.Sprintf("wrote %s (%d triangles)", output, mesh.TriangleCount()))
	return nil
}
