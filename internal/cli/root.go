package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"packgen/pkg/csg"
	"packgen/pkg/packer"
	"packgen/pkg/scad"
)

// defaultOutput is where the bare command writes the model.
const defaultOutput = "packer.scad"

// Execute runs the packgen CLI and returns an error if generation or
// export fails. The bare command is the whole generation surface: it
// builds the model from the (optionally overridden) configuration and
// writes the OpenSCAD file.
func Execute() error {
	var (
		verbose    bool
		configPath string
		output     string
	)

	root := &cobra.Command{
		Use:          "packgen",
		Short:        "packgen generates a parametric downhole packer solid model",
		Long:         `packgen composes a multi-section isolation packer (tail tubing, slotted lower housing, sealing stack, slotted upper bypass housing, top tubing) as a constructive-solid-geometry tree and exports it as an OpenSCAD file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), configPath, output)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML parameter override file")
	root.Flags().StringVarP(&output, "output", "o", defaultOutput, "output .scad path")

	root.AddCommand(newPreviewCmd(&configPath))

	return root.ExecuteContext(context.Background())
}

// loadConfig returns the default configuration, or the defaults layered
// with a TOML override file when one is given. Either way the result
// has passed validation.
func loadConfig(path string) (packer.Config, error) {
	if path == "" {
		cfg := packer.DefaultConfig()
		if err := cfg.Validate(); err != nil {
			return packer.Config{}, err
		}
		return cfg, nil
	}
	return packer.LoadFile(path)
}

// runGenerate builds the full assembly and exports it. Validation runs
// before any file is touched: either a complete, internally consistent
// tree is exported or nothing is written.
func runGenerate(ctx context.Context, configPath, output string) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger.Debugf("configuration: %+v", cfg)

	design, err := packer.Assemble(cfg)
	if err != nil {
		return err
	}
	if err := checkTree(logger, design); err != nil {
		return err
	}

	if err := scad.WriteFile(output, design); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	p.done(fmt.Sprintf("wrote %s", output))
	return nil
}

// checkTree runs structural validation on the built tree, logging
// warnings and turning blocking findings into an error.
func checkTree(logger *charmlog.Logger, design *csg.Solid) error {
	findings := csg.Validate(design)
	var errs []error
	for _, f := range findings {
		if f.Severity == csg.SeverityWarning {
			logger.Warn(f.Error())
			continue
		}
		errs = append(errs, f)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid solid tree: %w", errors.Join(errs...))
	}
	return nil
}
