package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cloudalign/internal/config"
	"github.com/katalvlaran/cloudalign/matrix"
	"github.com/katalvlaran/cloudalign/transform"
)

type rotateFlags struct {
	input       string
	output      string
	rx, ry, rz  float64
	aboutOrigin bool
}

func newRotateCmd(a *app) *cobra.Command {
	var f rotateFlags

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate a point cloud by X, Y and Z angles in degrees",
		Long: `Rotate turns the cloud about X, then Y, then Z (right-hand rule).
By default the rotation is about the cloud's centroid, so the cloud stays in
place; --about-origin rotates about (0,0,0) instead.`,
		Example: "  cloudalign rotate -i in.xyz -o out.xyz --ry 90",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := f.apply(cmd, a.cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRotate(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input point cloud file")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output point cloud file")
	cmd.Flags().Float64Var(&f.rx, "rx", 0, "rotation about X in degrees")
	cmd.Flags().Float64Var(&f.ry, "ry", 0, "rotation about Y in degrees")
	cmd.Flags().Float64Var(&f.rz, "rz", 0, "rotation about Z in degrees")
	cmd.Flags().BoolVar(&f.aboutOrigin, "about-origin", false, "rotate about the origin instead of the centroid")

	return cmd
}

func (f rotateFlags) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.Input = f.input
	}
	if fl.Changed("output") {
		cfg.Output = f.output
	}
	if fl.Changed("rx") {
		cfg.Rotate.X = f.rx
	}
	if fl.Changed("ry") {
		cfg.Rotate.Y = f.ry
	}
	if fl.Changed("rz") {
		cfg.Rotate.Z = f.rz
	}
	if fl.Changed("about-origin") {
		cfg.Rotate.AboutOrigin = f.aboutOrigin
	}
	return cfg
}

func runRotate(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger, "rotate")

	cloud, err := readCloud(ctx, cfg.Input)
	if err != nil {
		return err
	}
	prog.loaded(cfg.Input, cloud.Rows())
	if err := matrix.ValidateCols(cloud, 3); err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	angles := cfg.Angles()
	p := transform.RotationPipeline(angles)
	if !cfg.Rotate.AboutOrigin {
		centroid, err := matrix.ColumnMeans(cloud)
		if err != nil {
			return err
		}
		p = transform.CentroidPipeline(centroid, p)
		logger.Debug("rotating about centroid", "centroid", centroid)
	}
	if angles.IsZero() {
		logger.Warn("all angles are zero, output equals input")
	}

	out, err := p.Trace(cloud, func(stage int, name string, m *matrix.Dense) {
		logger.Debug("stage", "index", stage, "name", name, "rows", m.Rows(), "cols", m.Cols())
	})
	if err != nil {
		return err
	}

	if err := writeCloud(ctx, cfg.Output, out); err != nil {
		return err
	}
	prog.done("rx", angles.X, "ry", angles.Y, "rz", angles.Z)
	fmt.Fprintln(cmd.OutOrStdout(), successMessage)

	return nil
}
