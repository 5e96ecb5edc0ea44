package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cloudalign/align"
	"github.com/katalvlaran/cloudalign/internal/config"
)

type alignFlags struct {
	input  string
	output string
	flip   bool
	method string
}

func newAlignCmd(a *app) *cobra.Command {
	var f alignFlags

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align the dominant axis of a point cloud with the vertical (Y) axis",
		Long: `Align rotates the cloud about its centroid so its principal axes land on
Y (largest spread), X and Z (smallest spread). The centroid does not move.
--flip 1 mirrors the result upside down.`,
		Example: "  cloudalign align --input ./data/armadillo.xyz --output ./data/output.xyz",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := f.apply(cmd, a.cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runAlign(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input point cloud file")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output point cloud file")
	addFlipFlag(cmd.Flags(), &f.flip)
	cmd.Flags().StringVar(&f.method, "method", align.DefaultMethod.String(), "decomposition: svd or covariance")

	return cmd
}

// apply overrides cfg with the flags given on the command line.
func (f alignFlags) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.Input = f.input
	}
	if fl.Changed("output") {
		cfg.Output = f.output
	}
	if fl.Changed("flip") {
		cfg.FlipUpsideDown = f.flip
	}
	if fl.Changed("method") {
		cfg.Method = f.method
	}
	return cfg
}

func runAlign(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger, "align")

	cloud, err := readCloud(ctx, cfg.Input)
	if err != nil {
		return err
	}
	prog.loaded(cfg.Input, cloud.Rows())

	method, err := cfg.AlignMethod()
	if err != nil {
		return err
	}
	res, err := align.New(align.WithMethod(method)).Align(cloud, cfg.FlipUpsideDown)
	if err != nil {
		return err
	}
	logger.Debug("principal axes",
		"method", method,
		"centroid", res.Centroid,
		"eigenvalues", res.Eigenvalues,
		"flip", cfg.FlipUpsideDown)

	if err := writeCloud(ctx, cfg.Output, res.Aligned); err != nil {
		return err
	}
	prog.done("method", method, "flip", cfg.FlipUpsideDown)
	fmt.Fprintln(cmd.OutOrStdout(), successMessage)

	return nil
}
