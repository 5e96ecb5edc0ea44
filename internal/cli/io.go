package cli

import (
	"context"

	"github.com/katalvlaran/cloudalign/matrix"
	"github.com/katalvlaran/cloudalign/xyz"
)

// readCloud loads cfg.Input and logs its size.
func readCloud(ctx context.Context, path string) (*matrix.Dense, error) {
	logger := loggerFromContext(ctx)
	cloud, err := xyz.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("read point cloud", "path", path, "points", cloud.Rows(), "cols", cloud.Cols())

	return cloud, ctx.Err()
}

// writeCloud stores cloud at path and reports success on stdout.
func writeCloud(ctx context.Context, path string, cloud *matrix.Dense) error {
	logger := loggerFromContext(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := xyz.WriteFile(path, cloud); err != nil {
		logger.Error("Failed to save Point Cloud to the specified file.", "path", path, "err", err)
		return err
	}
	logger.Debug("wrote point cloud", "path", path, "points", cloud.Rows())

	return nil
}
