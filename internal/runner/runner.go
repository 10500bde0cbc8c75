// Package runner is the shared bootstrap for the cmd/* programs: load config,
// set up logging, run one unit, flush logs, pick an exit code.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/sghaida/oofix/config"
	"github.com/sghaida/oofix/logger"
)

// Unit is the body of a demo program. A returned error aborts the process
// with a non-zero status.
type Unit func(ctx context.Context, cfg *config.Config, stdout io.Writer) error

// Main runs unit against os.Stdout and exits with its status.
func Main(name string, unit Unit) {
	os.Exit(Run(context.Background(), name, unit, os.Stdout, os.Stderr))
}

// Run does the work of Main and returns the exit status instead of exiting.
func Run(ctx context.Context, name string, unit Unit, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "config.Load failed:", err)
		return 1
	}
	if err := logger.Setup(cfg.Environment); err != nil {
		_, _ = fmt.Fprintln(stderr, "logger.Setup failed:", err)
		return 1
	}

	ctx = logger.WithFields(ctx, zap.String("program", name))
	defer logger.Sync(ctx)

	logger.Debug(ctx, "starting", zap.String("report_format", cfg.ReportFormat))
	if err := unit(ctx, cfg, stdout); err != nil {
		logger.Error(ctx, "program failed", zap.Error(err))
		return 1
	}

	return 0
}
