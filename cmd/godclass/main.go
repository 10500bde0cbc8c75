// Command godclass runs an application assembled from four small collaborators.
package main

import (
	"context"
	"io"

	"github.com/sghaida/oofix/app"
	"github.com/sghaida/oofix/config"
	"github.com/sghaida/oofix/internal/runner"
)

func main() {
	runner.Main("godclass", run)
}

func run(ctx context.Context, _ *config.Config, out io.Writer) error {
	svc, err := app.Wire(out)
	if err != nil {
		return err
	}
	svc.Value().Run(ctx)

	return nil
}
