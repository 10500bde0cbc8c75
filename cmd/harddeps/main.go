// Command harddeps generates a report through whichever generator the
// configuration selects (OOFIX_REPORT_FORMAT, default pdf).
package main

import (
	"context"
	"io"

	"github.com/sghaida/oofix/config"
	"github.com/sghaida/oofix/internal/runner"
	"github.com/sghaida/oofix/report"
)

func main() {
	runner.Main("harddeps", run)
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	gen, err := report.ForFormat(report.Catalog(out), cfg.ReportFormat)
	if err != nil {
		return err
	}
	report.NewReport(gen).GenerateReport(ctx)

	return nil
}
