// Package report shows dependency inversion: Report holds a Generator and
// delegates to it, so switching between PDF and CSV output never touches
// Report itself.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/sghaida/oofix/di"
	"github.com/sghaida/oofix/logger"
	"github.com/sghaida/oofix/serrors"
)

// Format keys accepted by ForFormat.
const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// PDFGenerator prints a PDF report banner.
type PDFGenerator struct{ Out io.Writer }

func (g PDFGenerator) GenerateReport(ctx context.Context) {
	writeLine(ctx, g.Out, "Generating PDF Report...")
}

// CSVGenerator prints a CSV report banner.
type CSVGenerator struct{ Out io.Writer }

func (g CSVGenerator) GenerateReport(ctx context.Context) {
	writeLine(ctx, g.Out, "Generating CSV Report...")
}

func writeLine(ctx context.Context, out io.Writer, line string) {
	if _, err := fmt.Fprintln(out, line); err != nil {
		logger.Warn(ctx, "could not write report line", zap.Error(err))
	}
}

// Report is the consumer; it never looks at which Generator it holds.
type Report struct {
	gen Generator
}

// NewReport returns a Report delegating to gen.
func NewReport(gen Generator) *Report {
	return &Report{gen: gen}
}

// GenerateReport delegates to the generator.
func (r *Report) GenerateReport(ctx context.Context) {
	r.gen.GenerateReport(ctx)
}

// Catalog returns the built-in generators keyed by format, all writing to out.
func Catalog(out io.Writer) *di.Registry[Generator] {
	return di.NewRegistry[Generator]().
		Provide(FormatPDF, PDFGenerator{Out: out}).
		Provide(FormatCSV, CSVGenerator{Out: out})
}

// ForFormat picks the generator registered for format (case-insensitive).
func ForFormat(reg *di.Registry[Generator], format string) (Generator, error) {
	key := strings.ToLower(strings.TrimSpace(format))
	gen, err := reg.Resolve(key)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidArgument, err, "unknown report format %q", format)
	}

	return gen, nil
}
