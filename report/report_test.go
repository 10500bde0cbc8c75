package report_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sghaida/oofix/report"
	mockreport "github.com/sghaida/oofix/report/mock"
	"github.com/sghaida/oofix/serrors"
)

// TestGenerators verifies each implementation prints its own line.
func TestGenerators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gen  func(*bytes.Buffer) report.Generator
		want string
	}{
		{"pdf", func(b *bytes.Buffer) report.Generator { return report.PDFGenerator{Out: b} }, "Generating PDF Report...\n"},
		{"csv", func(b *bytes.Buffer) report.Generator { return report.CSVGenerator{Out: b} }, "Generating CSV Report...\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			report.NewReport(tt.gen(&out)).GenerateReport(context.Background())
			assert.Equal(t, tt.want, out.String())
		})
	}
}

// TestReport_DelegatesOnce verifies the consumer calls its generator exactly once per call.
func TestReport_DelegatesOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gen := mockreport.NewMockGenerator(ctrl)
	ctx := context.Background()
	gen.EXPECT().GenerateReport(ctx).Times(1)

	report.NewReport(gen).GenerateReport(ctx)
}

// TestReport_SwapOnlyChangesOutput verifies the same consumer code path serves both formats.
func TestReport_SwapOnlyChangesOutput(t *testing.T) {
	t.Parallel()

	var pdf, csv bytes.Buffer
	for _, r := range []*report.Report{
		report.NewReport(report.PDFGenerator{Out: &pdf}),
		report.NewReport(report.CSVGenerator{Out: &csv}),
	} {
		r.GenerateReport(context.Background())
	}

	assert.Equal(t, "Generating PDF Report...\n", pdf.String())
	assert.Equal(t, "Generating CSV Report...\n", csv.String())
}

// TestForFormat verifies catalog lookups, normalization and unknown formats.
func TestForFormat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	reg := report.Catalog(&out)
	assert.Equal(t, []string{report.FormatCSV, report.FormatPDF}, reg.Keys())

	gen, err := report.ForFormat(reg, " CSV ")
	require.NoError(t, err)
	gen.GenerateReport(context.Background())
	assert.Equal(t, "Generating CSV Report...\n", out.String())

	_, err = report.ForFormat(reg, "xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, serrors.ErrInvalidArgument)
	assert.ErrorIs(t, err, serrors.ErrNotFound)
	assert.Contains(t, err.Error(), `unknown report format "xlsx"`)
}
