package report

import "context"

// Generator produces a report. Report depends only on this interface.
//
//go:generate mockgen -package mockreport -source=interface.go -destination=mock/mockreport.go
type Generator interface {
	GenerateReport(ctx context.Context)
}
