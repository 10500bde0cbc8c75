// Package app shows a god class split into collaborators: Application only
// sequences four injected capabilities and owns none of their logic.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sghaida/oofix/logger"
)

// Application runs authenticate, load dashboard, process payments and
// generate reports, in that order.
type Application struct {
	out     io.Writer
	auth    Authenticator
	dash    Dashboard
	payment PaymentProcessor
	reports ReportsGenerator
}

// NewApplication builds an Application from its collaborators.
func NewApplication(
	out io.Writer,
	auth Authenticator,
	dash Dashboard,
	payment PaymentProcessor,
	reports ReportsGenerator,
) *Application {
	return &Application{out: out, auth: auth, dash: dash, payment: payment, reports: reports}
}

// Run prints a banner and calls each collaborator exactly once.
func (a *Application) Run(ctx context.Context) {
	ctx = logger.WithFields(ctx, zap.String("run_id", uuid.NewString()))

	writeLine(ctx, a.out, "Running application...")

	logger.Debug(ctx, "step", zap.String("name", "authenticate"))
	a.auth.AuthenticateUser(ctx)

	logger.Debug(ctx, "step", zap.String("name", "dashboard"))
	a.dash.LoadDashboard(ctx)

	logger.Debug(ctx, "step", zap.String("name", "payments"))
	a.payment.ProcessPayments(ctx)

	logger.Debug(ctx, "step", zap.String("name", "reports"))
	a.reports.GenerateReports(ctx)

	logger.Debug(ctx, "run finished")
}

func writeLine(ctx context.Context, out io.Writer, line string) {
	if _, err := fmt.Fprintln(out, line); err != nil {
		logger.Warn(ctx, "could not write line", zap.String("line", line), zap.Error(err))
	}
}
