package app

import (
	"context"
	"io"
)

// Console* are the stub collaborators used by cmd/godclass. Each prints one line.

type ConsoleAuthenticator struct{ Out io.Writer }

func (c *ConsoleAuthenticator) AuthenticateUser(ctx context.Context) {
	writeLine(ctx, c.Out, "Authenticating user...")
}

type ConsoleDashboard struct{ Out io.Writer }

func (c *ConsoleDashboard) LoadDashboard(ctx context.Context) {
	writeLine(ctx, c.Out, "Loading dashboard...")
}

type ConsolePaymentProcessor struct{ Out io.Writer }

func (c *ConsolePaymentProcessor) ProcessPayments(ctx context.Context) {
	writeLine(ctx, c.Out, "Processing payments...")
}

type ConsoleReportsGenerator struct{ Out io.Writer }

func (c *ConsoleReportsGenerator) GenerateReports(ctx context.Context) {
	writeLine(ctx, c.Out, "Generating reports...")
}
