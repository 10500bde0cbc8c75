package app

import "context"

// The four capabilities an Application coordinates. Each call is fire and
// forget: no result, no error.
//
//go:generate mockgen -package mockapp -source=interface.go -destination=mock/mockapp.go
type (
	// Authenticator signs the user in.
	Authenticator interface {
		AuthenticateUser(ctx context.Context)
	}

	// Dashboard loads the main view.
	Dashboard interface {
		LoadDashboard(ctx context.Context)
	}

	// PaymentProcessor settles pending payments.
	PaymentProcessor interface {
		ProcessPayments(ctx context.Context)
	}

	// ReportsGenerator produces the periodic reports.
	ReportsGenerator interface {
		GenerateReports(ctx context.Context)
	}
)
