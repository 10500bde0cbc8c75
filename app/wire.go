package app

import (
	"io"

	"github.com/sghaida/oofix/di"
)

// Keys under which Wire records each collaborator.
const (
	KeyAuthenticator    di.DependencyKey = "authenticator"
	KeyDashboard        di.DependencyKey = "dashboard"
	KeyPaymentProcessor di.DependencyKey = "paymentProcessor"
	KeyReportsGenerator di.DependencyKey = "reportsGenerator"
)

// Wire is the composition root for the console application: it builds the
// stub collaborators and injects them, failing if any key is left unwired.
func Wire(out io.Writer) (*di.Service[Application], error) {
	svc := di.Init(func() *Application { return &Application{out: out} })

	_, err := svc.WithAll(
		di.Injecting(KeyAuthenticator, di.Of(&ConsoleAuthenticator{Out: out}),
			func(a *Application, d *ConsoleAuthenticator) { a.auth = d }),
		di.Injecting(KeyDashboard, di.Of(&ConsoleDashboard{Out: out}),
			func(a *Application, d *ConsoleDashboard) { a.dash = d }),
		di.Injecting(KeyPaymentProcessor, di.Of(&ConsolePaymentProcessor{Out: out}),
			func(a *Application, d *ConsolePaymentProcessor) { a.payment = d }),
		di.Injecting(KeyReportsGenerator, di.Of(&ConsoleReportsGenerator{Out: out}),
			func(a *Application, d *ConsoleReportsGenerator) { a.reports = d }),
	)
	if err != nil {
		return nil, err
	}
	if err := svc.Require(KeyAuthenticator, KeyDashboard, KeyPaymentProcessor, KeyReportsGenerator); err != nil {
		return nil, err
	}

	return svc, nil
}
