// Command encapsulation sets a validated name and age and prints them.
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/oofix/config"
	"github.com/sghaida/oofix/internal/runner"
	"github.com/sghaida/oofix/person"
)

func main() {
	runner.Main("encapsulation", run)
}

// Invariant violations propagate and fail the program.
func run(_ context.Context, _ *config.Config, out io.Writer) error {
	p := person.New()
	if err := p.SetName("John Doe"); err != nil {
		return err
	}
	if err := p.SetAge(30); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, p)

	return err
}
