// Command exceptions divides by zero and reports the InvalidArgument error
// instead of crashing.
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/oofix/calculator"
	"github.com/sghaida/oofix/config"
	"github.com/sghaida/oofix/internal/runner"
	"github.com/sghaida/oofix/serrors"
)

func main() {
	runner.Main("exceptions", run)
}

func run(ctx context.Context, _ *config.Config, out io.Writer) error {
	return divide(ctx, calculator.New(out), out, 10, 0)
}

// divide handles invalid arguments by printing them; any other error is returned.
func divide(ctx context.Context, calc *calculator.Calculator, out io.Writer, a, b int) error {
	_, err := calc.Divide(ctx, a, b)
	if serrors.IsInvalidArgument(err) {
		_, werr := fmt.Fprintln(out, "Error: "+serrors.Message(err))
		return werr
	}

	return err
}
