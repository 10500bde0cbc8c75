// Package calculator shows error handling with a specific error kind: bad
// input is reported as serrors.ErrInvalidArgument before any work happens,
// and the caller decides what to do with it.
package calculator

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/sghaida/oofix/logger"
	"github.com/sghaida/oofix/serrors"
)

// Calculator prints results to out.
type Calculator struct {
	out io.Writer
}

// New returns a Calculator writing to out.
func New(out io.Writer) *Calculator {
	return &Calculator{out: out}
}

// Divide returns a / b truncated toward zero and prints "Result: <q>".
// A zero divisor returns an InvalidArgument error and prints nothing.
func (c *Calculator) Divide(ctx context.Context, a, b int) (int, error) {
	if b == 0 {
		logger.Debug(ctx, "division rejected", zap.Int("dividend", a))
		return 0, serrors.With(serrors.ErrInvalidArgument, "Cannot divide by zero")
	}

	q := a / b
	if _, err := fmt.Fprintf(c.out, "Result: %d\n", q); err != nil {
		return q, fmt.Errorf("write result: %w", err)
	}

	return q, nil
}
