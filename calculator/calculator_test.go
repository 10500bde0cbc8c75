package calculator_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/oofix/calculator"
	"github.com/sghaida/oofix/serrors"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

// TestDivide_Success verifies the quotient is returned and printed.
func TestDivide_Success(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	q, err := calculator.New(&out).Divide(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, q)
	assert.Equal(t, "Result: 5\n", out.String())
}

// TestDivide_Truncates verifies integer division truncates toward zero.
func TestDivide_Truncates(t *testing.T) {
	t.Parallel()

	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -3},
		{7, -2, -3},
		{0, 5, 0},
		{math.MinInt, 1, math.MinInt},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		q, err := calculator.New(&out).Divide(context.Background(), tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, q, "%d / %d", tt.a, tt.b)
	}
}

// TestDivide_ByZero verifies a zero divisor fails before computing or printing.
func TestDivide_ByZero(t *testing.T) {
	t.Parallel()

	for _, a := range []int{10, 0, -3, math.MaxInt, math.MinInt} {
		var out bytes.Buffer
		q, err := calculator.New(&out).Divide(context.Background(), a, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, serrors.ErrInvalidArgument)
		assert.Equal(t, "Cannot divide by zero", err.Error())
		assert.Zero(t, q)
		assert.Empty(t, out.String())
	}
}

// TestDivide_WriteFailure verifies output errors are returned, not swallowed.
func TestDivide_WriteFailure(t *testing.T) {
	t.Parallel()

	q, err := calculator.New(failingWriter{}).Divide(context.Background(), 9, 3)
	require.Error(t, err)
	assert.Equal(t, 3, q)
	assert.False(t, serrors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "closed")
}
