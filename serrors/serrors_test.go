package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/oofix/serrors"
)

type causeError struct{ msg string }

func (e *causeError) Error() string { return e.msg }

// TestKindsDistinct verifies the built-in kinds do not match each other.
func TestKindsDistinct(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, serrors.ErrInvalidArgument, serrors.ErrNotFound)
	assert.Equal(t, "INVALID_ARGUMENT", serrors.ErrInvalidArgument.Error())
	assert.Equal(t, "NOT_FOUND", serrors.ErrNotFound.Error())
}

// TestErrorFormatting verifies message, cause and kind-only rendering.
func TestErrorFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{"message only", serrors.With(serrors.ErrInvalidArgument, "Age must be positive"), "Age must be positive"},
		{"formatted", serrors.With(serrors.ErrNotFound, "key %q", "pdf"), `key "pdf"`},
		{"wrapped", serrors.Wrap(serrors.ErrInvalidArgument, errors.New("boom"), "loading"), "loading: boom"},
		{"kind only", serrors.KindOnly(serrors.ErrNotFound), "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

// TestIs_MatchesKindAndCause verifies errors.Is reaches both the kind and the cause.
func TestIs_MatchesKindAndCause(t *testing.T) {
	t.Parallel()

	cause := &causeError{"root"}
	err := fmt.Errorf("outer: %w", serrors.Wrap(serrors.ErrInvalidArgument, cause, "inner"))

	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
	assert.True(t, serrors.IsInvalidArgument(err))
}

// TestAs_ExtractsKindAndCause verifies errors.As for the kind and a typed cause.
func TestAs_ExtractsKindAndCause(t *testing.T) {
	t.Parallel()

	cause := &causeError{"root"}
	err := serrors.Wrap(serrors.ErrNotFound, cause, "lookup")

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	assert.Equal(t, serrors.ErrNotFound, k)

	var ce *causeError
	require.ErrorAs(t, err, &ce)
	assert.Same(t, cause, ce)
}

// TestAccessors verifies Kind, Message and Cause.
func TestAccessors(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := serrors.Wrap(serrors.ErrInvalidArgument, cause, "bad")

	assert.Equal(t, serrors.ErrInvalidArgument, err.Kind())
	assert.Equal(t, "bad", err.Message())
	assert.Equal(t, cause, err.Cause())
}

// TestMessage verifies Message unwraps to the innermost human message.
func TestMessage(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("divide: %w", serrors.With(serrors.ErrInvalidArgument, "Cannot divide by zero"))
	assert.Equal(t, "Cannot divide by zero", serrors.Message(err))
	assert.Equal(t, "plain", serrors.Message(errors.New("plain")))
	assert.Empty(t, serrors.Message(nil))
}
