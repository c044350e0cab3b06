package datastructure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrOutOfRange, "ErrOutOfRange"},
		{ErrInvariantViolation, "ErrInvariantViolation"},
		{ErrLengthMismatch, "ErrLengthMismatch"},
		{ErrInvalidStep, "ErrInvalidStep"},
		{ErrEmptyRange, "ErrEmptyRange"},
		{ErrInvalidSize, "ErrInvalidSize"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != int(numErrorCodes) {
		t.Errorf("It appears an error code was added without adding an " +
			"associated stringer test")
	}

	for i, test := range tests {
		require.Equalf(t, test.want, test.in.String(), "#%d", i)
	}
}

func TestErrorIs(t *testing.T) {
	err := CheckIndex("Get", 11, 10)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.False(t, errors.Is(err, ErrLengthMismatch))

	wrapped := fmt.Errorf("outer: %w", err)
	require.ErrorIs(t, wrapped, ErrOutOfRange)

	var e Error
	require.ErrorAs(t, wrapped, &e)
	require.Equal(t, "Get: index 11 out of range [0, 10)", e.Description)
	require.True(t, errors.Is(err, MakeError(ErrOutOfRange, "other")))
}

func TestChecks(t *testing.T) {
	require.NoError(t, CheckIndex("op", 0, 1))
	require.ErrorIs(t, CheckIndex("op", -1, 1), ErrOutOfRange)
	require.ErrorIs(t, CheckIndex("op", 0, 0), ErrOutOfRange)

	require.NoError(t, CheckRange("op", 0, 0, 0))
	require.NoError(t, CheckRange("op", 2, 5, 5))
	require.ErrorIs(t, CheckRange("op", 3, 2, 5), ErrOutOfRange)
	require.ErrorIs(t, CheckRange("op", -1, 2, 5), ErrOutOfRange)
	require.ErrorIs(t, CheckRange("op", 0, 6, 5), ErrOutOfRange)

	require.NoError(t, CheckSize("op", 0))
	require.ErrorIs(t, CheckSize("op", -1), ErrInvalidSize)
}
