package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	for _, tc := range []struct {
		msg  string
		code int
	}{
		{"140: no pending transfer", 140},
		{`at instruction 1234 (THROW): unhandled exception: "5006: already voted"`, 5006},
		{"invocation failed: at instruction 5 (THROW): unhandled exception: \"2001: admin not set\"", 2001},
	} {
		code, err := Code(tc.msg)
		require.NoError(t, err, tc.msg)
		require.Equal(t, tc.code, code, tc.msg)
	}

	for _, msg := range []string{
		"",
		"witness check failed",
		"at instruction 1234 (THROW): unhandled exception: \"amount must be positive\"",
		"value5006: x",
	} {
		_, err := Code(msg)
		require.ErrorIs(t, err, ErrNoCode, msg)
	}
}

func TestFromError(t *testing.T) {
	_, err := FromError(nil)
	require.ErrorIs(t, err, ErrNoCode)

	wrapped := fmt.Errorf("cast vote: %w", errors.New(`unhandled exception: "5005: proposal not active"`))

	code, err := FromError(wrapped)
	require.NoError(t, err)
	require.Equal(t, 5005, code)

	require.True(t, Is(wrapped, 5005))
	require.False(t, Is(wrapped, 5006))
	require.False(t, Is(nil, 5005))
}
