package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("yatra.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "yatra.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "yatra.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("yatra.yaml", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: yatra.yaml: boom", err.Error())
}

func TestValidationErrorCarriesFieldAndMessage(t *testing.T) {
	t.Parallel()

	err := NewValidationError("caption", "Please enter a caption", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "caption", validationErr.Field)
	require.Equal(t, "Please enter a caption", validationErr.Message)
	require.Equal(t, "validation error: caption: Please enter a caption", err.Error())
}

func TestRequestErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewRequestError("posts.create", underlying)

	var requestErr *RequestError
	require.ErrorAs(t, err, &requestErr)
	require.Equal(t, "posts.create", requestErr.Operation)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "posts.create")
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "validation message wins", err: NewValidationError("email", "Please enter your email", nil), want: "Please enter your email"},
		{name: "wrapped validation", err: fmt.Errorf("submit: %w", NewValidationError("name", "Please enter your name", nil)), want: "Please enter your name"},
		{name: "request error falls back", err: NewRequestError("auth.login", stdErrors.New("timeout")), want: "fallback"},
		{name: "nil falls back", err: nil, want: "fallback"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, UserMessage(tc.err, "fallback"))
		})
	}
}
