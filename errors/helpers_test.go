package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := New(CodeNotFound, "not found")
	wrapped := Wrap(sentinel, CodeIO, "walk failed")

	require.True(t, Is(wrapped, sentinel))
	require.False(t, Is(wrapped, New(CodeInvalidInput, "invalid")))
}

func TestAs(t *testing.T) {
	err := Wrap(stderrors.New("boom"), CodeIO, "write failed")

	var fsErr FSError
	require.True(t, As(err, &fsErr))
	require.Equal(t, CodeIO, fsErr.Code())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"fs error", New(CodeNotFound, "not found"), CodeNotFound},
		{"outermost code wins", Wrap(New(CodeNotFound, "missing"), CodeIO, "walk"), CodeIO},
		{"standard error", stderrors.New("plain"), CodeUnknown},
		{"nil error", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	require.True(t, HasCode(New(CodeNotEmpty, "x"), CodeNotEmpty))
	require.False(t, HasCode(New(CodeNotEmpty, "x"), CodeNotFound))
	require.False(t, HasCode(nil, CodeUnknown))
}

func TestIsRetryable(t *testing.T) {
	require.True(t, IsRetryable(New(CodeIO, "transient")))
	require.False(t, IsRetryable(New(CodeNotFound, "gone")))
	require.False(t, IsRetryable(stderrors.New("plain")))
	require.False(t, IsRetryable(nil))
}
