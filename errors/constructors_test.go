package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "path not found")

	require.NotNil(t, err)
	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "path not found", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[NOT_FOUND] path not found", err.Error())
}

func TestNew_AllErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		CodeNotFound,
		CodeAlreadyExists,
		CodeNotDirectory,
		CodeIsDirectory,
		CodeNotEmpty,
		CodeForbidden,
		CodeInvalidInput,
		CodeInvalidState,
		CodeIO,
		CodeNotImplemented,
		CodeInternal,
		CodeUnknown,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			err := New(code, "test message")
			require.Equal(t, code, err.Code())
			require.NotEmpty(t, err.Classification())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "unknown access flags: %d", 8)

	require.Equal(t, CodeInvalidInput, err.Code())
	require.Equal(t, "unknown access flags: 8", err.Message())
}
