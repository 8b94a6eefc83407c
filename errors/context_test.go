package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext_Chaining(t *testing.T) {
	err := New(CodeNotEmpty, "directory not empty")
	err = WithContext(err, "path", "build")
	err = WithContext(err, "child", "build/out")

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "build", ctx["path"])
	require.Equal(t, "build/out", ctx["child"])
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
	require.Nil(t, WithContextMap(nil, map[string]any{"key": "value"}))
}

func TestWithContext_Immutability(t *testing.T) {
	original := New(CodeInternal, "internal")
	modified := WithContext(original, "key", "value")

	require.Nil(t, original.Context())
	require.NotNil(t, modified.Context())
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContext(New(CodeIO, "write failed"), "path", "old")
	err = WithContextMap(err, map[string]any{"path": "new", "op": "write"})

	ctx := err.Context()
	require.Equal(t, "new", ctx["path"])
	require.Equal(t, "write", ctx["op"])
}
