package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("input/output error")
	err := Wrap(cause, CodeIO, "read failed")

	require.NotNil(t, err)
	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, "read failed", err.Message())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "[IO_ERROR] read failed: input/output error", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeNotFound, "test"))
	require.Nil(t, WrapWithContext(nil, CodeNotFound, "test", map[string]any{"k": "v"}))
}

func TestWrap_PreservesClassification(t *testing.T) {
	original := New(CodeIO, "device busy")
	require.True(t, original.Classification().IsRetryable())

	wrapped := Wrap(original, CodeNotFound, "probe failed")
	require.True(t, wrapped.Classification().IsRetryable())
}

func TestWrap_KeepsSentinelReachable(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "missing.txt", Err: fs.ErrNotExist}
	err := Wrap(pathErr, CodeNotFound, "open failed")

	require.True(t, stderrors.Is(err, fs.ErrNotExist))

	var target *fs.PathError
	require.True(t, stderrors.As(err, &target))
	require.Equal(t, "missing.txt", target.Path)
}

func TestWrapWithContext_CopiesContext(t *testing.T) {
	ctx := map[string]any{"op": "rmdir", "path": "a"}
	err := WrapWithContext(stderrors.New("busy"), CodeIO, "rmdir failed", ctx)

	ctx["path"] = "mutated"
	require.Equal(t, "a", err.Context()["path"])

	got := err.Context()
	got["path"] = "mutated again"
	require.Equal(t, "a", err.Context()["path"])
}
