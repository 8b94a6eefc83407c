package core_test

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fs/core"
	fserrors "github.com/jmgilman/go/fs/errors"
)

// TestReexportedErrorsMatchStdlib verifies re-exported errors match stdlib.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
		{"ErrClosed", core.ErrClosed, fs.ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.coreErr, tt.stdlibErr) || !errors.Is(tt.stdlibErr, tt.coreErr) {
				t.Errorf("%s does not match stdlib: core=%v, stdlib=%v",
					tt.name, tt.coreErr, tt.stdlibErr)
			}
		})
	}
}

// TestErrUnsupportedMessage verifies ErrUnsupported has the expected message.
func TestErrUnsupportedMessage(t *testing.T) {
	expected := "operation not supported"
	if core.ErrUnsupported.Error() != expected {
		t.Errorf("ErrUnsupported.Error() = %q, want %q",
			core.ErrUnsupported.Error(), expected)
	}
}

func TestMark(t *testing.T) {
	cause := &fs.PathError{Op: "rmdir", Path: "full", Err: errors.New("busy")}
	err := core.Mark(cause, core.ErrNotEmpty)

	assert.True(t, errors.Is(err, core.ErrNotEmpty))
	assert.Equal(t, cause.Error(), err.Error())

	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "full", pathErr.Path)

	assert.Nil(t, core.Mark(nil, core.ErrNotEmpty))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want fserrors.ErrorCode
	}{
		{"not exist", &fs.PathError{Op: "stat", Path: "x", Err: fs.ErrNotExist}, fserrors.CodeNotFound},
		{"errno not exist", &fs.PathError{Op: "open", Path: "x", Err: syscall.ENOENT}, fserrors.CodeNotFound},
		{"marked errno not empty", core.Mark(&fs.PathError{Op: "rmdir", Path: "x", Err: syscall.ENOTEMPTY}, core.ErrNotEmpty), fserrors.CodeNotEmpty},
		{"exist", fs.ErrExist, fserrors.CodeAlreadyExists},
		{"permission", fmt.Errorf("open: %w", fs.ErrPermission), fserrors.CodeForbidden},
		{"not empty", core.Mark(errors.New("busy"), core.ErrNotEmpty), fserrors.CodeNotEmpty},
		{"not directory", core.ErrNotDirectory, fserrors.CodeNotDirectory},
		{"is directory", core.ErrIsDirectory, fserrors.CodeIsDirectory},
		{"unsupported", core.ErrUnsupported, fserrors.CodeNotImplemented},
		{"closed", fs.ErrClosed, fserrors.CodeInvalidState},
		{"coded", fserrors.New(fserrors.CodeInvalidState, "consumed"), fserrors.CodeInvalidState},
		{"anything else", errors.New("device error"), fserrors.CodeIO},
		{"nil", nil, fserrors.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.Classify(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	cause := &fs.PathError{Op: "stat", Path: "a/b", Err: fs.ErrNotExist}
	err := core.Wrap("stat", "a/b", cause)

	require.Error(t, err)
	assert.Equal(t, fserrors.CodeNotFound, fserrors.GetCode(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var fsErr fserrors.FSError
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, "stat", fsErr.Context()["op"])
	assert.Equal(t, "a/b", fsErr.Context()["path"])
}

func TestWrap_KeepsExistingCode(t *testing.T) {
	err := core.Wrap("read", "out.txt", fserrors.New(fserrors.CodeInvalidState, "not opened for reading"))

	assert.Equal(t, fserrors.CodeInvalidState, fserrors.GetCode(err))
	var fsErr fserrors.FSError
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, "out.txt", fsErr.Context()["path"])
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, core.Wrap("stat", "x", nil))
}
