package core

import (
	"os"

	fserrors "github.com/jmgilman/go/fs/errors"
)

// OSFlags translates access and creation flags into os.OpenFile flags.
// It fails with CodeInvalidInput when access is not a valid combination.
func OSFlags(access AccessFlags, creation CreationFlags) (int, error) {
	if !access.Valid() {
		return 0, fserrors.Newf(fserrors.CodeInvalidInput, "invalid access flags: %d", access)
	}

	var flag int
	switch access {
	case AccessRead:
		flag = os.O_RDONLY
	case AccessWrite:
		flag = os.O_WRONLY
	default:
		flag = os.O_RDWR
	}

	switch creation.Disposition() {
	case OpenAlways:
		flag |= os.O_CREATE
	case TruncateExisting:
		flag |= os.O_TRUNC
	case CreateAlways:
		flag |= os.O_CREATE | os.O_TRUNC
	case CreateNew:
		flag |= os.O_CREATE | os.O_EXCL
	}
	return flag, nil
}
