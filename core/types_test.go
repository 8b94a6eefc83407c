package core_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fs/core"
	fserrors "github.com/jmgilman/go/fs/errors"
)

func TestAccessFlags(t *testing.T) {
	assert.True(t, core.AccessRead.CanRead())
	assert.False(t, core.AccessRead.CanWrite())
	assert.True(t, core.AccessWrite.CanWrite())
	assert.False(t, core.AccessWrite.CanRead())
	assert.True(t, core.AccessReadWrite.CanRead())
	assert.True(t, core.AccessReadWrite.CanWrite())

	assert.True(t, core.AccessReadWrite.Valid())
	assert.False(t, core.AccessFlags(0).Valid())
	assert.False(t, core.AccessFlags(8).Valid())

	assert.Equal(t, "read|write", core.AccessReadWrite.String())
	assert.Equal(t, "invalid", core.AccessFlags(0).String())
}

func TestCreationFlags_Disposition(t *testing.T) {
	tests := []struct {
		flags core.CreationFlags
		want  core.Disposition
	}{
		{0, core.OpenExisting},
		{core.Create, core.OpenAlways},
		{core.Truncate, core.TruncateExisting},
		{core.Create | core.Truncate, core.CreateAlways},
		{core.Exclusive, core.CreateNew},
		{core.Create | core.Exclusive, core.CreateNew},
		{core.Create | core.Truncate | core.Exclusive, core.CreateNew},
	}

	for _, tt := range tests {
		t.Run(tt.flags.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.Disposition())
		})
	}
}

func TestCreationFlags_String(t *testing.T) {
	assert.Equal(t, "none", core.CreationFlags(0).String())
	assert.Equal(t, "create|truncate", (core.Create | core.Truncate).String())
	assert.Equal(t, "create-always", core.CreateAlways.String())
}

func TestOSFlags(t *testing.T) {
	tests := []struct {
		name     string
		access   core.AccessFlags
		creation core.CreationFlags
		want     int
	}{
		{"read existing", core.AccessRead, 0, os.O_RDONLY},
		{"write create", core.AccessWrite, core.Create, os.O_WRONLY | os.O_CREATE},
		{"write truncate", core.AccessWrite, core.Truncate, os.O_WRONLY | os.O_TRUNC},
		{"rw create truncate", core.AccessReadWrite, core.Create | core.Truncate, os.O_RDWR | os.O_CREATE | os.O_TRUNC},
		{"rw exclusive", core.AccessReadWrite, core.Exclusive, os.O_RDWR | os.O_CREATE | os.O_EXCL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := core.OSFlags(tt.access, tt.creation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOSFlags_InvalidAccess(t *testing.T) {
	_, err := core.OSFlags(0, core.Create)
	require.Error(t, err)
	assert.Equal(t, fserrors.CodeInvalidInput, fserrors.GetCode(err))
}
