package core_test

import (
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestFSType_String verifies FSType.String() returns correct string representations.
func TestFSType_String(t *testing.T) {
	tests := []struct {
		name     string
		fsType   core.FSType
		expected string
	}{
		{name: "Unknown", fsType: core.FSTypeUnknown, expected: "unknown"},
		{name: "Local", fsType: core.FSTypeLocal, expected: "local"},
		{name: "Memory", fsType: core.FSTypeMemory, expected: "memory"},
		{name: "Invalid", fsType: core.FSType(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fsType.String()
			if result != tt.expected {
				t.Errorf("FSType(%d).String() = %q, want %q", tt.fsType, result, tt.expected)
			}
		})
	}
}
