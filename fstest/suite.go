// Package fstest provides a conformance test suite for validating platform
// implementations against the core.Platform contracts.
//
// This package contains test functions that can be imported and executed by
// platform packages to verify they correctly implement the primitive
// contracts the traversal engine and facade are written against: metadata
// probes, creation dispositions, one-level directory enumeration, and the
// namespace operations.
//
// The test suite validates interface contracts, not backend-specific
// behavior. Enumeration order is never asserted since it is platform-native.
//
// Example usage:
//
//	func TestMyPlatform(t *testing.T) {
//	    fstest.TestSuite(t, func() core.Platform {
//	        return myplatform.New(t.TempDir())
//	    })
//	}
//
// The package also provides Tracking, a Platform decorator that counts open
// raw handles and injects failures, for leak and partial-failure tests of
// code built on top of a platform.
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// PlatformTestConfig configures the test suite to match platform behavior.
type PlatformTestConfig struct {
	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "Group/SubTest" (e.g., "Files/OpenDirectory").
	SkipTests []string
}

// TestSuite runs all conformance tests against a platform.
// The newPlatform function should return a fresh, empty platform for each
// test group.
func TestSuite(t *testing.T, newPlatform func() core.Platform) {
	TestSuiteWithConfig(t, newPlatform, PlatformTestConfig{})
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newPlatform func() core.Platform, config PlatformTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.Platform, PlatformTestConfig)
	}{
		{"Metadata", TestMetadataWithConfig},
		{"Files", TestFilesWithConfig},
		{"Directories", TestDirectoriesWithConfig},
		{"Manage", TestManageWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.skip(g.name) {
				t.Skip("Skipped by platform configuration")
				return
			}
			g.run(t, newPlatform(), config)
		})
	}
}

func (c PlatformTestConfig) skip(name string) bool {
	return slices.Contains(c.SkipTests, name)
}

// subtest is one named conformance check.
type subtest struct {
	name string
	fn   func(*testing.T, core.Platform)
}

// run executes the subtests of group, honoring config.SkipTests.
func run(t *testing.T, p core.Platform, config PlatformTestConfig, group string, tests []subtest) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if config.skip(group + "/" + tc.name) {
				t.Skip("Skipped by platform configuration")
				return
			}
			tc.fn(t, p)
		})
	}
}
