// Package testutil provides utilities for testing iconlib components.
//
// Key components:
//   - CreateFile / FileExists / AssertNoFile: real-filesystem helpers
//   - WriteIcons: lays out an icon tree on any types.FS
//   - InstrumentedFS: a types.FS wrapper that counts concurrent reads,
//     slows them down and injects failures on chosen paths
//
// Most pipeline tests run on the afero in-memory filesystem
// (filesystem.NewMemory) wrapped in an InstrumentedFS.
package testutil
