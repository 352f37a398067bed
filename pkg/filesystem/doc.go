// Package filesystem implements types.FS on top of afero: the host
// filesystem for the CLI, MemMapFs for tests, and a read-only view for
// commands that only inspect a built library.
package filesystem
