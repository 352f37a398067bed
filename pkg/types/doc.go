// Package types defines the records that flow through the icon pipeline and
// the filesystem interface every stage reads and writes through.
//
// An IconFile is produced by the walker and lives only until it has been
// classified and loaded. An IconRecord is the durable unit written to the
// per-collection output files; it is never mutated after the loader
// creates it.
package types
