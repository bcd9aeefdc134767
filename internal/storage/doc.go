// Package storage handles writing the generated calendar files.
//
// Each run regenerates every calendar from scratch and overwrites the output
// file with a truncating write. The previous payload is read back first so
// the caller can report whether anything actually changed and diff the two
// event sets.
package storage
