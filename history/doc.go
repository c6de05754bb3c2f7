// Package history keeps a persistent log of finished triangle-count runs in
// a Badger key-value store.
//
// Entries are JSON documents keyed by graph and insertion order:
//
//	run/<graph>/<seq>
//
// so List returns the runs of one graph oldest first and Latest reads the
// newest one with a reverse seek. An empty Options.Path opens an in-memory
// store, which is what the tests use.
package history
