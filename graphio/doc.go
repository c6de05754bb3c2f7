// Package graphio loads and stores core.Graph values.
//
// Two encodings are supported:
//
//   - Binary: a little-endian CSR dump (header n, m, size; offsets; targets)
//     that loads in O(N + M) without sorting. ReadBinaryFile rejects files
//     whose length disagrees with the header (ErrSizeMismatch).
//   - Text: a line-oriented edge list ("src dst", "#" comments, optional
//     "n <count>" header) parsed with a participle grammar.
//
// Errors carry context via github.com/pkg/errors and still match their
// sentinels (graphio or core) with errors.Is.
package graphio
