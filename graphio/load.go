// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: Format selection and sentinel errors shared by the readers.

package graphio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tricount/core"
)

// Sentinel errors for graph I/O.
var (
	// ErrSizeMismatch indicates a binary file whose length disagrees with its header.
	ErrSizeMismatch = errors.New("graphio: size mismatch")

	// ErrBadHeader indicates an implausible binary header or a misplaced text header.
	ErrBadHeader = errors.New("graphio: bad header")

	// ErrSyntax indicates a text edge list the grammar rejects.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnknownFormat indicates a format name other than binary or text.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)

// Format names an on-disk graph encoding.
type Format string

const (
	Binary Format = "binary"
	Text   Format = "text"
)

// ParseFormat accepts "binary"/"bin" and "text"/"txt"/"edgelist".
// An empty name yields "" so Load can fall back to the file extension.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return "", nil
	case "binary", "bin":
		return Binary, nil
	case "text", "txt", "edgelist":
		return Text, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// FormatOf guesses the format from the file extension: .txt, .el and
// .edges are Text, everything else Binary.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".el", ".edges":
		return Text
	}
	return Binary
}

// Load reads the graph at path. An empty format is resolved with FormatOf.
func Load(path string, format Format, opts ...core.Option) (*core.Graph, error) {
	if format == "" {
		format = FormatOf(path)
	}
	switch format {
	case Binary:
		return ReadBinaryFile(path, opts...)
	case Text:
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", path)
		}
		defer f.Close()
		return ParseEdgeList(path, f, opts...)
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
}
