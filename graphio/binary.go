// SPDX-License-Identifier: MIT
//
// File: binary.go
// Role: Little-endian CSR file format.
//
// Layout:
//
//	n      uint64
//	m      uint64
//	size   uint64            total bytes = 24 + 8(n+1) + 4m
//	offsets[n+1] uint64      out-adjacency row starts, offsets[n] == m
//	targets[m]   uint32      out-neighbors, ascending per row
//
// Only the out-adjacency is stored; the in-adjacency is derived on load.

package graphio

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tricount/core"
)

const headerSize = 24

// BinarySize returns the encoded size of a graph with n vertices and m edges.
func BinarySize(n, m uint64) uint64 {
	return headerSize + 8*(n+1) + 4*m
}

type header struct {
	N, M, Size uint64
}

func (h header) check() error {
	if h.N > core.MaxVertices {
		return errors.Wrapf(core.ErrTooManyVertices, "header n=%d", h.N)
	}
	// A simple digraph (loops allowed) has at most n² edges.
	if h.M > h.N*h.N {
		return errors.Wrapf(ErrBadHeader, "header m=%d exceeds n²=%d", h.M, h.N*h.N)
	}
	if want := BinarySize(h.N, h.M); h.Size != want {
		return errors.Wrapf(ErrSizeMismatch, "header size=%d, n=%d m=%d imply %d", h.Size, h.N, h.M, want)
	}
	return nil
}

// ReadBinary decodes one graph from r. Truncated input is reported as
// ErrSizeMismatch; structural problems surface as core sentinels.
func ReadBinary(r io.Reader, opts ...core.Option) (*core.Graph, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrap(truncated(err), "read header")
	}
	if err := h.check(); err != nil {
		return nil, err
	}

	raw := make([]uint64, h.N+1)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, errors.Wrap(truncated(err), "read offsets")
	}
	targets := make([]core.VertexID, h.M)
	if err := binary.Read(r, binary.LittleEndian, targets); err != nil {
		return nil, errors.Wrap(truncated(err), "read targets")
	}

	offsets := make([]int, len(raw))
	for i, o := range raw {
		if o > h.M {
			return nil, errors.Wrapf(core.ErrBadOffsets, "offset[%d]=%d > m=%d", i, o, h.M)
		}
		offsets[i] = int(o)
	}

	g, err := core.FromCSR(offsets, targets, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "decode CSR")
	}
	return g, nil
}

// ReadBinaryFile opens path, checks that its length matches the header's
// size field and decodes it.
func ReadBinaryFile(path string, opts ...core.Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	br := bufio.NewReader(f)
	hdr, err := br.Peek(headerSize)
	if err != nil {
		return nil, errors.Wrapf(truncated(err), "%s: read header", path)
	}
	if size := binary.LittleEndian.Uint64(hdr[16:]); size != uint64(st.Size()) {
		return nil, errors.Wrapf(ErrSizeMismatch, "%s: header size=%d, file size=%d", path, size, st.Size())
	}

	g, err := ReadBinary(br, opts...)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return g, nil
}

// WriteBinary encodes g to w.
func WriteBinary(w io.Writer, g *core.Graph) error {
	n, m := uint64(g.VertexCount()), uint64(g.EdgeCount())
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, header{N: n, M: m, Size: BinarySize(n, m)}); err != nil {
		return errors.Wrap(err, "write header")
	}

	offsets := make([]uint64, n+1)
	for v := 0; v < g.VertexCount(); v++ {
		offsets[v+1] = offsets[v] + uint64(g.OutDegree(core.VertexID(v)))
	}
	if err := binary.Write(bw, binary.LittleEndian, offsets); err != nil {
		return errors.Wrap(err, "write offsets")
	}

	for v := 0; v < g.VertexCount(); v++ {
		if err := binary.Write(bw, binary.LittleEndian, g.OutNeighbors(core.VertexID(v))); err != nil {
			return errors.Wrapf(err, "write targets of %d", v)
		}
	}
	return errors.Wrap(bw.Flush(), "flush")
}

// WriteBinaryFile creates (or truncates) path and encodes g into it.
func WriteBinaryFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := WriteBinary(f, g); err != nil {
		f.Close()
		return errors.Wrap(err, path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

// truncated maps short reads onto ErrSizeMismatch.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(ErrSizeMismatch, err.Error())
	}
	return err
}
