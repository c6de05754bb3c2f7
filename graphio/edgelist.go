// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: Text edge-list grammar, parser and writer.
//
// Format:
//
//	# comment until end of line
//	n 4          optional header, before any edge, fixes the vertex count
//	0 1          one directed edge per line: src dst
//	1 2
//
// Without a header the vertex count is max id + 1.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/tricount/core"
)

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// edgeListFile is the parse tree: a sequence of possibly empty lines.
type edgeListFile struct {
	Lines []*edgeListLine `parser:"@@*"`
}

type edgeListLine struct {
	Pos   lexer.Position
	Count *uint64   `parser:"( 'n' @Int"`
	Edge  *edgePair `parser:"| @@ )? EOL"`
}

type edgePair struct {
	Src uint64 `parser:"@Int"`
	Dst uint64 `parser:"@Int"`
}

var edgeListParser = participle.MustBuild[edgeListFile](
	participle.Lexer(edgeListLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ParseEdgeList reads a text edge list from r. name labels parse errors.
// Duplicate edges are merged; self-loops need core.WithLoops.
//
// Errors: ErrSyntax (with line/column), ErrBadHeader for a misplaced or
// repeated header, core.ErrVertexOutOfRange for ids ≥ the header count,
// core.ErrTooManyVertices for ids that do not fit a VertexID.
func ParseEdgeList(name string, r io.Reader, opts ...core.Option) (*core.Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return ParseEdgeListString(name, string(raw), opts...)
}

// ParseEdgeListString is ParseEdgeList over an in-memory document.
func ParseEdgeListString(name, text string, opts ...core.Option) (*core.Graph, error) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	ast, err := edgeListParser.ParseString(name, text)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	var (
		count  *uint64
		pairs  [][2]core.VertexID
		maxID  = -1
		sawAny bool
	)
	for _, line := range ast.Lines {
		switch {
		case line.Count != nil:
			if count != nil || sawAny {
				return nil, errors.Wrapf(ErrBadHeader, "%s: header must come once, before any edge", line.Pos)
			}
			if *line.Count > core.MaxVertices {
				return nil, errors.Wrapf(core.ErrTooManyVertices, "%s: n=%d", line.Pos, *line.Count)
			}
			count = line.Count
		case line.Edge != nil:
			sawAny = true
			src, dst := line.Edge.Src, line.Edge.Dst
			if src >= core.MaxVertices || dst >= core.MaxVertices {
				return nil, errors.Wrapf(core.ErrTooManyVertices, "%s: edge %d→%d", line.Pos, src, dst)
			}
			pairs = append(pairs, [2]core.VertexID{core.VertexID(src), core.VertexID(dst)})
			maxID = max(maxID, int(max(src, dst)))
		}
	}

	n := maxID + 1
	if count != nil {
		n = int(*count)
	}
	b, err := core.NewBuilder(n, opts...)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	if err := b.AddEdges(pairs); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return b.Build()
}

// WriteEdgeList writes g with an "n <count>" header and one "src dst" line
// per edge in CSR order, so isolated trailing vertices survive a round trip.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "n %d\n", g.VertexCount()); err != nil {
		return errors.Wrap(err, "write header")
	}
	for u := 0; u < g.VertexCount(); u++ {
		for _, v := range g.OutNeighbors(core.VertexID(u)) {
			if _, err := fmt.Fprintf(bw, "%d %d\n", u, v); err != nil {
				return errors.Wrapf(err, "write edge %d→%d", u, v)
			}
		}
	}
	return errors.Wrap(bw.Flush(), "flush")
}
