// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// spec.go - textual generator specs for CLIs and config files.
//
// Grammar: name[:arg]... with case-insensitive names, e.g.
//
//	complete:8   wheel:100   grid:4:5   bipartite:3:4
//	platonic:icosahedron[:hub]   tournament:50
//	random:1000:0.01   regular:200:3   empty:5 path:5 cycle:5 star:5
//
// Several specs may be joined with '+' to build their disjoint union.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePlatonicName maps "tetrahedron", "cube", ... (any case) to a PlatonicName.
func ParsePlatonicName(s string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("platonic %q: %w", s, ErrOptionViolation)
}

// ParseSpec turns a generator spec into constructors, one per '+' term.
// Parameter domains are still checked by the constructors themselves.
func ParseSpec(spec string) ([]Constructor, error) {
	var out []Constructor
	for _, term := range strings.Split(spec, "+") {
		c, err := parseTerm(strings.TrimSpace(term))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseTerm(term string) (Constructor, error) {
	parts := strings.Split(term, ":")
	name, args := strings.ToLower(parts[0]), parts[1:]

	bad := func(why string) error {
		return fmt.Errorf("%q: %s: %w", term, why, ErrBadSpec)
	}
	ints := func(k int) ([]int, error) {
		if len(args) != k {
			return nil, bad(fmt.Sprintf("want %d integer argument(s)", k))
		}
		vals := make([]int, k)
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return nil, bad(fmt.Sprintf("argument %d", i+1))
			}
			vals[i] = v
		}
		return vals, nil
	}
	one := func(fn func(int) Constructor) (Constructor, error) {
		v, err := ints(1)
		if err != nil {
			return nil, err
		}
		return fn(v[0]), nil
	}
	two := func(fn func(int, int) Constructor) (Constructor, error) {
		v, err := ints(2)
		if err != nil {
			return nil, err
		}
		return fn(v[0], v[1]), nil
	}

	switch name {
	case "empty":
		return one(Empty)
	case "path":
		return one(Path)
	case "cycle":
		return one(Cycle)
	case "complete":
		return one(Complete)
	case "star":
		return one(Star)
	case "wheel":
		return one(Wheel)
	case "tournament":
		return one(Tournament)
	case "bipartite":
		return two(CompleteBipartite)
	case "grid":
		return two(Grid)
	case "regular":
		return two(RandomRegular)
	case "random":
		if len(args) != 2 {
			return nil, bad("want n and p")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, bad("n")
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, bad("p")
		}
		return RandomSparse(n, p), nil
	case "platonic":
		if len(args) < 1 || len(args) > 2 {
			return nil, bad("want solid name and optional hub")
		}
		p, err := ParsePlatonicName(args[0])
		if err != nil {
			return nil, err
		}
		hub := len(args) == 2
		if hub && !strings.EqualFold(args[1], "hub") {
			return nil, bad("second argument must be hub")
		}
		return PlatonicSolid(p, hub), nil
	}
	return nil, bad("unknown generator")
}
