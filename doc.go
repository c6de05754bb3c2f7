// Package tricount counts directed triangles in large, static, sparse graphs
// and compares four ways of spreading that work across goroutines.
//
// 🚀 What is tricount?
//
//	A parallel triangle-counting engine built on an immutable CSR graph:
//		• Graph store: compressed out- and in-adjacency, sorted neighbor lists
//		• Partitioning: vertex-balanced, edge-balanced and a shared atomic cursor
//		• Counting: serial reference plus three parallel strategies
//		• I/O: binary CSR dump and a plain-text edge list
//		• Fixtures: deterministic topology generators (cycles, wheels, solids, G(n,p)…)
//		• Run history: a Badger store of past results per graph
//
// Every edge u→v contributes |In(u) ∩ Out(v)|, with u and v excluded. Each
// directed 3-cycle is therefore seen three times, once per edge; the raw sum
// divided by three is the number of distinct cycles. The sum never depends on
// the strategy, the worker count or goroutine scheduling.
//
// Layout:
//
//	core/       - VertexID, Builder and the immutable CSR Graph
//	partition/  - static range splitters and the dynamic Cursor
//	triangle/   - CountCommon, CountSerial, Count and per-worker results
//	builder/    - topology constructors and textual generator specs
//	graphio/    - binary CSR and text edge-list readers/writers
//	converters/ - gonum bridge (FromGonum, ToGonum) and dense TraceCube check
//	history/    - Badger-backed run log
//	config/     - viper settings and the zerolog console logger
//	montecarlo/ - parallel pi estimator sharing the partitioning scheme
//	cmd/        - tricount and piestimate CLIs
//
// Quick ASCII example:
//
//	    0 ──▶ 1
//	    ▲     │
//	    └─ 2 ◀┘
//
//	one directed 3-cycle: raw count 3, distinct 1.
package tricount
