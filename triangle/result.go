// SPDX-License-Identifier: MIT
//
// File: result.go
// Role: Aggregated views over a finished run.

package triangle

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distinct returns the number of distinct directed 3-cycles, Triangles / 3.
func (r *Result) Distinct() int64 { return r.Triangles / 3 }

// Imbalance reports the spread of processed edges across workers.
// A run without worker results yields the zero Balance.
func (r *Result) Imbalance() Balance {
	if len(r.PerWorker) == 0 {
		return Balance{}
	}
	edges := make([]float64, len(r.PerWorker))
	for i, wr := range r.PerWorker {
		edges[i] = float64(wr.Edges)
	}
	mean, std := stat.PopMeanStdDev(edges, nil)
	return Balance{
		MinEdges:    floats.Min(edges),
		MaxEdges:    floats.Max(edges),
		MeanEdges:   mean,
		StdDevEdges: std,
	}
}

// String renders a one-line summary.
func (r *Result) String() string {
	return fmt.Sprintf("strategy=%v workers=%d triangles=%d distinct=%d partition=%v total=%v",
		r.Strategy, r.Workers, r.Triangles, r.Distinct(), r.PartitionTime, r.TotalTime)
}
