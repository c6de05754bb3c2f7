// SPDX-License-Identifier: MIT
//
// File: entry.go
// Role: The persisted record of one run.

package history

import (
	"time"

	"github.com/katalvlaran/tricount/core"
	"github.com/katalvlaran/tricount/triangle"
)

// Entry is one finished run. Durations encode as nanoseconds.
type Entry struct {
	Graph     string        `json:"graph"`
	Strategy  string        `json:"strategy"`
	Workers   int           `json:"workers"`
	Vertices  int           `json:"vertices"`
	Edges     int           `json:"edges"`
	Triangles int64         `json:"triangles"`
	Distinct  int64         `json:"distinct"`
	MinEdges  float64       `json:"min_edges"`
	MaxEdges  float64       `json:"max_edges"`
	Partition time.Duration `json:"partition_ns"`
	Total     time.Duration `json:"total_ns"`
	At        time.Time     `json:"at"`

	// Seq is assigned by Record and is not part of the stored document.
	Seq uint64 `json:"-"`
}

// EntryFromResult flattens a run result together with the graph's shape.
func EntryFromResult(graph string, st core.Stats, res *triangle.Result) Entry {
	bal := res.Imbalance()
	return Entry{
		Graph:     graph,
		Strategy:  res.Strategy.String(),
		Workers:   res.Workers,
		Vertices:  st.Vertices,
		Edges:     st.Edges,
		Triangles: res.Triangles,
		Distinct:  res.Distinct(),
		MinEdges:  bal.MinEdges,
		MaxEdges:  bal.MaxEdges,
		Partition: res.PartitionTime,
		Total:     res.TotalTime,
		At:        time.Now().UTC(),
	}
}
