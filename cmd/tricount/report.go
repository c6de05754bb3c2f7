// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/tricount/triangle"
)

// writeReport prints the per-worker table followed by the run totals.
func writeReport(w io.Writer, res *triangle.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%s\n", title(res.Strategy))
	fmt.Fprintln(bw, "thread_id, num_vertices, num_edges, triangle_count, time_taken")
	for _, wr := range res.PerWorker {
		fmt.Fprintf(bw, "%d, %d, %d, %d, %s\n", wr.Worker, wr.Vertices, wr.Edges, wr.Triangles, seconds(wr.Elapsed))
	}
	fmt.Fprintf(bw, "Number of triangles : %d\n", res.Triangles)
	fmt.Fprintf(bw, "Number of unique triangles : %d\n", res.Distinct())
	if res.Strategy != triangle.Serial {
		fmt.Fprintf(bw, "Partitioning time (in seconds) : %s\n", seconds(res.PartitionTime))
	}
	fmt.Fprintf(bw, "Time taken (in seconds) : %s\n", seconds(res.TotalTime))
	return bw.Flush()
}

func title(s triangle.Strategy) string {
	switch s {
	case triangle.Serial:
		return "Serial"
	case triangle.VertexBalanced:
		return "Vertex-based work partitioning"
	case triangle.EdgeBalanced:
		return "Edge-based work partitioning"
	case triangle.Dynamic:
		return "Dynamic task mapping"
	}
	return s.String()
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.5f", d.Seconds())
}
