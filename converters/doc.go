// Package converters provides two-way adapters between core.Graph and
// gonum.org/v1/gonum/graph, so graphs can be handed to gonum's algorithms
// (topo, path, network) or imported from code that already builds gonum
// graphs.
//
// Node IDs differ between the two worlds: gonum uses sparse int64 IDs, core
// uses dense VertexIDs. FromGonum compacts IDs in ascending order and returns
// the mapping; ToGonum uses VertexID as the int64 node ID.
package converters
