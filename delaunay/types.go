// Copyright (c) 2026 The sweepdelaunay Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// VertIndex indexes a point in the caller's input slice.
type VertIndex int

// EdgeIndex indexes a half-edge. A half-edge's owning triangle is
// e - (e mod 3); half-edges 3t, 3t+1, 3t+2 belong to triangle t and are
// stored in CCW order.
type EdgeIndex int

// noVertex is the sentinel value for an absent VertIndex, the idiomatic
// Go stand-in for the original Option<VertIndex>.
const noVertex VertIndex = -1

// noEdge is the sentinel value for a half-edge with no twin, i.e. one
// that lies on the current hull. It stands in for the original
// Option<EdgeIndex>.
const noEdge EdgeIndex = -1

// NoEdge is the exported form of noEdge, for callers of HalfEdges()
// outside this package that need to test for a hull-boundary half-edge.
const NoEdge = noEdge

// vertTriple is an unexported value type bundling three vertex indices.
// It carries no invariants; it exists only to pass a triangle's three
// vertices as a single argument.
type vertTriple struct {
	a, b, c VertIndex
}

// triTriple bundles three optional half-edge indices (the twins to
// stitch a new triangle's three sides to). Each field may be noEdge.
type triTriple struct {
	a, b, c EdgeIndex
}
