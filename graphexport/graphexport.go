// Copyright (c) 2026 The sweepdelaunay Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package graphexport converts a Delaunay triangulation into a weighted,
// undirected graph, opening it up to generic graph algorithms (shortest
// path, spanning tree, traversal) unrelated to geometry.
package graphexport

import (
	"math"
	"strconv"

	"github.com/golang/geo/r2"
	"github.com/katalvlaran/lvlath/graph"

	"github.com/2dChan/sweepdelaunay/delaunay"
)

// weightScale converts a floating point Euclidean distance into the
// integer weight lvlath's algorithms operate on, preserving sub-unit
// distances instead of truncating them to zero.
const weightScale = 1e6

// ToGraph builds an undirected, weighted graph whose vertices are the
// triangulation's point indices and whose edges are the triangulation's
// edges, weighted by Euclidean distance scaled by weightScale. Vertex
// IDs are the decimal string form of the point's index into points,
// e.g. "0", "1", "2".
func ToGraph(points []r2.Point, tri *delaunay.Triangulation) *graph.Graph {
	g := graph.NewGraph(false, true)

	for i := range points {
		g.AddVertex(&graph.Vertex{ID: strconv.Itoa(i)})
	}

	triangles := tri.Triangles()
	halfEdges := tri.HalfEdges()
	for e, opposite := range halfEdges {
		if opposite != delaunay.NoEdge && int(opposite) <= e {
			continue
		}
		a := triangles[e]
		b := triangles[delaunay.NextHalfEdge(delaunay.EdgeIndex(e))]

		weight := int64(math.Round(points[a].Sub(points[b]).Norm() * weightScale))
		g.AddEdge(strconv.Itoa(int(a)), strconv.Itoa(int(b)), weight)
	}

	return g
}
