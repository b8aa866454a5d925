// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a
// cell in a Diagram. The cell's index corresponds to the index of its
// site in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.d.Sites[c.idx]
}

// NumVertices returns the number of vertices in the cell.
// This equals the number of neighbors.
func (c Cell) NumVertices() int {
	return c.d.CellOffsets[c.idx+1] - c.d.CellOffsets[c.idx]
}

// VertexIndices returns the indices of the vertices that form the cell
// in the Diagram's Vertices, sorted in CCW order around the site.
func (c Cell) VertexIndices() []int {
	return c.d.CellVertices[c.d.CellOffsets[c.idx]:c.d.CellOffsets[c.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It panics if the index is out of range.
func (c Cell) Vertex(i int) r2.Point {
	start := c.d.CellOffsets[c.idx]
	end := c.d.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		panic(fmt.Sprintf("Vertex: index %d out of range [0 %d)", i, end-start))
	}
	return c.d.Vertices[c.d.CellVertices[start+i]]
}

// NumNeighbors returns the number of neighboring cells.
// This equals the number of vertices.
func (c Cell) NumNeighbors() int {
	return c.d.CellOffsets[c.idx+1] - c.d.CellOffsets[c.idx]
}

// NeighborIndices returns the indices of the neighboring cells in the
// Diagram, sorted in CCW order around the site.
func (c Cell) NeighborIndices() []int {
	return c.d.CellNeighbors[c.d.CellOffsets[c.idx]:c.d.CellOffsets[c.idx+1]]
}

// Neighbor returns the neighboring cell at the specified index.
// It panics if the index is out of range.
func (c Cell) Neighbor(i int) Cell {
	start := c.d.CellOffsets[c.idx]
	end := c.d.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		panic(fmt.Sprintf("Neighbor: index %d out of range [0 %d)", i, end-start))
	}
	return c.d.Cell(c.d.CellNeighbors[start+i])
}

// centroid returns the centroid of the cell's vertex polygon.
func (c Cell) centroid() r2.Point {
	num := c.NumVertices()
	if num == 0 {
		panic("centroid: cell has no vertices")
	}

	var sum r2.Point
	for i := range num {
		sum = sum.Add(c.Vertex(i))
	}
	return sum.Mul(1.0 / float64(num))
}
