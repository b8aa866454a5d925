// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voronoi implements planar Voronoi diagrams, built on the
// sweepcircle Delaunay triangulation in the delaunay subpackage.
package voronoi

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/2dChan/sweepdelaunay/delaunay"
)

const defaultEps = 1e-12

// Diagram represents a planar Voronoi diagram.
type Diagram struct {
	// Sites are the input points.
	Sites []r2.Point
	// Vertices are the Voronoi vertices, one per Delaunay triangle
	// (its circumcenter).
	Vertices []r2.Point

	// CellVertices contains indices of vertices for each cell, sorted in
	// CCW order around the site, forming a CSR-like sparse representation.
	CellVertices []int
	// CellNeighbors contains indices of neighboring sites for each cell,
	// sorted in CCW order, forming a CSR-like sparse representation.
	CellNeighbors []int
	// CellOffsets contains offsets for slicing cell data in a CSR-like format.
	CellOffsets []int

	// isHull marks, per site index, whether that site lies on the
	// underlying triangulation's convex hull. Relax uses this to leave
	// hull sites in place rather than erode the hull on repeated calls.
	isHull []bool

	// eps is the numerical precision epsilon used in diagram computations.
	eps float64
}

// DiagramOptions holds configuration options for Voronoi diagram creation.
type DiagramOptions struct {
	Eps float64
}

// DiagramOption is a functional option type for Voronoi diagram configuration.
type DiagramOption func(*DiagramOptions) error

// WithEps sets the numerical precision epsilon for diagram computation.
// It must be positive.
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewDiagram creates a new Voronoi diagram from the given sites. There
// must be at least 3 sites and they must not all be colinear.
// It returns an error if the diagram cannot be constructed.
//
// Sites on the convex hull have an unbounded cell in the true Voronoi
// diagram; this implementation closes each cell by cycling through its
// incident triangles, which approximates a bounded diagram suitable for
// rendering and Lloyd relaxation but does not model the unbounded rays
// a hull site's cell actually has.
func NewDiagram(sites []r2.Point, setters ...DiagramOption) (*Diagram, error) {
	if len(sites) < 3 {
		return nil, errors.New("NewDiagram: insufficient sites for diagram, minimum 3 required")
	}

	opts := &DiagramOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		err := set(opts)
		if err != nil {
			return nil, err
		}
	}

	tri, _ := delaunay.Triangulate(sites)
	triangles := tri.Triangles()
	numTriangles := len(triangles) / 3
	if numTriangles == 0 {
		return nil, errors.New("NewDiagram: sites are degenerate (colinear); no cells could be formed")
	}

	circumcenters := make([]r2.Point, numTriangles)
	incident := make([][]int, len(sites))
	for tIdx := 0; tIdx < numTriangles; tIdx++ {
		a, b, c := triangles[tIdx*3], triangles[tIdx*3+1], triangles[tIdx*3+2]
		circumcenters[tIdx] = delaunay.Circumcenter(sites[a], sites[b], sites[c])
		incident[a] = append(incident[a], tIdx)
		incident[b] = append(incident[b], tIdx)
		incident[c] = append(incident[c], tIdx)
	}

	isHull := make([]bool, len(sites))
	for _, v := range tri.Hull() {
		isHull[v] = true
	}

	d := &Diagram{
		Sites:       sites,
		Vertices:    circumcenters,
		CellOffsets: make([]int, len(sites)+1),
		isHull:      isHull,
		eps:         opts.Eps,
	}

	for v, order := range incident {
		site := sites[v]
		sort.Slice(order, func(i, j int) bool {
			ci, cj := circumcenters[order[i]], circumcenters[order[j]]
			return math.Atan2(ci.Y-site.Y, ci.X-site.X) < math.Atan2(cj.Y-site.Y, cj.X-site.X)
		})
		d.CellVertices = append(d.CellVertices, order...)
		d.CellOffsets[v+1] = d.CellOffsets[v] + len(order)
	}

	d.CellNeighbors = make([]int, len(d.CellVertices))
	for v := range incident {
		start, end := d.CellOffsets[v], d.CellOffsets[v+1]
		order := d.CellVertices[start:end]
		n := len(order)
		for i := range order {
			t1, t2 := order[i], order[(i+1)%n]
			d.CellNeighbors[start+i] = commonVertex(triangles, t1, t2, delaunay.VertIndex(v))
		}
	}

	return d, nil
}

// NumCells returns the number of cells in the diagram.
func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns the Voronoi cell at the specified index.
// It panics if the index is out of range.
func (d *Diagram) Cell(i int) Cell {
	if i < 0 || i >= len(d.Sites) {
		panic(fmt.Sprintf("Cell: index %d out of range [0, %d)", i, len(d.Sites)))
	}

	return Cell{idx: i, d: d}
}

// Relax performs Lloyd's relaxation by moving sites to centroids and
// recomputing the diagram. Sites on the convex hull are left in place;
// moving them would change the convex hull itself rather than just
// smoothing the interior cells.
// NOTE: Allocates excessive memory by creating new Diagram per step
func (d *Diagram) Relax(steps int) error {
	if steps < 0 {
		return fmt.Errorf("Relax: steps must be non-negative, got %d", steps)
	}

	for range steps {
		for i := range d.NumCells() {
			if d.isHull[i] {
				continue
			}
			cell := d.Cell(i)
			d.Sites[i] = cell.centroid()
		}

		// TODO: Optimize for reuse memory
		nd, err := NewDiagram(d.Sites, WithEps(d.eps))
		if err != nil {
			return err
		}

		*d = *nd
	}

	return nil
}

// commonVertex returns the vertex shared by triangles t1 and t2 other
// than v, the pivot site both triangles are incident to. It returns -1
// if no such vertex exists (t1 and t2 share only v).
func commonVertex(triangles []delaunay.VertIndex, t1, t2 int, v delaunay.VertIndex) int {
	var verts1, verts2 [3]delaunay.VertIndex
	copy(verts1[:], triangles[t1*3:t1*3+3])
	copy(verts2[:], triangles[t2*3:t2*3+3])

	for _, a := range verts1 {
		if a == v {
			continue
		}
		for _, b := range verts2 {
			if a == b {
				return int(a)
			}
		}
	}
	return -1
}
