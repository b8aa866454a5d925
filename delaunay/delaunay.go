// Copyright (c) 2026 The sweepdelaunay Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay computes the Delaunay triangulation of a finite set
// of planar points with the sweepcircle incremental-insertion
// algorithm: a seed triangle is chosen near the point set's center, the
// remaining points are inserted in order of increasing distance from
// the seed's circumcenter, and each insertion locates a visible hull
// edge, emits new triangles, and legalizes them with in-circle edge
// flips. The result is a compact half-edge representation plus the
// ordered convex hull.
package delaunay

import (
	"iter"
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// Triangulation is the half-edge representation of a Delaunay
// triangulation: three parallel arrays indexed by VertIndex/EdgeIndex
// into the caller's point slice, which is held by reference and never
// copied.
type Triangulation struct {
	points    []r2.Point
	triangles []VertIndex
	halfEdges []EdgeIndex
	hull      []VertIndex
}

// Edge is an undirected edge of the triangulation, given by its two
// endpoint points.
type Edge struct {
	P0, P1 r2.Point
}

// Triangulate builds the Delaunay triangulation of points in a single
// pass. It never fails: degenerate input (fewer than 3 points, or
// points that are colinear to floating point precision) is resolved
// into an empty triangulation whose Hull() is the colinear sweep of the
// input, per the package's no-error-channel contract. The returned
// HullContext is the scratch the construction used; it carries no
// further meaning once Triangulate returns.
func Triangulate(points []r2.Point) (*Triangulation, *HullContext) {
	n := len(points)
	maxTriangles := 0
	if n > 2 {
		maxTriangles = 2*n - 5
		if maxTriangles < 0 {
			maxTriangles = 0
		}
	}

	t := &Triangulation{
		points:    points,
		triangles: make([]VertIndex, maxTriangles*3),
		halfEdges: make([]EdgeIndex, maxTriangles*3),
		hull:      make([]VertIndex, n),
	}
	h := newHullContext(n)

	if n == 0 {
		t.hull = t.hull[:0]
		t.triangles = t.triangles[:0]
		t.halfEdges = t.halfEdges[:0]
		return t, h
	}

	seed, err := seedTriangle(points)
	if err != nil {
		t.buildColinearHull(points)
		t.triangles = t.triangles[:0]
		t.halfEdges = t.halfEdges[:0]
		return t, h
	}

	t.build(h, points, seed)
	return t, h
}

// buildColinearHull handles the degenerate branch: points are sorted by
// (x - x0) + (y - y0), which is monotonic along any single line through
// the first point except one of slope -1 (along which the key is
// constant), and the hull is the strictly-increasing run of that key.
func (t *Triangulation) buildColinearHull(points []r2.Point) {
	ids := make([]VertIndex, len(points))
	for i := range ids {
		ids[i] = VertIndex(i)
	}
	x0, y0 := points[0].X, points[0].Y
	dist := make([]float64, len(points))
	for i, p := range points {
		dist[i] = (p.X - x0) + (p.Y - y0)
	}
	sort.Slice(ids, func(a, b int) bool {
		return dist[ids[a]] < dist[ids[b]]
	})

	t.hull = t.hull[:0]
	d0 := math.Inf(-1)
	for _, id := range ids {
		d := dist[id]
		if d > d0 {
			t.hull = append(t.hull, id)
			d0 = d
		}
	}
}

// build runs the incremental insertion loop once a non-degenerate seed
// triangle has been found.
func (t *Triangulation) build(h *HullContext, points []r2.Point, seed vertTriple) {
	n := len(points)
	i0, i1, i2 := seed.a, seed.b, seed.c
	center := Circumcenter(points[i0], points[i1], points[i2])

	ids := make([]VertIndex, n)
	dist := make([]float64, n)
	for i, p := range points {
		ids[i] = VertIndex(i)
		dist[i] = distSquared(p, center)
	}
	sort.Slice(ids, func(a, b int) bool {
		return dist[ids[a]] < dist[ids[b]]
	})

	h.seedHull(points, seed, center)

	trianglesLen := 0
	t.addTriangle(&trianglesLen, seed, triTriple{noEdge, noEdge, noEdge})

	havePPrev := false
	var pPrev r2.Point

	for _, i := range ids {
		p := points[i]

		if havePPrev && distSquared(p, pPrev) <= 2*float64Epsilon {
			continue
		}
		pPrev = p
		havePPrev = true

		if i == i0 || i == i1 || i == i2 {
			continue
		}

		walked := h.locate(p)
		e, sstart, ok := h.visibleEdge(points, p, walked)
		if !ok {
			// Near-duplicate of an existing hull vertex; skip it.
			continue
		}

		tIdx := t.addTriangle(&trianglesLen, vertTriple{a: e, b: i, c: h.next[e]},
			triTriple{a: noEdge, b: noEdge, c: h.tri[e]})
		h.tri[i] = t.legalize(h, tIdx+2)
		h.tri[e] = tIdx
		h.size++

		next := h.next[e]
		q := h.next[next]
		for orient2DFast(p, points[next], points[q]) < 0 {
			tIdx = t.addTriangle(&trianglesLen, vertTriple{a: next, b: i, c: q},
				triTriple{a: h.tri[i], b: noEdge, c: h.tri[next]})
			h.tri[i] = t.legalize(h, tIdx+2)
			h.next[next] = next // tombstone: removed from the hull
			h.size--
			next = q
			q = h.next[next]
		}

		if e == sstart {
			q = h.prev[e]
			for orient2DFast(p, points[q], points[e]) < 0 {
				tIdx = t.addTriangle(&trianglesLen, vertTriple{a: q, b: i, c: e},
					triTriple{a: noEdge, b: h.tri[e], c: h.tri[q]})
				t.legalize(h, tIdx+2)
				h.tri[q] = tIdx
				h.next[e] = e // tombstone
				h.size--
				e = q
				q = h.prev[e]
			}
		}

		h.start = e
		h.prev[i] = e
		h.next[e] = i
		h.prev[next] = i
		h.next[i] = next

		h.hashPoint(p, i)
		h.hashPoint(points[e], e)
	}

	t.hull = t.hull[:h.size]
	e := h.start
	for idx := 0; idx < h.size; idx++ {
		t.hull[idx] = e
		e = h.next[e]
	}

	t.triangles = t.triangles[:trianglesLen]
	t.halfEdges = t.halfEdges[:trianglesLen]
}

// addTriangle appends a new triangle (vertIDs, in CCW order) at the
// current write cursor, stitching its three half-edges to halfIDs, and
// advances the cursor by 3.
func (t *Triangulation) addTriangle(trianglesLen *int, vertIDs vertTriple, halfIDs triTriple) EdgeIndex {
	e := EdgeIndex(*trianglesLen)

	t.triangles[e] = vertIDs.a
	t.triangles[e+1] = vertIDs.b
	t.triangles[e+2] = vertIDs.c

	link(t.halfEdges, e, halfIDs.a)
	link(t.halfEdges, e+1, halfIDs.b)
	link(t.halfEdges, e+2, halfIDs.c)

	*trianglesLen += 3
	return e
}

// Triangles returns the origin vertex of every half-edge. Its length is
// a multiple of 3; half-edges 3t, 3t+1, 3t+2 are triangle t's vertices
// in CCW order.
func (t *Triangulation) Triangles() []VertIndex {
	return t.triangles
}

// HalfEdges returns, for each half-edge, its twin, or noEdge if the
// half-edge lies on the hull. Its length equals len(Triangles()).
func (t *Triangulation) HalfEdges() []EdgeIndex {
	return t.halfEdges
}

// Hull returns the CCW-ordered vertex ring of the convex hull.
func (t *Triangulation) Hull() []VertIndex {
	return t.hull
}

// NextHalfEdge returns the next half-edge around e's triangle in CCW
// order.
func NextHalfEdge(e EdgeIndex) EdgeIndex {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// Edges returns a lazy sequence yielding each undirected edge of the
// triangulation exactly once. For each half-edge e whose twin is
// noEdge or whose index is greater than e (so e is the canonical,
// lower-indexed representative of the pair), it yields the edge between
// triangles[e] and triangles[NextHalfEdge(e)].
func (t *Triangulation) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := 0; e < len(t.halfEdges); e++ {
			opposite := t.halfEdges[e]
			if opposite != noEdge && opposite <= EdgeIndex(e) {
				continue
			}
			edge := Edge{
				P0: t.points[t.triangles[e]],
				P1: t.points[t.triangles[NextHalfEdge(EdgeIndex(e))]],
			}
			if !yield(edge) {
				return
			}
		}
	}
}
