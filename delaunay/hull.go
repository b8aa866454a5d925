// Copyright (c) 2026 The sweepdelaunay Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"math"

	"github.com/golang/geo/r2"
)

// edgeStackCapacity bounds legalize's explicit flip stack. Recursion is
// eliminated with a fixed-size stack; overflow can only happen on
// pathologically degenerate input and is handled by silently dropping
// the push (see legalize).
const edgeStackCapacity = 256

// HullContext is the advancing hull: a doubly linked CCW cycle over the
// points currently on the boundary of the partial triangulation, plus
// an angular hash giving O(1)-expected point location. It is created
// fresh for each call to Triangulate and discarded afterward.
type HullContext struct {
	prev, next []VertIndex
	tri        []EdgeIndex
	hash       []VertIndex

	edgeStack [edgeStackCapacity]EdgeIndex
	stackLen  int

	hashSize int
	start    VertIndex
	size     int

	center r2.Point
}

// newHullContext allocates a hull context sized for n input points.
func newHullContext(n int) *HullContext {
	hashSize := int(math.Ceil(math.Sqrt(float64(n))))
	return &HullContext{
		prev:     make([]VertIndex, n),
		next:     make([]VertIndex, n),
		tri:      make([]EdgeIndex, n),
		hash:     make([]VertIndex, hashSize),
		hashSize: hashSize,
	}
}

// seedHull initializes the hull as the 3-cycle over the seed triangle's
// vertices.
func (h *HullContext) seedHull(points []r2.Point, seed vertTriple, center r2.Point) {
	i0, i1, i2 := seed.a, seed.b, seed.c

	h.next[i0], h.next[i1], h.next[i2] = i1, i2, i0
	h.prev[i0], h.prev[i1], h.prev[i2] = i2, i0, i1

	h.tri[i0] = 0
	h.tri[i1] = 1
	h.tri[i2] = 2

	for i := range h.hash {
		h.hash[i] = noVertex
	}
	h.center = center
	h.hash[hashKey(points[i0], center, h.hashSize)] = i0
	h.hash[hashKey(points[i1], center, h.hashSize)] = i1
	h.hash[hashKey(points[i2], center, h.hashSize)] = i2

	h.start = i0
	h.size = 3
}

// hashPoint records v in the angular hash bucket for point p.
func (h *HullContext) hashPoint(p r2.Point, v VertIndex) {
	h.hash[hashKey(p, h.center, h.hashSize)] = v
}

// locate finds a hull vertex whose angular bucket is, or is near, p's
// bucket and that is still live on the hull (a stale hash entry points
// at a vertex since removed; liveness is witnessed by start != next[start]
// for that vertex, i.e. it is still part of a multi-vertex cycle rather
// than a removed self-loop). Falls back to bucket 0 if every bucket
// walked is stale or empty.
func (h *HullContext) locate(p r2.Point) VertIndex {
	key := hashKey(p, h.center, h.hashSize)
	for j := 0; j < h.hashSize; j++ {
		k := (key + j) % h.hashSize
		v := h.hash[k]
		if v != noVertex && v != h.next[v] {
			return v
		}
	}
	return h.hash[0]
}

// visibleEdge walks the hull from the vertex located near p to find the
// first edge (e, next[e]) visible from p, i.e. the edge p lies strictly
// outside of. It also returns the anchor vertex (sstart) the walk began
// from; the caller only needs the backward walk when the visible edge
// found is that same anchor (no forward progress was made). It reports
// ok=false if the walk returns to its own starting point, which
// classifies p as a near-duplicate of an existing hull vertex.
func (h *HullContext) visibleEdge(points []r2.Point, p r2.Point, walked VertIndex) (e, sstart VertIndex, ok bool) {
	sstart = h.prev[walked]
	e = sstart
	q := h.next[e]
	for orient2DFast(p, points[e], points[q]) >= 0 {
		e = q
		if e == sstart {
			return 0, sstart, false
		}
		q = h.next[e]
	}
	return e, sstart, true
}

// link makes a the twin of b (and, if b is live, b the twin of a),
// maintaining twin symmetry. A noEdge value for b leaves a on the hull.
func link(halfEdges []EdgeIndex, a EdgeIndex, b EdgeIndex) {
	halfEdges[a] = b
	if b != noEdge {
		halfEdges[b] = a
	}
}

// pushEdge pushes e onto the legalize stack, silently dropping the push
// if the stack is at capacity. Overflow requires pathologically
// degenerate input; dropping it means legalize may leave one local flip
// unperformed rather than corrupt memory or recurse unboundedly.
func (h *HullContext) pushEdge(e EdgeIndex) {
	if h.stackLen < len(h.edgeStack) {
		h.edgeStack[h.stackLen] = e
		h.stackLen++
	}
}

// popEdge pops the legalize stack. ok is false if the stack was empty.
func (h *HullContext) popEdge() (e EdgeIndex, ok bool) {
	if h.stackLen == 0 {
		return 0, false
	}
	h.stackLen--
	return h.edgeStack[h.stackLen], true
}

// legalize restores the local Delaunay property after a new triangle is
// emitted, starting from half-edge a, flipping edges that fail the
// in-circle test. It returns the stable outer half-edge that the caller
// should record as the hull's tri[] entry for the vertex just inserted.
func (t *Triangulation) legalize(h *HullContext, a EdgeIndex) EdgeIndex {
	// The edge stack's backing array is owned by the hull context and
	// reused across calls, but each legalization starts from an empty
	// logical stack.
	h.stackLen = 0
	var ar EdgeIndex
	for {
		b := t.halfEdges[a]
		a0 := a - a%3
		ar = a0 + (a+2)%3

		if b == noEdge {
			// a lies on the hull; nothing to flip.
			var ok bool
			a, ok = h.popEdge()
			if !ok {
				break
			}
			continue
		}

		b0 := b - b%3
		al := a0 + (a+1)%3
		bl := b0 + (b+2)%3

		p0 := t.triangles[ar]
		pr := t.triangles[a]
		pl := t.triangles[al]
		p1 := t.triangles[bl]

		if inCircle(t.points[p0], t.points[pr], t.points[pl], t.points[p1]) {
			t.triangles[a] = p1
			t.triangles[b] = p0

			hbl := t.halfEdges[bl]
			if hbl == noEdge {
				// The destroyed edge was on the hull; find the hull
				// vertex whose outer edge was bl and repoint it at a.
				e := h.start
				for {
					if h.tri[e] == bl {
						h.tri[e] = a
						break
					}
					e = h.prev[e]
					if e == h.start {
						break
					}
				}
			}

			link(t.halfEdges, a, hbl)
			link(t.halfEdges, b, t.halfEdges[ar])
			link(t.halfEdges, ar, bl)

			br := b0 + (b+1)%3
			h.pushEdge(br)
			continue
		}

		var ok bool
		a, ok = h.popEdge()
		if !ok {
			break
		}
	}
	return ar
}
