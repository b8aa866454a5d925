// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"fmt"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"

	"github.com/2dChan/sweepdelaunay/delaunay"
	"github.com/2dChan/sweepdelaunay/utils"
)

// DiagramOptions

func TestWithEps(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps positive", 0.5, false},
		{"eps zero", 0, true},
		{"eps negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &DiagramOptions{Eps: defaultEps}
			opt := WithEps(tt.eps)
			err := opt(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithEps(%v) error = %v, wantErr %v", tt.eps, err, tt.wantErr)
			}
			if err == nil && opts.Eps != tt.eps {
				t.Errorf("WithEps(%v) opts.Eps = %v, want %v", tt.eps, opts.Eps, tt.eps)
			}
		})
	}
}

// Diagram

func TestNewDiagram_WithEps(t *testing.T) {
	points := utils.GenerateRandomPoints(10, 0)
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps positive small", 0.01, false},
		{"eps zero", 0, true},
		{"eps negative", -0.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vd, err := NewDiagram(points, WithEps(tt.eps))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewDiagram(..., WithEps(%v)) error = %v, wantErr %v", tt.eps, err, tt.wantErr)
			}

			if err == nil && vd.eps != tt.eps {
				t.Errorf("NewDiagram(..., WithEps(%v)) eps = %v, want %v", tt.eps, vd.eps, tt.eps)
			}
		})
	}
}

func TestDiagram_Invariants(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"minimal", 4},
		{"small", 10},
		{"medium", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := utils.GenerateRandomPoints(tt.size, 0)
			vd := mustNewDiagram(t, points)

			tri, _ := delaunay.Triangulate(points)
			want := len(tri.Triangles()) / 3
			got := len(vd.Vertices)
			if got != want {
				t.Errorf("vd.Vertices count = %v, want %v (one per Delaunay triangle)", got, want)
			}

			if got1, want1 := len(vd.Sites), tt.size; got1 != want1 {
				t.Errorf("vd.Sites count = %v, want %v", got1, want1)
			}

			if got2, want2 := vd.NumCells(), len(vd.Sites); got2 != want2 {
				t.Errorf("vd.NumCells() = %v, want %v", got2, want2)
			}
		})
	}
}

func TestNewDiagram_DegenerateInput(t *testing.T) {
	points := utils.GenerateColinearPoints(5, 2.0)
	if _, err := NewDiagram(points); err == nil {
		t.Errorf("NewDiagram(...) error = nil, want non-nil")
	}
}

func TestNewDiagram_TooFewSites(t *testing.T) {
	points := utils.GenerateRandomPoints(2, 0)
	if _, err := NewDiagram(points); err == nil {
		t.Errorf("NewDiagram(...) error = nil, want non-nil")
	}
}

func TestNewDiagram_VerifyCCW(t *testing.T) {
	points := utils.GenerateRandomPoints(100, 0)
	vd := mustNewDiagram(t, points)

	for i := range vd.NumCells() {
		cell := vd.Cell(i)
		if cell.NumVertices() < 3 {
			continue
		}

		center := cell.Site()
		area := 0.0
		for j := 0; j < cell.NumVertices(); j++ {
			c := cell.Vertex(j)
			n := cell.Vertex((j + 1) % cell.NumVertices())
			area += (c.X-center.X)*(n.Y-center.Y) - (n.X-center.X)*(c.Y-center.Y)
		}
		if area <= 0 {
			t.Errorf("vd.Cell(%d) vertices not sorted CCW around site, signed area = %v", i, area)
		}
	}
}

func TestDiagram_NumCells(t *testing.T) {
	points := utils.GenerateRandomPoints(10, 0)
	vd := mustNewDiagram(t, points)
	want := len(vd.Sites)
	got := vd.NumCells()
	if got != want {
		t.Errorf("Diagram.NumCells() = %d, want %d", got, want)
	}
}

func TestDiagram_Cell(t *testing.T) {
	points := utils.GenerateRandomPoints(10, 0)
	vd := mustNewDiagram(t, points)
	for i := range vd.NumCells() {
		c := vd.Cell(i)
		want := Cell{i, vd}
		if diff := cmp.Diff(want, c, cmp.AllowUnexported(Cell{}, Diagram{})); diff != "" {
			t.Errorf("vd.Cell(%d) mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestDiagram_Cell_Panic(t *testing.T) {
	points := utils.GenerateRandomPoints(10, 0)
	vd := mustNewDiagram(t, points)

	tests := []struct {
		name  string
		index int
	}{
		{"negative index", -1},
		{"out of range", vd.NumCells()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("vd.Cell(%d) did not panic, want panic", tt.index)
				}
			}()
			vd.Cell(tt.index)
		})
	}
}

func TestDiagram_Relax(t *testing.T) {
	tests := []struct {
		name  string
		steps int
		size  int
	}{
		{"zero step", 0, 200},
		{"one step", 1, 200},
		{"multiple steps", 5, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := utils.GenerateRandomPoints(tt.size, 0)
			vd := mustNewDiagram(t, append([]r2.Point(nil), points...))
			vdOld := mustNewDiagram(t, append([]r2.Point(nil), points...))

			err := vd.Relax(tt.steps)
			if err != nil {
				t.Fatalf("vd.Relax(%d) error = %v, want nil", tt.steps, err)
			}

			if len(vd.Sites) != len(vdOld.Sites) {
				t.Errorf("vd.Relax(%d) Sites count = %d, want %d", tt.steps,
					len(vd.Sites), len(vdOld.Sites))
			}

			expectChange := tt.steps != 0
			msg := "changed"
			if expectChange {
				msg = "not changed"
			}
			if cmp.Equal(vd.Sites, vdOld.Sites, cmp.AllowUnexported(r2.Point{})) == expectChange {
				t.Errorf("vd.Relax(%d) Sites %s", tt.steps, msg)
			}
		})
	}

	points := utils.GenerateRandomPoints(100, 0)
	vd := mustNewDiagram(t, points)
	if err := vd.Relax(-1); err == nil {
		t.Errorf("vd.Relax(-1) error = nil, want non-nil")
	}
}

// Benchmarks

func BenchmarkNewDiagram(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4, 1e+5}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomPoints(pointsCnt, 0)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_, err := NewDiagram(points)
				if err != nil {
					b.Fatalf("NewDiagram(...) error = %v, want nil", err)
				}
			}
		})
	}
}

func BenchmarkDiagram_Relax(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	steps := []int{1, 10}
	for _, pointsCnt := range sizes {
		for _, step := range steps {
			b.Run(fmt.Sprintf("N%d Steps%d", pointsCnt, step), func(b *testing.B) {
				points := utils.GenerateRandomPoints(pointsCnt, 0)

				b.ReportAllocs()
				b.ResetTimer()
				for b.Loop() {
					b.StopTimer()
					vd, err := NewDiagram(append([]r2.Point(nil), points...))
					if err != nil {
						b.Fatalf("NewDiagram(...) error = %v, want nil", err)
					}
					b.StartTimer()

					err = vd.Relax(step)
					if err != nil {
						b.Fatalf("vd.Relax(%d) error = %v, want nil", step, err)
					}
				}
			})
		}
	}
}

// Helpers

func mustNewDiagram(t *testing.T, points []r2.Point) *Diagram {
	t.Helper()
	vd, err := NewDiagram(points)
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}
	return vd
}
