// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InUnitSquare(t *testing.T) {
	const (
		cnt  = 100
		seed = 0
	)
	points := GenerateRandomPoints(cnt, seed)
	for i, p := range points {
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Errorf("GenerateRandomPoints(%v, %v)[%d] = %v, want within [0,1)x[0,1)", cnt, seed, i, p)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, seed)
	b := GenerateRandomPoints(cnt, seed)
	if diff := cmp.Diff(b, a, cmp.AllowUnexported(r2.Point{})); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

func TestGenerateColinearPoints(t *testing.T) {
	points := GenerateColinearPoints(5, 2.0)
	if len(points) != 5 {
		t.Fatalf("len = %v, want 5", len(points))
	}
	for i, p := range points {
		want := r2.Point{X: float64(i), Y: 2.0 * float64(i)}
		if diff := cmp.Diff(want, p, cmp.AllowUnexported(r2.Point{})); diff != "" {
			t.Errorf("GenerateColinearPoints[%d] mismatch (-want +got):\n%v", i, diff)
		}
	}
}

func TestGenerateCirclePoints_OnCircle(t *testing.T) {
	const (
		cnt     = 50
		radius  = 3.0
		epsilon = 1e-9
	)
	points := GenerateCirclePoints(cnt, radius)
	if len(points) != cnt {
		t.Fatalf("len = %v, want %v", len(points), cnt)
	}
	for i, p := range points {
		dist := math.Hypot(p.X, p.Y)
		if math.Abs(dist-radius) > epsilon {
			t.Errorf("GenerateCirclePoints(%v, %v)[%d]: distance from origin = %v, want ≈%v",
				cnt, radius, i, dist, radius)
		}
	}
}
