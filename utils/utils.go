// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating and manipulating
// planar points for Delaunay triangulations and Voronoi diagrams.
package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates cnt points uniformly distributed over the
// unit square [0, 1) x [0, 1). The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return points
}

// GenerateColinearPoints generates cnt points evenly spaced along the line
// through the origin with the given slope, starting at the origin. It is
// meant for exercising a triangulator's degenerate-input handling.
func GenerateColinearPoints(cnt int, slope float64) []r2.Point {
	points := make([]r2.Point, cnt)
	for i := range cnt {
		x := float64(i)
		points[i] = r2.Point{X: x, Y: slope * x}
	}
	return points
}

// GenerateCirclePoints generates cnt points evenly spaced around the
// circle of the given radius centered at the origin.
func GenerateCirclePoints(cnt int, radius float64) []r2.Point {
	points := make([]r2.Point, cnt)
	for i := range cnt {
		theta := 2 * math.Pi * float64(i) / float64(cnt)
		points[i] = r2.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
	return points
}
