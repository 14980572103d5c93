// Copyright 2026 The tiling Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tiling

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

var (
	testStroke = color.RGBA{R: 242, G: 60, B: 60, A: 255}
	testFill   = color.RGBA{R: 242, G: 194, B: 106, A: 255}
)

func mustShape(t *testing.T, sides int) Shape {
	t.Helper()
	s, err := NewShape(sides, testFill, testStroke)
	if err != nil {
		t.Fatalf("NewShape(%d) failed: %v", sides, err)
	}
	return s
}

func TestNewShapeTooFewSides(t *testing.T) {
	for _, sides := range []int{-1, 0, 1, 2} {
		if _, err := NewShape(sides, testFill, testStroke); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("NewShape(%d) = %v, want ErrInvalidShape", sides, err)
		}
	}
	if _, err := NewShape(3, testFill, testStroke); err != nil {
		t.Errorf("NewShape(3) failed: %v", err)
	}
}

func TestCircumradius(t *testing.T) {
	// Unit edge length: R = 0.5 / sin(pi/n).
	tests := []struct {
		sides int
		want  float64
	}{
		{3, 1 / math.Sqrt(3)},
		{4, math.Sqrt2 / 2},
		{6, 1},
		{12, 0.5 / math.Sin(math.Pi/12)},
	}
	for _, tt := range tests {
		if got := circumradius(tt.sides); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("circumradius(%d) = %v, want %v", tt.sides, got, tt.want)
		}
	}
}

func TestVerticesUnitEdges(t *testing.T) {
	for _, sides := range []int{3, 4, 5, 6, 8, 12} {
		s := Shape{sides: sides, center: r2.Point{X: 2.5, Y: -1}, rotation: 0.7}
		vs := s.Vertices()
		if len(vs) != sides {
			t.Fatalf("len(Vertices) = %d, want %d", len(vs), sides)
		}
		for i := range vs {
			d := vs[(i+1)%sides].Sub(vs[i]).Norm()
			if math.Abs(d-1) > epsilon {
				t.Errorf("%d-gon edge %d has length %v, want 1", sides, i, d)
			}
		}
	}
}

func TestHexagonFirstVertex(t *testing.T) {
	// A hexagon at the origin with rotation 0 has vertex 0 at (R, 0) with
	// R = 1, which the canonical 128 px/unit canvas maps to x = 128 px.
	s := Shape{sides: 6}
	v := s.vertex(0)
	if math.Abs(v.X-1) > epsilon || math.Abs(v.Y) > epsilon {
		t.Errorf("hexagon vertex 0 = %v, want (1, 0)", v)
	}
	const scale = 128.0
	if px := v.X * scale; math.Abs(px-128) > 1e-6 {
		t.Errorf("pixel x = %v, want 128", px)
	}
}

func TestEdgeOutOfRange(t *testing.T) {
	s := Shape{sides: 4}
	for _, e := range []int{-1, 4, 10} {
		_, _, err := s.Edge(e)
		var re *RangeError
		if !errors.As(err, &re) {
			t.Errorf("Edge(%d) = %v, want RangeError", e, err)
		}
	}
	if _, _, err := s.Edge(3); err != nil {
		t.Errorf("Edge(3) failed: %v", err)
	}
}

func TestAdjacentSharesEdge(t *testing.T) {
	// Attach polygons of several side counts to every edge of a hexagon.
	// The attached shape's edge 0 must coincide with the parent edge,
	// reversed, and the two centers must be a parent apothem plus a child
	// apothem apart.
	parent := Shape{sides: 6}
	for _, sides := range []int{3, 4, 6, 12} {
		for e := 0; e < parent.sides; e++ {
			child := parent.adjacent(sides, e, testFill, testStroke)
			p0, p1 := parent.edge(e)
			q0, q1 := child.edge(0)
			if !pointsAlmostEqual(q0, p1) || !pointsAlmostEqual(q1, p0) {
				t.Errorf("%d-gon on edge %d: edge 0 = (%v, %v), want reversed (%v, %v)",
					sides, e, q0, q1, p1, p0)
			}
			want := apothem(6) + apothem(sides)
			if d := child.center.Sub(parent.center).Norm(); math.Abs(d-want) > epsilon {
				t.Errorf("%d-gon on edge %d: center distance = %v, want %v", sides, e, d, want)
			}
		}
	}
}

func TestAdjacentOppositeSide(t *testing.T) {
	// The child lies on the far side of the shared edge: both centers
	// project onto opposite signs of the edge normal.
	parent := Shape{sides: 4}
	for e := 0; e < 4; e++ {
		child := parent.adjacent(3, e, testFill, testStroke)
		p0, p1 := parent.edge(e)
		mid := midpoint(p0, p1)
		dir := p1.Sub(p0)
		normal := r2.Point{X: dir.Y, Y: -dir.X}
		side := func(p r2.Point) float64 { return p.Sub(mid).Dot(normal) }
		if side(parent.center)*side(child.center) >= 0 {
			t.Errorf("edge %d: child center %v is on the parent's side", e, child.center)
		}
	}
}

func TestTranslated(t *testing.T) {
	s := Shape{sides: 3, center: r2.Point{X: 1, Y: 2}, rotation: 0.5, fill: testFill, stroke: testStroke}
	got := s.translated(r2.Point{X: -3, Y: 4})
	if want := (r2.Point{X: -2, Y: 6}); !pointsAlmostEqual(got.center, want) {
		t.Errorf("translated center = %v, want %v", got.center, want)
	}
	if got.rotation != s.rotation || got.sides != s.sides {
		t.Errorf("translated changed geometry: %+v", got)
	}
	if got.id != 0 {
		t.Errorf("translated carried id %d", got.id)
	}
}

func TestRotationsCongruent(t *testing.T) {
	step := 2 * math.Pi / 6
	tests := []struct {
		a, b  float64
		sides int
		want  bool
	}{
		{0, 0, 6, true},
		{0, step, 6, true},
		{0, -2 * step, 6, true},
		{0, 3*step + 1e-9, 6, true},
		{0, step / 2, 6, false},
		{0.3, 0.3 + 2*math.Pi/4, 4, true},
		{0.3, 0.3 + 2*math.Pi/6, 4, false},
	}
	for _, tt := range tests {
		if got := rotationsCongruent(s1.Angle(tt.a), s1.Angle(tt.b), tt.sides); got != tt.want {
			t.Errorf("rotationsCongruent(%v, %v, %d) = %v, want %v", tt.a, tt.b, tt.sides, got, tt.want)
		}
	}
}
