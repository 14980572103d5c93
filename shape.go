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
	"fmt"
	"image/color"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// epsilon is the absolute tolerance, in model units, for comparing points
// and angles. Attach transforms compose rotations and translations, so
// coordinates of coincident vertices agree only to within accumulated
// floating-point error.
const epsilon = 1e-6

// ID identifies a shape within a model. IDs are assigned sequentially from 0
// in insertion order and remain valid for the lifetime of the model.
type ID int32

// Range is a half-open interval [Start, End) of shape IDs. AddMulti returns
// the range of newly inserted shapes; AddMulti and Repeat accept ranges to
// name the shapes they operate on.
type Range struct {
	Start, End ID
}

// Len returns the number of IDs in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End - r.Start)
}

// Empty reports whether the range contains no IDs.
func (r Range) Empty() bool { return r.Len() == 0 }

// Contains reports whether id lies within the range.
func (r Range) Contains(id ID) bool { return id >= r.Start && id < r.End }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Shape is a regular polygon placed in the plane. Shapes are immutable once
// created; a Shape returned by NewShape acts as a template whose copies are
// positioned by the model.
//
// All shapes in a model have edges of length 1 in model units, so the
// circumradius is a function of the side count alone. This is what makes
// edge-to-edge attachment between polygons of different side counts close up
// exactly.
type Shape struct {
	id       ID
	sides    int
	center   r2.Point
	rotation s1.Angle
	fill     color.Color
	stroke   color.Color
}

// NewShape returns a shape template with the given number of sides, centered
// at the origin with rotation 0. The fill and stroke colors are opaque
// attributes carried through to renderers; the engine never inspects them.
func NewShape(sides int, fill, stroke color.Color) (Shape, error) {
	if sides < 3 {
		return Shape{}, ErrInvalidShape
	}
	return Shape{sides: sides, fill: fill, stroke: stroke}, nil
}

// ID returns the shape's id within its model. Templates not yet inserted
// report 0.
func (s Shape) ID() ID { return s.id }

// Sides returns the number of sides.
func (s Shape) Sides() int { return s.sides }

// Center returns the center point in model units.
func (s Shape) Center() r2.Point { return s.center }

// Rotation returns the angle of vertex 0 relative to the center.
func (s Shape) Rotation() s1.Angle { return s.rotation }

// Fill returns the fill color attribute.
func (s Shape) Fill() color.Color { return s.fill }

// Stroke returns the stroke color attribute.
func (s Shape) Stroke() color.Color { return s.stroke }

// Circumradius returns the distance from the center to each vertex.
func (s Shape) Circumradius() float64 { return circumradius(s.sides) }

// circumradius returns the center-to-vertex distance of a regular polygon
// with the given side count and edge length 1.
func circumradius(sides int) float64 {
	return 0.5 / math.Sin(math.Pi/float64(sides))
}

// apothem returns the center-to-edge-midpoint distance of a regular polygon
// with the given side count and edge length 1.
func apothem(sides int) float64 {
	return 0.5 / math.Tan(math.Pi/float64(sides))
}

// vertex returns vertex k. Vertices wind counter-clockwise, with vertex 0 at
// angle Rotation from the center.
func (s Shape) vertex(k int) r2.Point {
	a := s.rotation.Radians() + 2*math.Pi*float64(k%s.sides)/float64(s.sides)
	r := circumradius(s.sides)
	return r2.Point{
		X: s.center.X + math.Cos(a)*r,
		Y: s.center.Y + math.Sin(a)*r,
	}
}

// Vertices returns the shape's vertices in counter-clockwise order.
func (s Shape) Vertices() []r2.Point {
	vs := make([]r2.Point, s.sides)
	for k := range vs {
		vs[k] = s.vertex(k)
	}
	return vs
}

// Edge returns the endpoints of the edge joining vertex e and vertex
// (e+1) mod Sides.
func (s Shape) Edge(e int) (r2.Point, r2.Point, error) {
	if e < 0 || e >= s.sides {
		return r2.Point{}, r2.Point{}, &RangeError{Index: e, Length: s.sides, What: "shape edges"}
	}
	p0, p1 := s.edge(e)
	return p0, p1, nil
}

func (s Shape) edge(e int) (r2.Point, r2.Point) {
	return s.vertex(e), s.vertex(e + 1)
}

// adjacent returns a new shape with the given side count placed against edge
// e, on the opposite side of that edge. The new shape's edge 0 coincides
// with edge e of s, with reversed winding.
//
// The center lies on the perpendicular bisector of the shared edge, offset
// from the midpoint by the new polygon's apothem along the outward normal
// (the right-hand side of the counter-clockwise edge). The rotation points
// vertex 0 at the shared edge's second endpoint, which makes edge 0 run
// back along the shared edge.
func (s Shape) adjacent(sides, e int, fill, stroke color.Color) Shape {
	p0, p1 := s.edge(e)
	mid := p0.Add(p1).Mul(0.5)
	dir := p1.Sub(p0)
	out := r2.Point{X: dir.Y, Y: -dir.X}.Normalize()
	c := mid.Add(out.Mul(apothem(sides)))
	rot := s1.Angle(math.Atan2(p1.Y-c.Y, p1.X-c.X))
	return Shape{
		sides:    sides,
		center:   c,
		rotation: rot,
		fill:     fill,
		stroke:   stroke,
	}
}

// translated returns a copy of the shape moved by v. The copy carries no id;
// the graph assigns one on insertion.
func (s Shape) translated(v r2.Point) Shape {
	return Shape{
		sides:    s.sides,
		center:   s.center.Add(v),
		rotation: s.rotation,
		fill:     s.fill,
		stroke:   s.stroke,
	}
}

// bound returns the axis-aligned bounding rectangle of the shape, computed
// from the circumradius rather than the vertices.
func (s Shape) bound() r2.Rect {
	r := circumradius(s.sides)
	return r2.RectFromCenterSize(s.center, r2.Point{X: 2 * r, Y: 2 * r})
}

// pointsAlmostEqual reports whether two points agree within epsilon in both
// coordinates.
func pointsAlmostEqual(a, b r2.Point) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}

// rotationsCongruent reports whether two rotations of an n-sided regular
// polygon produce the same vertex set, i.e. differ by a multiple of 2π/n
// within tolerance.
func rotationsCongruent(a, b s1.Angle, sides int) bool {
	step := 2 * math.Pi / float64(sides)
	d := math.Mod(a.Radians()-b.Radians(), step)
	if d < 0 {
		d += step
	}
	return d <= epsilon || step-d <= epsilon
}
