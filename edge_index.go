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
	"math"

	"github.com/golang/geo/r2"
)

// EdgeRef names one edge of one shape.
type EdgeRef struct {
	Shape ID
	Edge  int
}

// gridCell is a point quantized to the epsilon grid. Quantized coordinates
// are only hash keys; every lookup re-verifies candidates against the real
// coordinates, so a point landing on a cell boundary costs extra probes but
// never a wrong answer.
type gridCell struct {
	x, y int64
}

func cellOf(p r2.Point) gridCell {
	return gridCell{
		x: int64(math.Round(p.X / epsilon)),
		y: int64(math.Round(p.Y / epsilon)),
	}
}

// edgeIndex answers two coincidence queries over the placed shapes: "which
// existing edge matches these endpoints" and "which existing shape occupies
// this placement". Both are keyed by quantized points and verified exactly.
//
// Edges are keyed by their midpoint. All edges in a model have length 1
// (invariant of the shared scale basis), so two edges coincide if and only
// if their midpoints coincide, and the midpoint key is collision-free up to
// tolerance.
type edgeIndex struct {
	edges   map[gridCell][]EdgeRef
	centers map[gridCell][]ID
}

func newEdgeIndex() *edgeIndex {
	return &edgeIndex{
		edges:   make(map[gridCell][]EdgeRef),
		centers: make(map[gridCell][]ID),
	}
}

func (x *edgeIndex) clone() *edgeIndex {
	c := newEdgeIndex()
	for k, v := range x.edges {
		c.edges[k] = append([]EdgeRef(nil), v...)
	}
	for k, v := range x.centers {
		c.centers[k] = append([]ID(nil), v...)
	}
	return c
}

func (x *edgeIndex) addEdge(p0, p1 r2.Point, ref EdgeRef) {
	k := cellOf(midpoint(p0, p1))
	x.edges[k] = append(x.edges[k], ref)
}

func (x *edgeIndex) addCenter(p r2.Point, id ID) {
	k := cellOf(p)
	x.centers[k] = append(x.centers[k], id)
}

// edgeCandidates appends to dst the indexed edges whose midpoint cell lies
// in the 3x3 neighborhood of the query midpoint. Probing neighbors covers
// midpoints that quantize across a cell boundary.
func (x *edgeIndex) edgeCandidates(p0, p1 r2.Point, dst []EdgeRef) []EdgeRef {
	k := cellOf(midpoint(p0, p1))
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			dst = append(dst, x.edges[gridCell{k.x + dx, k.y + dy}]...)
		}
	}
	return dst
}

// centerCandidates appends to dst the ids of shapes whose center cell lies
// in the 3x3 neighborhood of p.
func (x *edgeIndex) centerCandidates(p r2.Point, dst []ID) []ID {
	k := cellOf(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			dst = append(dst, x.centers[gridCell{k.x + dx, k.y + dy}]...)
		}
	}
	return dst
}

func midpoint(p0, p1 r2.Point) r2.Point {
	return r2.Point{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
}

// edgesCoincide reports whether the segment (a0,a1) covers the same two
// endpoints as (b0,b1) within tolerance, in either order. A matching edge of
// an adjacent polygon has reversed winding, so the reversed comparison is
// the common case.
func edgesCoincide(a0, a1, b0, b1 r2.Point) bool {
	return (pointsAlmostEqual(a0, b1) && pointsAlmostEqual(a1, b0)) ||
		(pointsAlmostEqual(a0, b0) && pointsAlmostEqual(a1, b1))
}
