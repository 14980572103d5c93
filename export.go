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

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// AllVertices returns the vertex coordinates of every placed shape in id
// order as parallel slices, with offsets[i]..offsets[i+1] indexing the
// vertices of shape i. This is the bulk export for renderers; the
// coordinates are computed with the batch kernel rather than per-shape
// calls.
func (m *Model) AllVertices() (xs, ys []float64, offsets []int32) {
	n := m.g.len()
	offsets = make([]int32, n+1)
	total := 0
	for i, s := range m.g.shapes {
		offsets[i] = int32(total)
		total += s.sides
	}
	offsets[n] = int32(total)

	angles := make([]float64, total)
	cx := make([]float64, total)
	cy := make([]float64, total)
	rs := make([]float64, total)
	i := 0
	for _, s := range m.g.shapes {
		step := 2 * math.Pi / float64(s.sides)
		r := circumradius(s.sides)
		for k := 0; k < s.sides; k++ {
			angles[i] = s.rotation.Radians() + float64(k)*step
			cx[i] = s.center.X
			cy[i] = s.center.Y
			rs[i] = r
			i++
		}
	}

	xs = make([]float64, total)
	ys = make([]float64, total)
	BaseVertexBatch(angles, cx, cy, rs, xs, ys)
	return xs, ys, offsets
}

// Bounds returns the bounding rectangle of all placed geometry in model
// units, or an empty rect for an empty model. Renderers use this to size
// or center output independently of the canvas.
func (m *Model) Bounds() r2.Rect {
	if m.g.len() == 0 {
		return r2.EmptyRect()
	}
	xs, ys, _ := m.AllVertices()
	minX, maxX, minY, maxY := BaseRectBound(xs, ys)
	return r2.Rect{
		X: r1.Interval{Lo: minX, Hi: maxX},
		Y: r1.Interval{Lo: minY, Hi: maxY},
	}
}
