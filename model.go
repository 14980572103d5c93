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
	"github.com/golang/geo/r2"
)

// Model is a tiling under construction: a set of placed shapes, their
// adjacency graph, and the canvas the tiling is meant to cover. Canvas
// parameters bound the region Repeat fills; they never affect where an
// individual attachment lands.
//
// A model is built imperatively: Add places the first shape at the origin,
// AddMulti attaches shapes to existing edges, and Repeat replicates a motif
// across the canvas. Every operation either fully succeeds or leaves the
// model unchanged.
//
// A Model is not safe for concurrent use; construct independent tilings on
// independent models.
type Model struct {
	width  int
	height int
	scale  float64
	g      *graph
}

// New returns an empty model for a canvas of width x height pixels, where
// scale is the number of pixels per model unit (every shape's edge length
// is 1 model unit).
func New(width, height int, scale float64) *Model {
	return &Model{
		width:  width,
		height: height,
		scale:  scale,
		g:      newGraph(),
	}
}

// Width returns the canvas width in pixels.
func (m *Model) Width() int { return m.width }

// Height returns the canvas height in pixels.
func (m *Model) Height() int { return m.height }

// Scale returns the canvas scale in pixels per model unit.
func (m *Model) Scale() float64 { return m.scale }

// CanvasBounds returns the canvas region in model units. The model origin
// maps to the canvas center.
func (m *Model) CanvasBounds() r2.Rect {
	return r2.RectFromCenterSize(r2.Point{}, r2.Point{
		X: float64(m.width) / m.scale,
		Y: float64(m.height) / m.scale,
	})
}

// NumShapes returns the number of placed shapes.
func (m *Model) NumShapes() int { return m.g.len() }

// Shape returns the placed shape with the given id.
func (m *Model) Shape(id ID) (Shape, error) {
	s, ok := m.g.shape(id)
	if !ok {
		return Shape{}, &RangeError{Index: int(id), Length: m.g.len(), What: "model shapes"}
	}
	return s, nil
}

// Shapes returns all placed shapes in id order. The returned slice is a
// copy; shapes themselves are immutable.
func (m *Model) Shapes() []Shape {
	return append([]Shape(nil), m.g.shapes...)
}

// DualEdges returns the dual tiling's edge set: one unordered pair of shape
// ids per recorded adjacency, sorted.
func (m *Model) DualEdges() []DualEdge {
	return m.g.dualEdges()
}

// VertexFigures returns the cycle of shapes around every interior tiling
// vertex, the faces of the dual tiling.
func (m *Model) VertexFigures() []VertexFigure {
	return m.g.vertexFigures()
}

// Add places the first shape of the model at the origin with rotation 0 and
// returns its id (always 0). Adding to a non-empty model fails with
// ErrNotEmpty.
func (m *Model) Add(tmpl Shape) (ID, error) {
	if tmpl.sides < 3 {
		return 0, ErrInvalidShape
	}
	if m.g.len() > 0 {
		return 0, ErrNotEmpty
	}
	return m.g.insert(Shape{sides: tmpl.sides, fill: tmpl.fill, stroke: tmpl.stroke})
}

// AddMulti attaches a copy of tmpl to every (shape, edge) pair in the cross
// product of the two ranges, ascending by shape id then edge index. A
// placement that coincides with an already placed shape is skipped without
// allocating an id, so re-running an attachment is a no-op. The returned
// range covers exactly the newly inserted ids and is empty if every
// placement already existed.
//
// AddMulti fails with ErrEmptyModel on an empty model, RangeError if a
// shape id or edge index does not exist, and OverlapError if a placement
// would overlap existing geometry. On failure the model is unchanged.
func (m *Model) AddMulti(shapes, edges Range, tmpl Shape) (Range, error) {
	if tmpl.sides < 3 {
		return Range{}, ErrInvalidShape
	}
	if m.g.len() == 0 {
		return Range{}, ErrEmptyModel
	}
	for id := shapes.Start; id < shapes.End; id++ {
		s, ok := m.g.shape(id)
		if !ok {
			return Range{}, &RangeError{Index: int(id), Length: m.g.len(), What: "model shapes"}
		}
		for e := edges.Start; e < edges.End; e++ {
			if e < 0 || int(e) >= s.sides {
				return Range{}, &RangeError{Index: int(e), Length: s.sides, What: "shape edges"}
			}
		}
	}

	c := m.g.clone()
	start := ID(c.len())
	for id := shapes.Start; id < shapes.End; id++ {
		parent := c.shapes[id]
		for e := edges.Start; e < edges.End; e++ {
			cand := parent.adjacent(tmpl.sides, int(e), tmpl.fill, tmpl.stroke)
			if twin, ok := c.findCoincidentShape(cand.center, cand.rotation, cand.sides); ok {
				logger().Debug("placement coincides with existing shape",
					"parent", int(id), "edge", int(e), "existing", int(twin))
				continue
			}
			if _, err := c.insert(cand); err != nil {
				return Range{}, err
			}
		}
	}
	m.g = c
	return Range{Start: start, End: ID(c.len())}, nil
}
