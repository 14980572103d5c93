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
	"sort"

	"github.com/golang/geo/r2"
)

// DualEdge is an unordered pair of adjacent shapes, A < B. Connecting the
// centers of every such pair draws the dual tiling's edge set.
type DualEdge struct {
	A, B ID
}

// dualEdges returns one DualEdge per recorded adjacency, sorted by (A, B).
func (g *graph) dualEdges() []DualEdge {
	var out []DualEdge
	for ref, partner := range g.adjacency {
		if ref.Shape < partner.Shape {
			out = append(out, DualEdge{A: ref.Shape, B: partner.Shape})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// VertexFigure is the cycle of shapes meeting at one tiling vertex, ordered
// counter-clockwise around it. The figures of all interior vertices are the
// faces of the dual tiling.
type VertexFigure struct {
	Vertex r2.Point
	Shapes []ID
}

// vertexFigures groups shapes by shared vertex. Vertices with fewer than
// three incident shapes sit on the tiling boundary and are dropped, matching
// the dual construction: a dual face needs at least three centers.
func (g *graph) vertexFigures() []VertexFigure {
	type group struct {
		at  r2.Point
		ids []ID
	}
	cells := make(map[gridCell]*group)

	// Distinct shapes compute the "same" vertex with slightly different
	// rounding, so locate an existing group by probing the neighborhood of
	// the quantized vertex and verifying with tolerance.
	locate := func(v r2.Point) *group {
		k := cellOf(v)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				if grp, ok := cells[gridCell{k.x + dx, k.y + dy}]; ok && pointsAlmostEqual(grp.at, v) {
					return grp
				}
			}
		}
		grp := &group{at: v}
		cells[k] = grp
		return grp
	}

	for _, s := range g.shapes {
		for _, v := range s.Vertices() {
			grp := locate(v)
			grp.ids = append(grp.ids, s.id)
		}
	}

	var out []VertexFigure
	for _, grp := range cells {
		if len(grp.ids) < 3 {
			continue
		}
		at := grp.at
		ids := grp.ids
		sort.Slice(ids, func(i, j int) bool {
			return angleAround(at, g.shapes[ids[i]].center) < angleAround(at, g.shapes[ids[j]].center)
		})
		out = append(out, VertexFigure{Vertex: at, Shapes: ids})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Vertex.Y != out[j].Vertex.Y {
			return out[i].Vertex.Y < out[j].Vertex.Y
		}
		return out[i].Vertex.X < out[j].Vertex.X
	})
	return out
}

func angleAround(at, p r2.Point) float64 {
	return math.Atan2(p.Y-at.Y, p.X-at.X)
}
