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
	"github.com/golang/geo/s1"
)

// graph is the mutable store of placed shapes and their shares-an-edge
// relation. Shapes are held in an append-only arena indexed by ID; adjacency
// references IDs only, never shapes, so the arena can be copied freely.
//
// The adjacency map stores each logical pair in both directions, so a
// lookup from either side is a single map access and the presence of a key
// means "this edge is already claimed".
type graph struct {
	shapes    []Shape
	adjacency map[EdgeRef]EdgeRef
	index     *edgeIndex
	overlaps  *overlapIndex
}

func newGraph() *graph {
	return &graph{
		adjacency: make(map[EdgeRef]EdgeRef),
		index:     newEdgeIndex(),
		overlaps:  newOverlapIndex(),
	}
}

// clone returns a deep copy of the graph. Mutating operations work on a
// clone and swap it in on success, which is what makes every model
// operation all-or-nothing.
func (g *graph) clone() *graph {
	c := &graph{
		shapes:    append([]Shape(nil), g.shapes...),
		adjacency: make(map[EdgeRef]EdgeRef, len(g.adjacency)),
		index:     g.index.clone(),
		overlaps:  newOverlapIndex(),
	}
	for k, v := range g.adjacency {
		c.adjacency[k] = v
	}
	for _, s := range g.shapes {
		c.overlaps.insert(s)
	}
	return c
}

func (g *graph) len() int { return len(g.shapes) }

func (g *graph) shape(id ID) (Shape, bool) {
	if id < 0 || int(id) >= len(g.shapes) {
		return Shape{}, false
	}
	return g.shapes[id], true
}

// findCoincidentEdge returns an existing edge whose endpoints match {p0, p1}
// within tolerance, in either order.
func (g *graph) findCoincidentEdge(p0, p1 r2.Point) (EdgeRef, bool) {
	for _, ref := range g.index.edgeCandidates(p0, p1, nil) {
		q0, q1 := g.shapes[ref.Shape].edge(ref.Edge)
		if edgesCoincide(p0, p1, q0, q1) {
			return ref, true
		}
	}
	return EdgeRef{}, false
}

// findCoincidentShape returns the id of an existing shape occupying the
// given placement: same center and side count, rotation congruent modulo
// the polygon's own symmetry.
func (g *graph) findCoincidentShape(center r2.Point, rotation s1.Angle, sides int) (ID, bool) {
	for _, id := range g.index.centerCandidates(center, nil) {
		s := g.shapes[id]
		if s.sides == sides && pointsAlmostEqual(s.center, center) &&
			rotationsCongruent(s.rotation, rotation, sides) {
			return id, true
		}
	}
	return 0, false
}

// unmatched reports whether edge e of shape id has no adjacency partner.
func (g *graph) unmatched(id ID, e int) bool {
	_, claimed := g.adjacency[EdgeRef{Shape: id, Edge: e}]
	return !claimed
}

// boundary reports whether the shape has at least one unmatched edge.
func (g *graph) boundary(id ID) bool {
	for e := 0; e < g.shapes[id].sides; e++ {
		if g.unmatched(id, e) {
			return true
		}
	}
	return false
}

// insert appends the shape, assigning the next sequential id. Every edge of
// the candidate is checked against the index: a coincident unmatched edge
// becomes an adjacency pair; a coincident edge that already has a partner is
// a double claim. A candidate whose interior overlaps an existing shape
// without edge alignment is rejected. Either rejection returns an
// OverlapError and leaves the graph unchanged.
func (g *graph) insert(s Shape) (ID, error) {
	id := ID(len(g.shapes))
	s.id = id
	vs := s.Vertices()

	type pairing struct {
		mine  EdgeRef
		other EdgeRef
	}
	var pairs []pairing
	neighbors := make(map[ID]bool)
	for e := 0; e < s.sides; e++ {
		p0, p1 := vs[e], vs[(e+1)%s.sides]
		ref, ok := g.findCoincidentEdge(p0, p1)
		if !ok {
			continue
		}
		if _, claimed := g.adjacency[ref]; claimed {
			return 0, &OverlapError{With: ref.Shape}
		}
		pairs = append(pairs, pairing{
			mine:  EdgeRef{Shape: id, Edge: e},
			other: ref,
		})
		neighbors[ref.Shape] = true
	}

	if with, area, ok := g.overlaps.overlap(insetRegionOf(s), neighbors); ok {
		return 0, &OverlapError{With: with, Area: area}
	}

	g.shapes = append(g.shapes, s)
	for _, p := range pairs {
		g.adjacency[p.mine] = p.other
		g.adjacency[p.other] = p.mine
	}
	for e := 0; e < s.sides; e++ {
		g.index.addEdge(vs[e], vs[(e+1)%s.sides], EdgeRef{Shape: id, Edge: e})
	}
	g.index.addCenter(s.center, id)
	g.overlaps.insert(s)

	logger().Debug("inserted shape",
		"id", int(id), "sides", s.sides,
		"x", s.center.X, "y", s.center.Y,
		"adjacencies", len(pairs))
	return id, nil
}
