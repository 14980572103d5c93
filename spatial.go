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

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// overlapAreaEpsilon is the intersection area above which two placements are
// considered to overlap. Edge-adjacent polygons intersect in at most a
// floating-point sliver, many orders of magnitude below this; interior
// overlaps produce wedges of area comparable to the polygons themselves.
const overlapAreaEpsilon = 1e-6

// overlapShrink scales a candidate ring toward its center before clipping.
// The clipper misreports rings that share a vertex or a collinear boundary
// segment with the subject as disjoint, so the candidate is shrunk slightly:
// edge contact then clips to nothing while interior overlap keeps essentially
// its full area.
const overlapShrink = 0.9999

// shapeRegion is the R-tree entry for a placed shape. The embedded polygon
// provides the Bounds method the R-tree requires.
type shapeRegion struct {
	geom.Polygon
	id ID
}

func regionOf(s Shape) shapeRegion {
	vs := s.Vertices()
	ring := make([]geom.Point, len(vs))
	for i, v := range vs {
		ring[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return shapeRegion{Polygon: geom.Polygon{ring}, id: s.id}
}

// insetRegionOf returns the shape's ring shrunk by overlapShrink toward the
// center, the form overlap queries use. See overlapShrink.
func insetRegionOf(s Shape) shapeRegion {
	vs := s.Vertices()
	ring := make([]geom.Point, len(vs))
	for i, v := range vs {
		ring[i] = geom.Point{
			X: s.center.X + (v.X-s.center.X)*overlapShrink,
			Y: s.center.Y + (v.Y-s.center.Y)*overlapShrink,
		}
	}
	return shapeRegion{Polygon: geom.Polygon{ring}, id: s.id}
}

// overlapIndex locates the placed shapes near a candidate placement and
// measures interior overlap.
type overlapIndex struct {
	tree *rtree.Rtree
}

func newOverlapIndex() *overlapIndex {
	return &overlapIndex{tree: rtree.NewTree(25, 50)}
}

func (x *overlapIndex) insert(s Shape) {
	x.tree.Insert(regionOf(s))
}

// overlap returns the first existing shape whose interior overlaps the
// candidate region by more than overlapAreaEpsilon. The candidate must be an
// inset region (insetRegionOf); the stored shapes are full size. Shapes
// listed in skip (the candidate's edge-matched neighbors) are not
// considered.
func (x *overlapIndex) overlap(cand shapeRegion, skip map[ID]bool) (ID, float64, bool) {
	for _, item := range x.tree.SearchIntersect(cand.Bounds()) {
		r := item.(shapeRegion)
		if skip[r.id] {
			continue
		}
		isect := cand.Polygon.Intersection(r.Polygon)
		if isect == nil {
			continue
		}
		if a := math.Abs(isect.Area()); a > overlapAreaEpsilon {
			return r.id, a, true
		}
	}
	return 0, 0, false
}
