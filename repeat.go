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

// Repeat replicates the motif named by the seed range outward until the
// canvas region is covered.
//
// The seed shapes define the repetition: every seed shape that still has an
// unmatched boundary edge marks a position where the motif recurs, so its
// center relative to the first placed shape is a translation symmetry of
// the tiling. Repeat applies those translations (and their negations) to
// every placed shape, inserting each candidate through the same
// coincidence- and overlap-checked path as attachment, as long as the
// candidate's bounding geometry intersects the canvas. Iteration stops when
// a full pass inserts nothing.
//
// Repeat fails with ErrEmptyModel on an empty model, RangeError if a seed
// id does not exist, and DegenerateMotifError if no translation can be
// derived from the seed. On failure the model is unchanged.
func (m *Model) Repeat(seed Range) error {
	if m.g.len() == 0 {
		return ErrEmptyModel
	}
	if seed.Empty() {
		return &DegenerateMotifError{Seed: seed, Reason: "empty seed range"}
	}
	for id := seed.Start; id < seed.End; id++ {
		if _, ok := m.g.shape(id); !ok {
			return &RangeError{Index: int(id), Length: m.g.len(), What: "model shapes"}
		}
	}

	translations := m.motifTranslations(seed)
	if len(translations) == 0 {
		return &DegenerateMotifError{Seed: seed, Reason: "no boundary shape offset from the first shape"}
	}

	canvas := m.CanvasBounds()
	c := m.g.clone()

	// First pass considers every placed shape; later passes only the shapes
	// the previous pass inserted. A (shape, translation) candidate that was
	// skipped stays skipped: coincidences only accumulate and the canvas is
	// fixed.
	frontier := make([]ID, c.len())
	for i := range frontier {
		frontier[i] = ID(i)
	}
	for pass := 0; len(frontier) > 0; pass++ {
		var next []ID
		for _, fid := range frontier {
			s := c.shapes[fid]
			for _, t := range translations {
				cand := s.translated(t)
				if !cand.bound().Intersects(canvas) {
					continue
				}
				if _, ok := c.findCoincidentShape(cand.center, cand.rotation, cand.sides); ok {
					continue
				}
				id, err := c.insert(cand)
				if err != nil {
					return err
				}
				next = append(next, id)
			}
		}
		logger().Debug("repeat pass", "pass", pass, "inserted", len(next), "total", c.len())
		frontier = next
	}

	m.g = c
	return nil
}

// motifTranslations derives the repetition translations from the seed:
// centers of boundary seed shapes relative to the first placed shape,
// near-zero vectors dropped, deduplicated, closed under negation.
func (m *Model) motifTranslations(seed Range) []r2.Point {
	anchor := m.g.shapes[0].center
	seen := make(map[gridCell]bool)
	var out []r2.Point
	add := func(v r2.Point) {
		k := cellOf(v)
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, v)
	}
	for id := seed.Start; id < seed.End; id++ {
		if !m.g.boundary(id) {
			continue
		}
		v := m.g.shapes[id].center.Sub(anchor)
		if v.Norm() <= epsilon {
			continue
		}
		add(v)
		add(v.Mul(-1))
	}
	return out
}
