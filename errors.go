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
	"fmt"
)

var (
	// ErrNotEmpty is returned by Add when the model already contains a shape.
	ErrNotEmpty = errors.New("tiling: model is not empty")

	// ErrEmptyModel is returned by AddMulti and Repeat when the model has no
	// shapes to attach to.
	ErrEmptyModel = errors.New("tiling: model is empty")

	// ErrInvalidShape is returned by NewShape when the requested polygon has
	// fewer than three sides.
	ErrInvalidShape = errors.New("tiling: shape must have at least 3 sides")
)

// RangeError reports a shape id or edge index that does not exist.
type RangeError struct {
	Index  int    // the offending index
	Length int    // the length of the indexed collection
	What   string // what was being indexed, e.g. "model shapes"
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tiling: index %d out of range for %s of length %d", e.Index, e.What, e.Length)
}

// OverlapError reports a placement that would violate the edge-to-edge
// invariant: either an edge of the candidate coincides with an edge that is
// already matched, or the candidate's interior overlaps an existing shape.
type OverlapError struct {
	With ID      // the existing shape the candidate conflicts with
	Area float64 // overlapping interior area, 0 for a double-claimed edge
}

func (e *OverlapError) Error() string {
	if e.Area > 0 {
		return fmt.Sprintf("tiling: placement overlaps interior of shape %d (area %g)", e.With, e.Area)
	}
	return fmt.Sprintf("tiling: placement double-claims an edge of shape %d", e.With)
}

// DegenerateMotifError reports a Repeat seed from which no repetition
// transform can be derived.
type DegenerateMotifError struct {
	Seed   Range
	Reason string
}

func (e *DegenerateMotifError) Error() string {
	return fmt.Sprintf("tiling: degenerate motif %v: %s", e.Seed, e.Reason)
}
