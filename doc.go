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

/*
Package tiling constructs edge-to-edge tilings of regular polygons and
their dual graphs.

A tiling is built imperatively on a Model: place one shape, attach further
shapes to existing edges, then replicate the resulting motif across the
canvas. All shapes share an edge length of 1 model unit, which is what lets
polygons of different side counts meet edge-to-edge exactly. The model
tracks which shapes share an edge — including shapes that end up adjacent
without ever being attached to each other — and exposes that adjacency as
the dual tiling.

Construct the trihexagonal-family tiling 3.4.6.4:

	m := tiling.New(1024, 1024, 128)

	hexagon, _ := tiling.NewShape(6, fillHex, stroke)
	square, _ := tiling.NewShape(4, fillSquare, stroke)
	triangle, _ := tiling.NewShape(3, fillTriangle, stroke)

	// A hexagon at the origin, then a square on each of its six edges.
	m.Add(hexagon)
	squares, _ := m.AddMulti(tiling.Range{Start: 0, End: 1}, tiling.Range{Start: 0, End: 6}, square)

	// Triangles between the squares, hexagons on the squares' outer edges.
	// Edge 0 of an attached shape is always the shared edge, so edge 2 of a
	// square is the edge opposite its parent.
	m.AddMulti(squares, tiling.Range{Start: 1, End: 2}, triangle)
	hexagons, _ := m.AddMulti(squares, tiling.Range{Start: 2, End: 3}, hexagon)

	// The outer hexagons mark where the motif recurs; fill the canvas.
	m.Repeat(hexagons)

Rendering is not this package's concern. A renderer consumes the model's
read-only surface: Shapes (with opaque fill and stroke attributes),
AllVertices, DualEdges, VertexFigures, and the canvas parameters.

The package is silent by default; see SetLogger for construction
diagnostics.

See also:

  - https://en.wikipedia.org/wiki/Euclidean_tilings_by_convex_regular_polygons
  - https://en.wikipedia.org/wiki/List_of_Euclidean_uniform_tilings
*/
package tiling
