package tiling

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/algo"
)

// Batch vertex computation (Structure of Arrays)
// Exporting a tiling hands renderers one coordinate per polygon corner, so a
// model with thousands of shapes evaluates tens of thousands of sin/cos
// pairs. Doing the trig and the center offsets in SoA batches is much faster
// than per-shape scalar loops.

// BaseVertexBatch computes polygon corner coordinates in bulk:
// xs[i] = cx[i] + cos(angles[i]) * rs[i]
// ys[i] = cy[i] + sin(angles[i]) * rs[i]
func BaseVertexBatch(angles, cx, cy, rs, xs, ys []float64) {
	size := min(len(angles), len(cx), len(cy), len(rs), len(xs), len(ys))

	sins := make([]float64, size)
	coss := make([]float64, size)
	algo.SinTransform64(angles[:size], sins)
	algo.CosTransform64(angles[:size], coss)

	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			vR := hwy.Load(rs[offset:])

			vX := hwy.FMA(hwy.Load(coss[offset:]), vR, hwy.Load(cx[offset:]))
			vY := hwy.FMA(hwy.Load(sins[offset:]), vR, hwy.Load(cy[offset:]))

			hwy.Store(vX, xs[offset:])
			hwy.Store(vY, ys[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)

			vR := hwy.MaskLoad(mask, rs[offset:])
			vX := hwy.FMA(hwy.MaskLoad(mask, coss[offset:]), vR, hwy.MaskLoad(mask, cx[offset:]))
			vY := hwy.FMA(hwy.MaskLoad(mask, sins[offset:]), vR, hwy.MaskLoad(mask, cy[offset:]))

			hwy.MaskStore(mask, vX, xs[offset:])
			hwy.MaskStore(mask, vY, ys[offset:])
		},
	)
}
