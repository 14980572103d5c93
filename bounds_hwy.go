package tiling

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseRectBound computes the axis-aligned bounding rectangle of a point set
// given as separate coordinate slices. Used for the bounding box of all
// placed geometry handed to renderers.
func BaseRectBound[T hwy.Floats](xs, ys []T) (minX, maxX, minY, maxY T) {
	size := min(len(xs), len(ys))
	if size == 0 {
		return 0, 0, 0, 0
	}

	// Initialize with the first point broadcasted so Infs/NaNs in the data
	// behave the same as in a scalar scan.
	vMinX := hwy.Set(xs[0])
	vMaxX := hwy.Set(xs[0])
	vMinY := hwy.Set(ys[0])
	vMaxY := hwy.Set(ys[0])

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vX := hwy.Load(xs[offset:])
			vY := hwy.Load(ys[offset:])
			vMinX = hwy.Min(vMinX, vX)
			vMaxX = hwy.Max(vMaxX, vX)
			vMinY = hwy.Min(vMinY, vY)
			vMaxY = hwy.Max(vMaxY, vY)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vX := hwy.MaskLoad(mask, xs[offset:])
			vY := hwy.MaskLoad(mask, ys[offset:])

			// Keep the running extremes in the masked-off lanes so the
			// zero padding from MaskLoad cannot win the reduction.
			vMinX = hwy.Min(vMinX, hwy.IfThenElse(mask, vX, vMinX))
			vMaxX = hwy.Max(vMaxX, hwy.IfThenElse(mask, vX, vMaxX))
			vMinY = hwy.Min(vMinY, hwy.IfThenElse(mask, vY, vMinY))
			vMaxY = hwy.Max(vMaxY, hwy.IfThenElse(mask, vY, vMaxY))
		},
	)

	return hwy.ReduceMin(vMinX), hwy.ReduceMax(vMaxX), hwy.ReduceMin(vMinY), hwy.ReduceMax(vMaxY)
}
