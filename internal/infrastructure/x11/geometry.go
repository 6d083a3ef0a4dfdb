package x11

import (
	"math"

	"github.com/bnema/webembed/internal/domain/entity"
)

// wireGeometry clamps bounds to what the core protocol carries: INT16
// positions and CARD16 sizes.
func wireGeometry(b entity.Bounds) (x, y int16, width, height uint16) {
	return clampInt16(b.X), clampInt16(b.Y), clampUint16(b.Width), clampUint16(b.Height)
}

func clampInt16(v int32) int16 {
	return int16(min(max(v, math.MinInt16), math.MaxInt16))
}

func clampUint16(v int32) uint16 {
	return uint16(min(max(v, 0), math.MaxUint16))
}
