package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SpeedEpsilon is the magnitude under which a speed vector is treated as stationary.
const SpeedEpsilon = float32(1e-5)

// Magnitude returns sqrt(x²+y²) evaluated in single precision. mgl32.Vec2.Len goes through float64 and
// would not round the same way.
func Magnitude(v mgl32.Vec2) float32 {
	x2 := float32(v[0] * v[0])
	y2 := float32(v[1] * v[1])
	return math32.Sqrt(x2 + y2)
}

// Signum returns 1 for positive values and positive zero, -1 for negative values and negative zero, and NaN
// for NaN.
func Signum(v float32) float32 {
	if math32.IsNaN(v) {
		return v
	}
	if math32.Signbit(v) {
		return -1
	}
	return 1
}

// AbsVec2 will return the given vector, but all the values of it are switched to their absolute values.
func AbsVec2(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{math32.Abs(v[0]), math32.Abs(v[1])}
}

// MulVec2 multiplies both components of v by the matching components of m.
func MulVec2(v, m mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{float32(v[0] * m[0]), float32(v[1] * m[1])}
}

// Vec2 drops the Z component of a 3D vector.
func Vec2(v mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{v[0], v[1]}
}

// ClampAxis clamps v to ±limit, keeping its sign. The clamped value is limit*Signum(v).
func ClampAxis(v, limit float32) float32 {
	if limit < math32.Abs(v) {
		return limit * Signum(v)
	}
	return v
}

// BrakeAxis moves v toward zero by brake without crossing it.
func BrakeAxis(v, brake float32) float32 {
	switch {
	case v > 0:
		return math32.Max(v-brake, 0)
	case v < 0:
		return math32.Min(v+brake, 0)
	}
	return v
}
