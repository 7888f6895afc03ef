package simulation

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/game"
	"github.com/oomph-ac/kinetic/kinetic"
)

// FlatGround is the normal of level ground.
var FlatGround = mgl32.Vec2{0, 1}

// Integrate applies the stop's acceleration to its speed, then brakes every axis toward zero and clamps the
// axes that have a positive limit.
func Integrate(s *kinetic.Stop) {
	speed := s.Speed().Add(s.Accel())
	brake, limit := s.Brake(), s.Limit()
	for i := range 2 {
		speed[i] = game.BrakeAxis(speed[i], brake[i])
		if limit[i] > 0 {
			speed[i] = game.ClampAxis(speed[i], limit[i])
		}
	}
	s.SetSpeed(speed)
}

// AdjustForGroundNormal projects speed onto the surface with the given normal. A zero normal is treated as
// level ground.
func AdjustForGroundNormal(speed, normal mgl32.Vec2) mgl32.Vec2 {
	mag := game.Magnitude(normal)
	if mag < game.SpeedEpsilon {
		normal, mag = FlatGround, 1
	}
	tangent := mgl32.Vec2{normal[1] / mag, -normal[0] / mag}
	d := float32(speed[0]*tangent[0]) + float32(speed[1]*tangent[1])
	return mgl32.Vec2{float32(tangent[0] * d), float32(tangent[1] * d)}
}

// slope returns the angle of the ground in degrees, used for traces only.
func slope(normal mgl32.Vec2) float32 {
	return mgl32.RadToDeg(math32.Atan2(normal[0], normal[1]))
}
