package kinetic

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/assert"
	"github.com/oomph-ac/kinetic/debug"
	"github.com/oomph-ac/kinetic/game"
)

// Setup transitions the stop into the reset type t with the given initial speed, then initializes it. It
// always returns Handled.
func (s *Stop) Setup(env Env, t ResetType, speed mgl32.Vec2) Result {
	assert.IsTrue(t.Valid(), "setup with unknown reset type %d", uint32(t))
	s.Dbg.Notify(debug.ModeSetup, true, "setup %v -> %v (speed=%v)", s.resetType, t, speed)

	// The rewind keeps every field and only swaps the reset type.
	if t == AirLassoRewind {
		s.resetType = t
		return Handled
	}

	s.Reset(t, speed)
	s.scratch = scratch{}

	switch {
	case t.walkCapable():
		s.speed = env.AdjustSpeedForGroundNormal(s.speed)
		mag := game.Magnitude(s.speed)
		s.overWalkSpeed = env.Params().Float(keyWalkSpeedMax) < mag
		s.Dbg.Notify(debug.ModeSetup, s.overWalkSpeed, "entry speed %f over walk speed", mag)
	case t == DamageKnockBack:
		if env.Situation() == SituationGround {
			s.proximityImpulse(env)
		}
	case t == AirLassoHang:
		s.damageSpeed = speed
	case t == EscapeAirSlide:
		p := env.Params()
		mul, accel := p.Float(keyEscapeAirSlideSpd), p.Float(keyEscapeAirSlideAcc)
		s.damageSpeed = speed
		s.speed = mgl32.Vec2{float32(speed[0] * mul), float32(speed[1] * mul)}
		s.speedBrake = game.AbsVec2(game.MulVec2(speed, mgl32.Vec2{accel, accel}))
		s.speedLimit = mgl32.Vec2{disabledLimit, disabledLimit}
	case t.groundEntry():
		s.speed = env.AdjustSpeedForGroundNormal(s.speed)
	}

	s.Initialize(env)

	s.syncRequested, s.syncApplied = false, false
	s.interpolationFrames = 0
	s.positionTarget, s.positionTargetLimit = false, 0
	return Handled
}
