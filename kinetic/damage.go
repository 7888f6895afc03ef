package kinetic

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/debug"
	"github.com/oomph-ac/kinetic/game"
)

// updateDamage runs the flight physics of the damage reset types. The acceleration it computes is applied by
// the integration step that follows.
func (s *Stop) updateDamage(env Env) {
	if game.Magnitude(s.speed) < game.SpeedEpsilon {
		s.accel = mgl32.Vec2{}
		return
	}
	p := env.Params()

	if s.syncRequested && !s.syncApplied {
		mul := p.Float(keyDamageSpeedSyncMul)
		s.speed = s.speed.Mul(mul)
		s.syncApplied = true
		s.Dbg.Notify(debug.ModeDamage, true, "synced damage speed (mul=%f, speed=%v)", mul, s.speed)
	}

	if s.interpolationFrames > 0 {
		remaining := float32(s.interpolationFrames)
		step := s.damageSpeed.Sub(s.speed)
		s.speed = s.speed.Add(mgl32.Vec2{step[0] / remaining, step[1] / remaining})
		s.interpolationFrames--
		s.Dbg.Notify(debug.ModeDamage, true, "interpolated speed=%v (%d frames left)", s.speed, s.interpolationFrames)
	}

	if env.Situation() == SituationGround {
		s.speedBrake = mgl32.Vec2{float32(p.Float(keyGroundBrake) * p.Float(keyDamageGroundMul)), 0}
		s.accel = mgl32.Vec2{}
		if env.TouchingTrailingGround() {
			s.speed[0] = 0
		}
	} else {
		s.speedBrake = mgl32.Vec2{}
		s.handleProcessingDamage(game.Magnitude(s.speed), p.Float(keyDamageAirBrake))
	}

	if s.positionTarget {
		if mag := game.Magnitude(s.speed); mag > s.positionTargetLimit && mag > 0 {
			s.speed = s.speed.Mul(s.positionTargetLimit / mag)
			s.Dbg.Notify(debug.ModeDamage, true, "speed limited by position target to %v", s.speed)
		}
	}
}

// handleProcessingDamage sets the acceleration that brakes the speed magnitude by brake. When the brake
// exceeds the magnitude, AirBrakeAlways keeps up to speed_max of drift on each axis and every other reset
// type comes to a full stop. The drift acceleration only ever points against the speed, so an axis already
// within speed_max is left alone.
func (s *Stop) handleProcessingDamage(mag, brake float32) {
	if mag <= 0 {
		s.accel = mgl32.Vec2{}
		return
	}
	if rem := mag - brake; rem >= 0 {
		f := rem/mag - 1
		s.accel = mgl32.Vec2{float32(s.speed[0] * f), float32(s.speed[1] * f)}
		return
	}
	if s.resetType == AirBrakeAlways {
		for i := range 2 {
			v := s.speed[i]
			a := -v + float32(game.Signum(v)*s.speedMax[i])
			if float32(a*v) >= 0 {
				a = 0
			}
			s.accel[i] = a
		}
		return
	}
	s.accel = mgl32.Vec2{}
	s.speed = mgl32.Vec2{}
}

// updateEarlyBrake applies the damage braking rule straight to the speed for the reset types that skip the
// integration step.
func (s *Stop) updateEarlyBrake(env Env) {
	mag := game.Magnitude(s.speed)
	if mag < game.SpeedEpsilon {
		s.accel = mgl32.Vec2{}
		return
	}
	brake := s.speedBrake[0]
	if s.resetType != ShieldRebound {
		brake = env.Params().Float(keyAirBrakeX)
	}
	s.handleProcessingDamage(mag, brake)
	s.speed = s.speed.Add(s.accel)
	s.Dbg.Notify(debug.ModeDamage, true, "%v: brake=%f speed=%v", s.resetType, brake, s.speed)
}
