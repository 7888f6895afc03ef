package kinetic

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/debug"
	"github.com/oomph-ac/kinetic/game"
)

// Update advances the stop by one frame. It returns Deferred for the reset types it has no behaviour for,
// in which case the stop is left untouched and the caller should run its default update instead.
func (s *Stop) Update(env Env) Result {
	switch s.resetType {
	case DamageKnockBack:
		s.updateKnockBack(env)
	case AirXNormalMax:
		p := env.Params()
		brake := p.Float(keyAirBrakeX)
		if math32.Abs(s.speed[0]) > p.Float(keyAirSpeedXStable) {
			brake = p.Float(keyFallBrakeX)
		}
		s.speedBrake = mgl32.Vec2{brake, 0}
	case ItemSwingDash, ItemDashThrow:
		s.updateItemDash(env)
	case CaptureBeetle:
		if env.IsLinked(LinkCapture) {
			s.speed = game.Vec2(env.ParentSumSpeed(LinkCapture, 1))
			s.Dbg.Notify(debug.ModeUpdate, true, "captured, following parent at %v", s.speed)
			return Handled
		}
	case ShieldRebound, AirBrake, AirBrakeAlways:
		s.updateEarlyBrake(env)
		return Handled
	default:
		if !s.resetType.damagePhysics() {
			s.Dbg.Notify(debug.ModeUpdate, true, "%v deferred", s.resetType)
			return Deferred
		}
		s.updateDamage(env)
	}
	s.postStep(env)
	return Handled
}

func (s *Stop) updateItemDash(env Env) {
	if env.MotionUpdatingEnergy() {
		move := env.TransMoveSpeed()
		s.accel = mgl32.Vec2{move[2] - s.speed[0], move[1] - s.speed[1]}
		s.speedMax = mgl32.Vec2{-s.speed[0], -s.speed[1]}
		s.speedBrake = mgl32.Vec2{}
	}
	if s.resetType != ItemDashThrow {
		return
	}
	p := env.Params()
	if env.MotionFrame() > float32(p.Int(keyItemDashThrowDecFrame)) {
		brake := float32(float32(p.Float(keyGroundBrake)*p.Float(keyItemDashThrowBrakeMul)) * p.Float(keyItemDashThrowBrakeDec))
		s.speedBrake = mgl32.Vec2{brake, 0}
	}
}

// postStep integrates the stop and applies the global speed limits of the actor's situation.
func (s *Stop) postStep(env Env) {
	if s.enabled {
		env.Process(s)
	}
	if env.SpeedLimitExempt() {
		return
	}
	p := env.Params()
	switch env.Situation() {
	case SituationAir:
		vertical := p.Float(keyAirSpeedUpLimit)
		if s.speed[1] <= 0 {
			vertical = p.Float(keyAirSpeedDownLimit)
		}
		s.speed[0] = game.ClampAxis(s.speed[0], p.Float(keyCommonAirSpeedXLimit))
		s.speed[1] = game.ClampAxis(s.speed[1], vertical)
	case SituationGround:
		s.speed[0] = game.ClampAxis(s.speed[0], p.Float(keyGroundSpeedLimit))
	}
	s.Dbg.Notify(debug.ModeClamp, true, "%v speed after limits: %v", env.Situation(), s.speed)
}
