package kinetic

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/debug"
)

// Initialize derives the brake and limit of the current reset type from the actor's parameters. Reset
// types without parameters keep their brake and limit. It always returns Handled.
func (s *Stop) Initialize(env Env) Result {
	p := env.Params()
	switch s.resetType {
	case Ground, CatchCut, ItemSwingDash, ItemDashThrow:
		mul := float32(1)
		switch s.resetType {
		case CatchCut:
			mul = p.Float(keyCaptureCutBrakeMul)
		case ItemSwingDash:
			mul = p.Float(keyItemDashSwingBrakeMul)
		case ItemDashThrow:
			mul = p.Float(keyItemDashThrowBrakeMul)
		}
		if s.overWalkSpeed {
			mul = float32(mul * p.Float(keyStopOverSpeedBrakeMul))
		}
		s.setBrakeLimit(float32(p.Float(keyGroundBrake)*mul), p.Float(keyGroundSpeedLimit))
	case DamageGround, GuardDamage, DamageGroundOrbit:
		s.setBrakeLimit(float32(p.Float(keyGroundBrake)*p.Float(keyDamageGroundMul)), p.Float(keyDamageSpeedLimit))
	case Air, AirXNormalMax, AirBrake, AirBrakeAlways:
		s.setBrakeLimit(p.Float(keyAirBrakeX), p.Float(keyAirSpeedXLimit))
	case AirEscape:
		s.setBrakeLimit(p.Float(keyEscapeAirBrake), p.Float(keyAirSpeedXLimit))
	case Run:
		s.speedLimit = mgl32.Vec2{p.Float(keyGroundSpeedLimit), 0}
	case RunBrake:
		s.setBrakeLimit(float32(p.Float(keyGroundBrake)*p.Float(keyRunBrakeBrakeMul)), p.Float(keyGroundSpeedLimit))
	case CatchDash:
		s.setBrakeLimit(float32(p.Float(keyGroundBrake)*p.Float(keyCatchDashBrakeMul)), p.Float(keyGroundSpeedLimit))
	case ShieldRebound:
		s.setBrakeLimit(float32(p.Float(keyGroundBrake)*p.Float(keyShieldReboundBrake)), p.Float(keyDamageSpeedLimit))
	default:
		return Handled
	}
	s.Dbg.Notify(debug.ModeInitialize, true, "%v: brake=%v limit=%v", s.resetType, s.speedBrake, s.speedLimit)
	return Handled
}

func (s *Stop) setBrakeLimit(brake, limit float32) {
	s.speedBrake = mgl32.Vec2{brake, 0}
	s.speedLimit = mgl32.Vec2{limit, 0}
}
