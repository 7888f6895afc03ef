package kinetic

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/debug"
)

// The inner control point weights of the knockback curve. They are kept as the single precision products
// the curve was tuned with rather than the decimal values they approximate, which round differently.
var (
	knockBackWeightB = float32(3) * float32(0.6)
	knockBackWeightC = float32(3) * float32(0.79)
)

// knockBackCurve evaluates the knockback blend at progress t for the given speed rate (a percentage), scaled
// by scale. Every product is rounded to single precision on its own to keep the result bit-exact.
func knockBackCurve(rate, t, scale float32) float32 {
	rem := 1 - t
	rem2 := float32(rem * rem)
	t2 := float32(t * t)

	v := float32(float32(rate*0.01) * float32(rem2*rem))
	v += float32(float32(knockBackWeightB*t) * rem2)
	v += float32(float32(knockBackWeightC*t2) * rem)
	v += float32(t2 * t)
	return float32(v * scale)
}

// KnockBackCurve returns the cumulative knockback displacement factor at progress t in [0, 1] for the given
// speed rate. At t=0 it is rate/100 and at t=1 it is 1.
func KnockBackCurve(rate, t float32) float32 {
	return knockBackCurve(rate, t, 1)
}

// proximityImpulse derives the knockback hitstop window and initial speed from how far the actor has been
// pushed into its attacker's jostle area. Any failed lookup leaves the knockback state zeroed.
func (s *Stop) proximityImpulse(env Env) {
	log := env.DamageLog()
	attacker, ok := env.BattleObject(log.AttackerID)
	if !ok || !attacker.Valid() {
		s.Dbg.Notify(debug.ModeKnockBack, true, "no valid attacker (id=%d)", log.AttackerID)
		return
	}
	if !env.HasAreaInstance(env.JostleAreaKind()) {
		return
	}
	kind := attacker.JostleAreaKind()
	if !attacker.HasAreaInstance(kind) {
		return
	}
	bounds := attacker.AreaBounds(kind)
	ours, theirs := env.Pos(), attacker.Pos()

	var (
		edge        float32
		overlapping bool
	)
	if ours[0] >= theirs[0] {
		edge = bounds.Max().X()
		for _, j := range [...]JointID{JointKnockBackPrimary, JointKnockBackSecondary} {
			if attacker.HasJoint(j) {
				edge = math32.Max(attacker.JointGlobalPosition(j)[0], edge)
			}
		}
		overlapping = ours[0] < edge
	} else {
		edge = bounds.Min().X()
		for _, j := range [...]JointID{JointKnockBackPrimary, JointKnockBackSecondary} {
			if attacker.HasJoint(j) {
				edge = math32.Min(attacker.JointGlobalPosition(j)[0], edge)
			}
		}
		overlapping = edge < ours[0]
	}

	s.hitStopElapsed, s.hitStopFrames = 0, 0
	s.knockBackPrev, s.knockBackScale = 0, 0

	var overlap float32
	if overlapping {
		overlap = edge - ours[0]
	}

	p := env.Params()
	frameRate := p.Float(keyKnockBackHitStopRate)
	s.hitStopFrames = math32.Max(float32(float32(frameRate*0.01)*float32(log.HitStopFrames)), 1)
	s.knockBackScale = overlap

	rate := p.Float(keyKnockBackSpeedXRate)
	s.speed = mgl32.Vec2{float32(float32(overlap*rate) * 0.01), 0}
	s.Dbg.Notify(debug.ModeKnockBack, true, "overlap=%f edge=%f hitstop=%f speed=%v", overlap, edge, s.hitStopFrames, s.speed)
}

// updateKnockBack advances the knockback curve by one frame. The speed becomes the difference between the
// current and previous curve values, so the accumulated displacement follows the curve.
func (s *Stop) updateKnockBack(env Env) {
	if s.hitStopFrames <= 0 {
		return
	}
	if env.Situation() != SituationGround || s.hitStopFrames <= s.hitStopElapsed {
		s.speed[0] = 0
		s.hitStopElapsed, s.hitStopFrames = 0, 0
		s.knockBackPrev, s.knockBackScale = 0, 0
		s.Dbg.Notify(debug.ModeKnockBack, true, "knockback finished")
		return
	}
	rate := env.Params().Float(keyKnockBackSpeedXRate)
	t := s.hitStopElapsed / s.hitStopFrames
	v := knockBackCurve(rate, t, s.knockBackScale)

	s.rotSpeed = s.speed
	s.speed = mgl32.Vec2{v - s.knockBackPrev, s.speed[1]}
	s.hitStopElapsed++
	s.knockBackPrev = v
	s.Dbg.Notify(debug.ModeKnockBack, true, "t=%f curve=%f speed.x=%f", t, v, s.speed[0])
}
