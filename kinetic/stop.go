// Package kinetic implements the "stop" kinetic energy of a fighter: the velocity state that brakes,
// clamps and shapes an actor's movement according to its current reset type.
package kinetic

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/debug"
)

// disabledLimit is the speed limit value that disables clamping on an axis.
const disabledLimit = -1

// Result tells the caller whether the state machine resolved a call itself. Deferred means the caller's
// built-in behaviour must run instead.
type Result uint8

const (
	Deferred Result = iota
	Handled
)

func (r Result) String() string {
	if r == Handled {
		return "handled"
	}
	return "deferred"
}

// scratch holds state that is only meaningful for specific reset types. It is zeroed on every transition
// except into AirLassoRewind.
type scratch struct {
	// damageSpeed is the interpolation target of damage physics, seeded by AirLassoHang and EscapeAirSlide.
	damageSpeed mgl32.Vec2

	// DamageKnockBack curve state.
	hitStopElapsed float32
	hitStopFrames  float32
	knockBackPrev  float32
	knockBackScale float32

	// interpolationFrames is the amount of frames left to reach damageSpeed.
	interpolationFrames uint32

	syncRequested bool
	syncApplied   bool

	positionTarget      bool
	positionTargetLimit float32

	// overWalkSpeed is set on Setup when the ground-adjusted entry speed exceeds walk_speed_max.
	overWalkSpeed bool
}

// Stop is the stop energy of a single actor. It is owned and mutated exclusively by that actor's frame
// update and must not be shared between goroutines.
type Stop struct {
	speed      mgl32.Vec2
	rotSpeed   mgl32.Vec2
	accel      mgl32.Vec2
	speedMax   mgl32.Vec2
	speedBrake mgl32.Vec2
	speedLimit mgl32.Vec2

	enabled   bool
	resetType ResetType

	scratch

	// Dbg receives debug traces. It may be nil.
	Dbg *debug.Debugger
}

// NewStop returns an enabled Stop in the Ground reset type with no speed and clamping disabled.
func NewStop() *Stop {
	return &Stop{
		enabled:    true,
		speedLimit: mgl32.Vec2{disabledLimit, disabledLimit},
	}
}

// Reset clears the speed state, disables the speed limit and enters the reset type with the given
// speed. Unlike Setup, no reset type specific work is done.
func (s *Stop) Reset(t ResetType, speed mgl32.Vec2) {
	s.speed = mgl32.Vec2{}
	s.rotSpeed = mgl32.Vec2{}
	s.accel = mgl32.Vec2{}
	s.speedMax = mgl32.Vec2{}
	s.speedBrake = mgl32.Vec2{}
	s.speedLimit = mgl32.Vec2{disabledLimit, disabledLimit}
	s.resetType = t
	s.speed = speed
}

// ResetType returns the current reset type.
func (s *Stop) ResetType() ResetType {
	return s.resetType
}

// Speed returns the current speed.
func (s *Stop) Speed() mgl32.Vec2 {
	return s.speed
}

// SetSpeed sets the current speed.
func (s *Stop) SetSpeed(speed mgl32.Vec2) {
	s.speed = speed
}

// RotSpeed returns the speed snapshot taken by the knockback curve before each step.
func (s *Stop) RotSpeed() mgl32.Vec2 {
	return s.rotSpeed
}

// Accel returns the acceleration applied by the next integration step.
func (s *Stop) Accel() mgl32.Vec2 {
	return s.accel
}

// SetAccel sets the acceleration applied by the next integration step.
func (s *Stop) SetAccel(accel mgl32.Vec2) {
	s.accel = accel
}

// SpeedMax returns the reset type specific reference speed.
func (s *Stop) SpeedMax() mgl32.Vec2 {
	return s.speedMax
}

// SetSpeedMax sets the reset type specific reference speed. AirBrakeAlways keeps this much drift when
// braking.
func (s *Stop) SetSpeedMax(max mgl32.Vec2) {
	s.speedMax = max
}

// Brake returns the per-axis deceleration.
func (s *Stop) Brake() mgl32.Vec2 {
	return s.speedBrake
}

// Limit returns the per-axis speed limit. A negative component disables that axis.
func (s *Stop) Limit() mgl32.Vec2 {
	return s.speedLimit
}

// Enabled returns true if the stop takes part in the integration step.
func (s *Stop) Enabled() bool {
	return s.enabled
}

// SetEnabled enables or disables the integration step.
func (s *Stop) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// HitStop returns the elapsed and total frames of the knockback curve.
func (s *Stop) HitStop() (elapsed, total float32) {
	return s.hitStopElapsed, s.hitStopFrames
}

// KnockBack returns the knockback curve's overlap scale and previous curve value.
func (s *Stop) KnockBack() (scale, prev float32) {
	return s.knockBackScale, s.knockBackPrev
}

// DamageSpeed returns the interpolation target of the damage physics.
func (s *Stop) DamageSpeed() mgl32.Vec2 {
	return s.damageSpeed
}

// OverWalkSpeed returns true if the speed passed to the last Setup exceeded the walk speed.
func (s *Stop) OverWalkSpeed() bool {
	return s.overWalkSpeed
}

// RequestDamageSpeedSync asks the damage physics to scale the speed by damage_speed_sync_mul once.
func (s *Stop) RequestDamageSpeedSync() {
	s.syncRequested = true
}

// InterpolateSpeed moves the speed linearly to target over the given amount of frames of damage physics.
func (s *Stop) InterpolateSpeed(target mgl32.Vec2, frames uint32) {
	s.damageSpeed = target
	s.interpolationFrames = frames
}

// InterpolationFrames returns the amount of frames left before the speed reaches DamageSpeed.
func (s *Stop) InterpolationFrames() uint32 {
	return s.interpolationFrames
}

// TargetPosition limits the speed magnitude of the damage physics while moving toward a position. A
// negative limit clears the target.
func (s *Stop) TargetPosition(limit float32) {
	s.positionTarget = limit >= 0
	s.positionTargetLimit = limit
}
