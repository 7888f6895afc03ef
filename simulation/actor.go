package simulation

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/debug"
	"github.com/oomph-ac/kinetic/kinetic"
	"github.com/oomph-ac/kinetic/param"
)

// ActorState is the environment of an actor: everything the stop energy reads besides its parameters.
// Areas and joints are relative to Position.
type ActorState struct {
	Position     mgl32.Vec3
	Situation    kinetic.Situation
	GroundNormal mgl32.Vec2

	LimitExempt    bool
	TrailingGround bool
	Dead           bool

	JostleArea kinetic.AreaKind
	Areas      map[kinetic.AreaKind]cube.BBox
	Joints     map[kinetic.JointID]mgl32.Vec3

	LastDamage kinetic.DamageLog
	// Links maps a link slot to the id of the parent actor.
	Links map[kinetic.LinkSlot]uint32

	// Motion holds the translation speed of the current motion clip, one entry per frame. The clip drives the
	// energy while MotionFrame is within it.
	Motion      []mgl32.Vec3
	MotionFrame int
}

// Actor is an in-memory fighter implementing kinetic.Env.
type Actor struct {
	id     uint32
	world  *World
	params *param.Store
	stop   *kinetic.Stop

	State ActorState

	dbg *debug.Debugger
}

// NewActor returns an actor with the given id and parameters. The actor must be added to a World before it
// can look up other actors.
func NewActor(id uint32, params *param.Store) *Actor {
	if params == nil {
		params = param.Defaults()
	}
	return &Actor{
		id:     id,
		params: params,
		stop:   kinetic.NewStop(),
		State:  ActorState{GroundNormal: FlatGround},
	}
}

// ID returns the id other actors look the actor up with.
func (a *Actor) ID() uint32 {
	return a.id
}

// Stop returns the stop energy of the actor.
func (a *Actor) Stop() *kinetic.Stop {
	return a.stop
}

// SetDebugger sets the debugger used by the actor and its stop energy.
func (a *Actor) SetDebugger(dbg *debug.Debugger) {
	a.dbg = dbg
	a.stop.Dbg = dbg
}

// Valid returns false once the actor is dead.
func (a *Actor) Valid() bool {
	return !a.State.Dead
}

// Pos returns the position of the actor.
func (a *Actor) Pos() mgl32.Vec3 {
	return a.State.Position
}

// JostleAreaKind returns the area kind other actors are pushed out of.
func (a *Actor) JostleAreaKind() kinetic.AreaKind {
	return a.State.JostleArea
}

// HasAreaInstance reports whether the actor has bounds for the area kind.
func (a *Actor) HasAreaInstance(kind kinetic.AreaKind) bool {
	_, ok := a.State.Areas[kind]
	return ok
}

// AreaBounds returns the bounds of the area kind in world space.
func (a *Actor) AreaBounds(kind kinetic.AreaKind) cube.BBox {
	return a.State.Areas[kind].Translate(a.State.Position)
}

// HasJoint reports whether the actor has the joint.
func (a *Actor) HasJoint(id kinetic.JointID) bool {
	_, ok := a.State.Joints[id]
	return ok
}

// JointGlobalPosition returns the world position of the joint.
func (a *Actor) JointGlobalPosition(id kinetic.JointID) mgl32.Vec3 {
	return a.State.Position.Add(a.State.Joints[id])
}

// Params returns the parameters of the actor.
func (a *Actor) Params() kinetic.Params {
	return a.params
}

// Situation returns whether the actor is on the ground or in the air.
func (a *Actor) Situation() kinetic.Situation {
	return a.State.Situation
}

// SpeedLimitExempt reports whether the situation speed limits are skipped.
func (a *Actor) SpeedLimitExempt() bool {
	return a.State.LimitExempt
}

// TouchingTrailingGround reports whether the ground behind the actor is being touched.
func (a *Actor) TouchingTrailingGround() bool {
	return a.State.TrailingGround
}

// DamageLog returns the last damage the actor took.
func (a *Actor) DamageLog() kinetic.DamageLog {
	return a.State.LastDamage
}

// BattleObject looks up another actor of the same world.
func (a *Actor) BattleObject(id uint32) (kinetic.Object, bool) {
	if a.world == nil {
		return nil, false
	}
	return a.world.object(id)
}

func (a *Actor) parent(slot kinetic.LinkSlot) (*Actor, bool) {
	id, ok := a.State.Links[slot]
	if !ok || a.world == nil {
		return nil, false
	}
	return a.world.Actor(id)
}

// IsLinked reports whether a parent is linked through slot.
func (a *Actor) IsLinked(slot kinetic.LinkSlot) bool {
	_, ok := a.parent(slot)
	return ok
}

// ParentSumSpeed returns the speed of the parent linked through slot. The arg selects the energies to sum in
// the engine; actors here only carry a stop energy, so it is ignored.
func (a *Actor) ParentSumSpeed(slot kinetic.LinkSlot, _ int32) mgl32.Vec3 {
	p, ok := a.parent(slot)
	if !ok {
		return mgl32.Vec3{}
	}
	return p.stop.Speed().Vec3(0)
}

// MotionUpdatingEnergy reports whether the motion track still drives the speed this frame.
func (a *Actor) MotionUpdatingEnergy() bool {
	return a.State.MotionFrame < len(a.State.Motion)
}

// TransMoveSpeed returns the motion track speed for the current frame.
func (a *Actor) TransMoveSpeed() mgl32.Vec3 {
	if !a.MotionUpdatingEnergy() {
		return mgl32.Vec3{}
	}
	return a.State.Motion[a.State.MotionFrame]
}

// MotionFrame returns the current frame of the motion track.
func (a *Actor) MotionFrame() float32 {
	return float32(a.State.MotionFrame)
}

// AdjustSpeedForGroundNormal projects speed onto the ground the actor stands on.
func (a *Actor) AdjustSpeedForGroundNormal(speed mgl32.Vec2) mgl32.Vec2 {
	adjusted := AdjustForGroundNormal(speed, a.State.GroundNormal)
	a.dbg.Notify(debug.ModeSetup, adjusted != speed, "actor %d: ground (%.1f deg) adjusted %v to %v", a.id, slope(a.State.GroundNormal), speed, adjusted)
	return adjusted
}

// Process integrates the stop energy.
func (a *Actor) Process(s *kinetic.Stop) {
	Integrate(s)
}

// advance moves the actor by its stop speed and steps its motion clip.
func (a *Actor) advance() {
	speed := a.stop.Speed()
	a.State.Position = a.State.Position.Add(mgl32.Vec3{speed[0], speed[1], 0})
	a.State.MotionFrame++
}
