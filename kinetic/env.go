package kinetic

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/oerror"
	"github.com/oomph-ac/kinetic/param"
)

// Situation is the coarse ground/air classification of an actor.
type Situation uint8

const (
	SituationGround Situation = iota
	SituationCliff
	SituationAir
)

func (s Situation) String() string {
	switch s {
	case SituationGround:
		return "ground"
	case SituationCliff:
		return "cliff"
	case SituationAir:
		return "air"
	}
	return "unknown"
}

// MarshalText ...
func (s Situation) MarshalText() ([]byte, error) {
	if s > SituationAir {
		return nil, oerror.New("invalid situation %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText ...
func (s *Situation) UnmarshalText(text []byte) error {
	for v := SituationGround; v <= SituationAir; v++ {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return oerror.New("unknown situation %q", string(text))
}

// AreaKind identifies one of an actor's spatial areas.
type AreaKind int32

// JointID identifies a joint of an actor's skeletal model by the hash of its name.
type JointID uint64

// LinkSlot identifies a link between two actors.
type LinkSlot int32

const (
	// LinkCapture is the link an actor holds to the actor capturing it.
	LinkCapture LinkSlot = 4
)

// The attacker joints that refine the attacker's jostle boundary in the knockback proximity query, in the
// order they are applied.
const (
	JointKnockBackPrimary   JointID = 0x14d5b6ea53
	JointKnockBackSecondary JointID = 0x142fb9d730
)

// Params resolves named tunables. Missing parameters resolve to zero.
type Params interface {
	Float(k param.Key) float32
	Int(k param.Key) int32
}

// Object is a read-only view over an actor. Implementations must not cache state across frames, as the
// actor behind an Object may change between calls.
type Object interface {
	// Valid returns false if the object is dead, removed or otherwise unable to take part in queries.
	Valid() bool
	// Pos returns the world position of the object.
	Pos() mgl32.Vec3
	// JostleAreaKind returns the kind of area currently used for jostling.
	JostleAreaKind() AreaKind
	// HasAreaInstance returns true if the object has an area of the given kind.
	HasAreaInstance(kind AreaKind) bool
	// AreaBounds returns the world extents of the area of the given kind.
	AreaBounds(kind AreaKind) cube.BBox
	// HasJoint returns true if the object's model has the joint.
	HasJoint(id JointID) bool
	// JointGlobalPosition returns the world position of the joint.
	JointGlobalPosition(id JointID) mgl32.Vec3
}

// DamageLog is the most recent damage entry of an actor.
type DamageLog struct {
	AttackerID    uint32
	HitStopFrames int32
}

// Env is everything a Stop reads about, or delegates to, the actor owning it.
type Env interface {
	Object

	Params() Params

	Situation() Situation
	// SpeedLimitExempt returns true while the actor's status skips the global speed limits.
	SpeedLimitExempt() bool
	// TouchingTrailingGround returns true while the actor touches ground on the side opposite to its
	// movement.
	TouchingTrailingGround() bool

	DamageLog() DamageLog
	// BattleObject looks up another actor by id.
	BattleObject(id uint32) (Object, bool)

	IsLinked(slot LinkSlot) bool
	// ParentSumSpeed returns the combined speed of the actor linked through slot.
	ParentSumSpeed(slot LinkSlot, arg int32) mgl32.Vec3

	// MotionUpdatingEnergy returns true if the current motion clip drives the actor's speed this frame.
	MotionUpdatingEnergy() bool
	// TransMoveSpeed samples the motion clip's translation speed. Z carries the horizontal component.
	TransMoveSpeed() mgl32.Vec3
	MotionFrame() float32

	// AdjustSpeedForGroundNormal projects speed onto the ground the actor stands on.
	AdjustSpeedForGroundNormal(speed mgl32.Vec2) mgl32.Vec2
	// Process applies the stop's acceleration, brake and limit to its speed.
	Process(s *Stop)
}
