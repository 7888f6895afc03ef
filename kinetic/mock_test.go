package kinetic

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/param"
)

type mockObject struct {
	dead   bool
	pos    mgl32.Vec3
	kind   AreaKind
	noArea bool
	bounds cube.BBox
	joints map[JointID]mgl32.Vec3
}

func (o *mockObject) Valid() bool { return !o.dead }
func (o *mockObject) Pos() mgl32.Vec3 { return o.pos }
func (o *mockObject) JostleAreaKind() AreaKind { return o.kind }
func (o *mockObject) HasAreaInstance(AreaKind) bool { return !o.noArea }
func (o *mockObject) AreaBounds(AreaKind) cube.BBox { return o.bounds }

func (o *mockObject) HasJoint(id JointID) bool {
	_, ok := o.joints[id]
	return ok
}

func (o *mockObject) JointGlobalPosition(id JointID) mgl32.Vec3 {
	return o.joints[id]
}

// mockEnv is an actor whose integration step only adds the acceleration, so tests can observe the state
// machine on its own.
type mockEnv struct {
	mockObject

	params    *param.Store
	situation Situation
	exempt    bool
	trailing  bool

	log     DamageLog
	objects map[uint32]*mockObject

	linked      bool
	parentSpeed mgl32.Vec3

	motionUpdating bool
	moveSpeed      mgl32.Vec3
	motionFrame    float32

	groundAdjust func(mgl32.Vec2) mgl32.Vec2
	processed    int
}

func newMockEnv() *mockEnv {
	return &mockEnv{params: param.NewStore(), objects: map[uint32]*mockObject{}}
}

func (e *mockEnv) Params() Params { return e.params }
func (e *mockEnv) Situation() Situation { return e.situation }
func (e *mockEnv) SpeedLimitExempt() bool { return e.exempt }
func (e *mockEnv) TouchingTrailingGround() bool { return e.trailing }
func (e *mockEnv) DamageLog() DamageLog { return e.log }
func (e *mockEnv) IsLinked(slot LinkSlot) bool { return e.linked && slot == LinkCapture }
func (e *mockEnv) MotionUpdatingEnergy() bool { return e.motionUpdating }
func (e *mockEnv) TransMoveSpeed() mgl32.Vec3 { return e.moveSpeed }
func (e *mockEnv) MotionFrame() float32 { return e.motionFrame }

func (e *mockEnv) BattleObject(id uint32) (Object, bool) {
	o, ok := e.objects[id]
	if !ok {
		return nil, false
	}
	return o, true
}

func (e *mockEnv) ParentSumSpeed(LinkSlot, int32) mgl32.Vec3 {
	return e.parentSpeed
}

func (e *mockEnv) AdjustSpeedForGroundNormal(speed mgl32.Vec2) mgl32.Vec2 {
	if e.groundAdjust == nil {
		return speed
	}
	return e.groundAdjust(speed)
}

func (e *mockEnv) Process(s *Stop) {
	e.processed++
	s.SetSpeed(s.Speed().Add(s.Accel()))
}
