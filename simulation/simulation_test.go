package simulation

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/kinetic"
	"github.com/oomph-ac/kinetic/param"
	"github.com/stretchr/testify/require"
)

func TestIntegrate(t *testing.T) {
	e := NewActor(1, param.Defaults())
	s := e.Stop()
	s.Setup(e, kinetic.Air, mgl32.Vec2{1, -1})

	// Air: brake 0.01 on x only, limit air_speed_x_limit on x only.
	Integrate(s)
	require.InDelta(t, 0.99, s.Speed()[0], 1e-6)
	require.Equal(t, float32(-1), s.Speed()[1])

	s.SetSpeed(mgl32.Vec2{-0.005, 0})
	Integrate(s)
	require.Equal(t, mgl32.Vec2{0, 0}, s.Speed(), "brake must not cross zero")

	s.SetSpeed(mgl32.Vec2{-50, 0})
	Integrate(s)
	require.Equal(t, -e.params.Float(param.Common("air_speed_x_limit")), s.Speed()[0])

	s.Reset(kinetic.Free, mgl32.Vec2{50, 50})
	s.SetAccel(mgl32.Vec2{1, -1})
	Integrate(s)
	require.Equal(t, mgl32.Vec2{51, 49}, s.Speed(), "a disabled limit must not clamp")
}

func TestAdjustForGroundNormal(t *testing.T) {
	require.Equal(t, mgl32.Vec2{2, 0}, AdjustForGroundNormal(mgl32.Vec2{2, 3}, FlatGround))
	require.Equal(t, mgl32.Vec2{2, 0}, AdjustForGroundNormal(mgl32.Vec2{2, 3}, mgl32.Vec2{}))

	slope := AdjustForGroundNormal(mgl32.Vec2{1, 0}, mgl32.Vec2{-1, 1})
	require.InDelta(t, 0.5, slope[0], 1e-6)
	require.InDelta(t, 0.5, slope[1], 1e-6)
}

func TestWorldRegistry(t *testing.T) {
	w := NewWorld(nil)
	a := NewActor(0, nil)
	b := NewActor(5, nil)
	c := NewActor(0, nil)
	w.AddActor(b)
	w.AddActor(a)
	w.AddActor(c)
	require.Equal(t, uint32(1), a.ID())
	require.Equal(t, uint32(2), c.ID())

	ids := []uint32{}
	for _, actor := range w.Actors() {
		ids = append(ids, actor.ID())
	}
	require.Equal(t, []uint32{1, 2, 5}, ids)

	o, ok := a.BattleObject(5)
	require.True(t, ok)
	require.Same(t, b, o)

	w.RemoveActor(5)
	_, ok = a.BattleObject(5)
	require.False(t, ok)
	_, ok = b.BattleObject(1)
	require.False(t, ok, "a removed actor can no longer see its world")
}

func TestActorAreasAndJoints(t *testing.T) {
	a := NewActor(1, nil)
	a.State.Position = mgl32.Vec3{2, 1, 0}
	a.State.Joints = map[kinetic.JointID]mgl32.Vec3{kinetic.JointKnockBackPrimary: {0.5, 0.5, 0}}
	require.True(t, a.HasJoint(kinetic.JointKnockBackPrimary))
	require.False(t, a.HasJoint(kinetic.JointKnockBackSecondary))
	require.Equal(t, mgl32.Vec3{2.5, 1.5, 0}, a.JointGlobalPosition(kinetic.JointKnockBackPrimary))
	require.False(t, a.HasAreaInstance(0))
}

func TestActorLinksAndMotion(t *testing.T) {
	w := NewWorld(nil)
	child, parent := NewActor(1, nil), NewActor(2, nil)
	w.AddActor(child)
	w.AddActor(parent)

	require.False(t, child.IsLinked(kinetic.LinkCapture))
	child.State.Links = map[kinetic.LinkSlot]uint32{kinetic.LinkCapture: 2}
	parent.Stop().SetSpeed(mgl32.Vec2{1, 2})
	require.True(t, child.IsLinked(kinetic.LinkCapture))
	require.Equal(t, mgl32.Vec3{1, 2, 0}, child.ParentSumSpeed(kinetic.LinkCapture, 1))

	child.State.Motion = []mgl32.Vec3{{0, 0, 1}}
	require.True(t, child.MotionUpdatingEnergy())
	require.Equal(t, mgl32.Vec3{0, 0, 1}, child.TransMoveSpeed())
	child.advance()
	require.False(t, child.MotionUpdatingEnergy())
	require.Equal(t, mgl32.Vec3{}, child.TransMoveSpeed())
	require.Equal(t, float32(1), child.MotionFrame())
}

func TestSchedulerFallback(t *testing.T) {
	w := NewWorld(nil)
	a := NewActor(1, nil)
	w.AddActor(a)

	sched := NewScheduler(w, nil)
	sched.Setup(a, kinetic.Ground, mgl32.Vec2{0.5, 0})
	require.Equal(t, kinetic.Deferred, sched.Update(a))
	require.InDelta(t, 0.4, a.Stop().Speed()[0], 1e-6, "the default update still integrates the ground brake")

	sched.Enabled = false
	sched.Setup(a, kinetic.Ground, mgl32.Vec2{0.5, 0})
	require.Equal(t, mgl32.Vec2{}, a.Stop().Brake(), "the default setup does not derive parameters")
	sched.Initialize(a)
	require.Equal(t, mgl32.Vec2{}, a.Stop().Brake())
	require.Equal(t, kinetic.Deferred, sched.Update(a))
	require.Equal(t, mgl32.Vec2{0.5, 0}, a.Stop().Speed())

	sched.Setup(a, kinetic.CaptureBeetle, mgl32.Vec2{})
	require.Equal(t, kinetic.Deferred, sched.Update(a), "a disabled scheduler defers every reset type")

	c, ok := sched.Counts().Get(kinetic.Ground)
	require.True(t, ok)
	require.Equal(t, Counts{Deferred: 2}, c)
	require.Equal(t, []kinetic.ResetType{kinetic.Ground, kinetic.CaptureBeetle}, sched.Counts().Keys())
}

func TestSchedulerStep(t *testing.T) {
	w := NewWorld(nil)
	a := NewActor(1, nil)
	w.AddActor(a)
	a.State.Situation = kinetic.SituationAir

	sched := NewScheduler(w, nil)
	sched.Setup(a, kinetic.DamageAir, mgl32.Vec2{0.5, -0.25})

	var results []kinetic.Result
	sched.Step(func(_ *Actor, res kinetic.Result) {
		results = append(results, res)
	})
	require.Equal(t, []kinetic.Result{kinetic.Handled}, results)
	require.Equal(t, 1, sched.Frame())
	require.Equal(t, a.Stop().Speed().Vec3(0), a.Pos())
}
