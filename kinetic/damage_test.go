package kinetic

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func damageEnv() *mockEnv {
	e := defaultEnv()
	e.situation = SituationAir
	e.params.Set(keyDamageAirBrake, 0)
	return e
}

func TestDamageStationary(t *testing.T) {
	e := damageEnv()
	s := NewStop()
	s.Setup(e, DamageAir, mgl32.Vec2{0, 1e-6})
	s.SetAccel(mgl32.Vec2{1, 1})
	require.Equal(t, Handled, s.Update(e))
	require.Equal(t, mgl32.Vec2{}, s.Accel())
	require.Equal(t, mgl32.Vec2{0, 1e-6}, s.Speed())
}

func TestDamageSpeedSyncAppliesOnce(t *testing.T) {
	e := damageEnv()
	e.params.Set(keyDamageSpeedSyncMul, 0.5)

	s := NewStop()
	s.Setup(e, DamageAir, mgl32.Vec2{1, 0})
	s.RequestDamageSpeedSync()
	s.Update(e)
	require.Equal(t, mgl32.Vec2{0.5, 0}, s.Speed())
	s.Update(e)
	require.Equal(t, mgl32.Vec2{0.5, 0}, s.Speed())
}

func TestDamageInterpolation(t *testing.T) {
	e := damageEnv()
	s := NewStop()
	s.Setup(e, DamageAir, mgl32.Vec2{1, 0})
	s.InterpolateSpeed(mgl32.Vec2{3, -1}, 2)

	s.Update(e)
	require.Equal(t, mgl32.Vec2{2, -0.5}, s.Speed())
	require.Equal(t, uint32(1), s.InterpolationFrames())
	s.Update(e)
	require.Equal(t, mgl32.Vec2{3, -1}, s.Speed())
	require.Zero(t, s.InterpolationFrames())
	s.Update(e)
	require.Equal(t, mgl32.Vec2{3, -1}, s.Speed())
}

func TestDamageAirBrake(t *testing.T) {
	e := damageEnv()
	e.params.Set(keyDamageAirBrake, 1)

	s := NewStop()
	s.Setup(e, DamageAirOrbit, mgl32.Vec2{3, 4})
	s.Update(e)
	require.InDelta(t, 2.4, s.Speed()[0], 1e-6)
	require.InDelta(t, 3.2, s.Speed()[1], 1e-6)
	require.Equal(t, mgl32.Vec2{}, s.Brake())

	e.params.Set(keyDamageAirBrake, 10)
	s.Update(e)
	require.Equal(t, mgl32.Vec2{}, s.Speed(), "a brake larger than the speed stops the actor")
	require.Equal(t, mgl32.Vec2{}, s.Accel())
}

func TestDamageGrounded(t *testing.T) {
	e := defaultEnv()
	p := e.params
	s := NewStop()
	s.Setup(e, DamageGround, mgl32.Vec2{2, 0})
	s.SetAccel(mgl32.Vec2{1, 0})

	s.Update(e)
	require.Equal(t, mgl32.Vec2{p.Float(keyGroundBrake) * p.Float(keyDamageGroundMul), 0}, s.Brake())
	require.Equal(t, mgl32.Vec2{}, s.Accel())
	require.Equal(t, mgl32.Vec2{2, 0}, s.Speed())

	e.trailing = true
	s.Update(e)
	require.Equal(t, float32(0), s.Speed()[0])
}

func TestDamagePositionTarget(t *testing.T) {
	e := damageEnv()
	s := NewStop()
	s.Setup(e, DamageAirIce, mgl32.Vec2{3, 4})
	s.TargetPosition(2.5)
	s.Update(e)
	require.Equal(t, mgl32.Vec2{1.5, 2}, s.Speed())

	s.TargetPosition(-1)
	s.SetSpeed(mgl32.Vec2{3, 4})
	s.Update(e)
	require.Equal(t, mgl32.Vec2{3, 4}, s.Speed())
}

func TestEarlyBrakeTypes(t *testing.T) {
	e := damageEnv()
	e.params.Set(keyAirBrakeX, 10)

	s := NewStop()
	s.Setup(e, AirBrakeAlways, mgl32.Vec2{3, -0.5})
	s.SetSpeedMax(mgl32.Vec2{1, 1})
	require.Equal(t, Handled, s.Update(e))
	require.Equal(t, mgl32.Vec2{1, -0.5}, s.Speed(), "AirBrakeAlways keeps speed_max of drift")
	require.Zero(t, e.processed)

	s.Setup(e, AirBrake, mgl32.Vec2{3, -0.5})
	require.Equal(t, Handled, s.Update(e))
	require.Equal(t, mgl32.Vec2{}, s.Speed())

	e.params.Set(keyAirBrakeX, 1)
	s.Setup(e, AirBrake, mgl32.Vec2{3, 4})
	s.Update(e)
	require.InDelta(t, 2.4, s.Speed()[0], 1e-6)
	require.InDelta(t, 3.2, s.Speed()[1], 1e-6)

	e.situation = SituationGround
	s.Setup(e, ShieldRebound, mgl32.Vec2{1, 0})
	brake := s.Brake()[0]
	s.Update(e)
	require.InDelta(t, 1-brake, s.Speed()[0], 1e-6)
	require.Zero(t, e.processed)
}

func TestAirBrakeAlwaysDriftIsMonotonic(t *testing.T) {
	e := damageEnv()
	e.params.Set(keyAirBrakeX, 10)

	cases := []struct {
		in, want float32
	}{
		{0.5, 0.5},
		{0.99, 0.99},
		{1, 1},
		{1.5, 1},
		{-0.5, -0.5},
		{-3, -1},
	}
	prev := float32(0)
	for _, c := range cases[:4] {
		s := NewStop()
		s.Setup(e, AirBrakeAlways, mgl32.Vec2{c.in, 0})
		s.SetSpeedMax(mgl32.Vec2{1, 1})
		s.Update(e)
		require.Equal(t, c.want, s.Speed()[0], "in=%v", c.in)
		require.GreaterOrEqual(t, s.Speed()[0], prev, "a faster actor must not end up slower")
		prev = s.Speed()[0]
	}
	for _, c := range cases[4:] {
		s := NewStop()
		s.Setup(e, AirBrakeAlways, mgl32.Vec2{0, c.in})
		s.SetSpeedMax(mgl32.Vec2{1, 1})
		s.Update(e)
		require.Equal(t, mgl32.Vec2{0, c.want}, s.Speed(), "in=%v", c.in)
	}
}
