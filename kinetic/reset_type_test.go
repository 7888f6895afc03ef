package kinetic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResetTypeValues(t *testing.T) {
	require.Len(t, ResetTypes(), 30)
	require.Equal(t, ResetType(0), Ground)
	require.Equal(t, ResetType(5), DamageKnockBack)
	require.Equal(t, ResetType(22), ShieldRebound)
	require.Equal(t, ResetType(26), AirLassoRewind)
	require.Equal(t, ResetType(29), DamageAirOrbit)
	require.False(t, ResetType(30).Valid())
}

func TestResetTypeText(t *testing.T) {
	for _, rt := range ResetTypes() {
		text, err := rt.MarshalText()
		require.NoError(t, err)

		var got ResetType
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, rt, got)
	}
	require.Equal(t, "ItemDashThrow", ItemDashThrow.String())

	_, err := ResetType(42).MarshalText()
	require.Error(t, err)

	var rt ResetType
	require.Error(t, rt.UnmarshalText([]byte("Sideways")))
	_, ok := ParseResetType("ground")
	require.False(t, ok, "names are case sensitive")
}

func TestResetTypeFamilies(t *testing.T) {
	for _, rt := range ResetTypes() {
		if rt.walkCapable() {
			require.True(t, rt.groundEntry(), "%v", rt)
		}
		if rt.damagePhysics() {
			require.False(t, rt.walkCapable(), "%v", rt)
		}
	}
	require.True(t, DamageGroundOrbit.groundEntry())
	require.False(t, DamageAir.groundEntry())
}

func TestResultString(t *testing.T) {
	require.Equal(t, "handled", Handled.String())
	require.Equal(t, "deferred", Deferred.String())
}
