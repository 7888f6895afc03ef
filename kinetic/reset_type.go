package kinetic

import "github.com/oomph-ac/kinetic/oerror"

// ResetType selects how a Stop resolves its speed. The numeric values match the engine's enum.
type ResetType uint32

const (
	Ground ResetType = iota
	DamageGround
	DamageAir
	DamageAirIce
	DamageOther
	DamageKnockBack
	GlidLanding
	Air
	AirXNormalMax
	AirEscape
	AirBrake
	AirBrakeAlways
	GuardDamage
	Capture
	CatchCut
	ItemSwingDash
	ItemDashThrow
	SwimBrake
	Run
	RunBrake
	GlidStart
	CatchDash
	ShieldRebound
	Free
	CaptureBeetle
	AirLassoHang
	AirLassoRewind
	EscapeAirSlide
	DamageGroundOrbit
	DamageAirOrbit

	resetTypeCount
)

var resetTypeNames = [resetTypeCount]string{
	"Ground",
	"DamageGround",
	"DamageAir",
	"DamageAirIce",
	"DamageOther",
	"DamageKnockBack",
	"GlidLanding",
	"Air",
	"AirXNormalMax",
	"AirEscape",
	"AirBrake",
	"AirBrakeAlways",
	"GuardDamage",
	"Capture",
	"CatchCut",
	"ItemSwingDash",
	"ItemDashThrow",
	"SwimBrake",
	"Run",
	"RunBrake",
	"GlidStart",
	"CatchDash",
	"ShieldRebound",
	"Free",
	"CaptureBeetle",
	"AirLassoHang",
	"AirLassoRewind",
	"EscapeAirSlide",
	"DamageGroundOrbit",
	"DamageAirOrbit",
}

// ResetTypes returns every known reset type in enum order.
func ResetTypes() []ResetType {
	types := make([]ResetType, resetTypeCount)
	for i := range types {
		types[i] = ResetType(i)
	}
	return types
}

// Valid returns true if t is one of the known reset types.
func (t ResetType) Valid() bool {
	return t < resetTypeCount
}

func (t ResetType) String() string {
	if !t.Valid() {
		return "ResetType(invalid)"
	}
	return resetTypeNames[t]
}

// ParseResetType returns the reset type with the given name.
func ParseResetType(name string) (ResetType, bool) {
	for i, n := range resetTypeNames {
		if n == name {
			return ResetType(i), true
		}
	}
	return 0, false
}

// MarshalText ...
func (t ResetType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, oerror.New("invalid reset type %d", uint32(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText ...
func (t *ResetType) UnmarshalText(text []byte) error {
	v, ok := ParseResetType(string(text))
	if !ok {
		return oerror.New("unknown reset type %q", string(text))
	}
	*t = v
	return nil
}

// groundEntry reports whether the speed passed to Setup is projected onto the ground normal.
func (t ResetType) groundEntry() bool {
	switch t {
	case Ground, CatchCut, ItemSwingDash, ItemDashThrow,
		DamageGround, GuardDamage, Run, RunBrake, CatchDash, ShieldRebound, DamageGroundOrbit:
		return true
	}
	return false
}

// walkCapable reports whether the over-walk-speed check runs on Setup.
func (t ResetType) walkCapable() bool {
	switch t {
	case Ground, CatchCut, ItemSwingDash, ItemDashThrow:
		return true
	}
	return false
}

// damagePhysics reports whether the type runs the per-frame damage flight physics.
func (t ResetType) damagePhysics() bool {
	switch t {
	case DamageGround, DamageAir, DamageAirOrbit, DamageAirIce:
		return true
	}
	return false
}
