// Package param resolves the named tunables read by the kinetic state machine.
package param

import "github.com/zeebo/xxh3"

const (
	// GroupCommon holds parameters shared by every fighter.
	GroupCommon = "common"
	// GroupFighter holds per-fighter parameters such as ground_brake or walk_speed_max.
	GroupFighter = "fighter"
	// GroupBattleObject holds parameters shared by every battle object.
	GroupBattleObject = "battle_object"
)

// Key names a parameter inside a group.
type Key struct {
	Group string
	Name  string
}

// Common returns a key in the common group.
func Common(name string) Key {
	return Key{Group: GroupCommon, Name: name}
}

// Fighter returns a key in the per-fighter group.
func Fighter(name string) Key {
	return Key{Group: GroupFighter, Name: name}
}

// BattleObject returns a key in the battle object group.
func BattleObject(name string) Key {
	return Key{Group: GroupBattleObject, Name: name}
}

// Hash returns the lookup hash of the key.
func (k Key) Hash() uint64 {
	return xxh3.HashString(k.Group + "." + k.Name)
}

func (k Key) String() string {
	return k.Group + "." + k.Name
}
