// Package simcontrol defines the Controller/View contract shared by the
// naive state-machine controller and the NEAT-genome controller: a small
// closed set of concrete action verbs behind one polymorphic call.
package simcontrol

import "github.com/lixenwraith/neat-arena/geom"

// WeaponKind tags which variant a Weapon value holds.
type WeaponKind uint8

const (
	// WeaponNone marks a zero-value Weapon; never produced by a controller.
	WeaponNone WeaponKind = iota
	WeaponLaser
	WeaponMissile
)

// Weapon is a tagged union of the two fire modes a Fire action can carry.
// Only the fields for Kind are meaningful; the rest are zero.
type Weapon struct {
	Kind WeaponKind

	// Laser fields.
	Damage float64
	Range  float64

	// Missile fields (Damage above is shared; Speed/TTL are missile-only).
	Speed float64
	TTL   float64
}

// LaserWeapon builds a Fire{Laser{damage, range}} weapon value.
func LaserWeapon(damage, rng float64) Weapon {
	return Weapon{Kind: WeaponLaser, Damage: damage, Range: rng}
}

// MissileWeapon builds a Fire{Missile{damage, speed, ttl}} weapon value.
func MissileWeapon(damage, speed, ttl float64) Weapon {
	return Weapon{Kind: WeaponMissile, Damage: damage, Speed: speed, TTL: ttl}
}

// ActionKind tags which variant an Action value holds.
type ActionKind uint8

const (
	// ActionIdle is the zero value: no command is recorded for the tick.
	ActionIdle ActionKind = iota
	ActionThrust
	ActionFire
	ActionLoot
)

// Action is the tagged union a Controller returns from Think: Thrust(Vec2),
// Fire{Weapon}, Loot, or Idle. Exactly one of Thrust/Weapon is meaningful,
// selected by Kind.
type Action struct {
	Kind   ActionKind
	Thrust geom.Vec2
	Weapon Weapon
}

// Idle returns the no-op action.
func Idle() Action { return Action{Kind: ActionIdle} }

// ThrustTo returns a Thrust(v) action.
func ThrustTo(v geom.Vec2) Action { return Action{Kind: ActionThrust, Thrust: v} }

// FireWeapon returns a Fire{weapon} action.
func FireWeapon(w Weapon) Action { return Action{Kind: ActionFire, Weapon: w} }

// Loot returns the Loot action.
func Loot() Action { return Action{Kind: ActionLoot} }
