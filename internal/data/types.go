package data

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Type is an elemental type of a species or move.
type Type uint8

const (
	Normal Type = iota
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy

	NumTypes = 18
)

var typeNames = [NumTypes]string{
	"Normal", "Fire", "Water", "Electric", "Grass", "Ice", "Fighting", "Poison", "Ground",
	"Flying", "Psychic", "Bug", "Rock", "Ghost", "Dragon", "Dark", "Steel", "Fairy",
}

// String returns the English name of the type.
func (t Type) String() string {
	if int(t) < NumTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType resolves a type by its English name, case-insensitively.
func ParseType(name string) (Type, error) {
	folded := cases.Fold().String(name)
	for i, n := range typeNames {
		if cases.Fold().String(n) == folded {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// typeEffectMatrix[attacking][defending]: +1 super effective, -1 not very effective,
// -2 double-resisted (immunity in the main series).
var typeEffectMatrix = [NumTypes][NumTypes]int8{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, -2, 0, 0, -1, 0},   // Normal
	{0, -1, -1, 0, 1, 1, 0, 0, 0, 0, 0, 1, -1, 0, -1, 0, 1, 0},  // Fire
	{0, 1, -1, 0, -1, 0, 0, 0, 1, 0, 0, 0, 1, 0, -1, 0, 0, 0},   // Water
	{0, 0, 1, -1, -1, 0, 0, 0, -2, 1, 0, 0, 0, 0, -1, 0, 0, 0},  // Electric
	{0, -1, 1, 0, -1, 0, 0, -1, 1, -1, 0, -1, 1, 0, -1, 0, -1, 0}, // Grass
	{0, -1, -1, 0, 1, -1, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, -1, 0},  // Ice
	{1, 0, 0, 0, 0, 1, 0, -1, 0, -1, -1, -1, 1, -2, 0, 1, 1, -1},  // Fighting
	{0, 0, 0, 0, 1, 0, 0, -1, -1, 0, 0, 0, -1, -1, 0, 0, -2, 1},   // Poison
	{0, 1, 0, 1, -1, 0, 0, 1, 0, -2, 0, -1, 1, 0, 0, 0, 1, 0},   // Ground
	{0, 0, 0, -1, 1, 0, 1, 0, 0, 0, 0, 1, -1, 0, 0, 0, -1, 0},   // Flying
	{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, -1, 0, 0, 0, 0, -2, -1, 0},   // Psychic
	{0, -1, 0, 0, 1, 0, -1, -1, 0, -1, 1, 0, 0, -1, 0, 1, -1, -1}, // Bug
	{0, 1, 0, 0, 0, 1, -1, 0, -1, 1, 0, 1, 0, 0, 0, 0, -1, 0},   // Rock
	{-2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, -1, 0, 0},    // Ghost
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, -1, -2},    // Dragon
	{0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 1, 0, 0, 1, 0, -1, 0, -1},   // Dark
	{0, -1, -1, -1, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, -1, 1},  // Steel
	{0, -1, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 1, 1, -1, 0},   // Fairy
}

const superEffective = 1.6

// typeEffectMultipliers maps a clamped effectiveness sum (-3..2) at index sum+3.
var typeEffectMultipliers = [6]float64{
	1 / (superEffective * superEffective * superEffective),
	1 / (superEffective * superEffective),
	1 / superEffective,
	1,
	superEffective,
	superEffective * superEffective,
}

// TypeEffectBonus returns the damage multiplier of an attacking type against a defender
// with the given types. Per-type entries are summed before the lookup, so dual types
// compound additively.
func TypeEffectBonus(attacking Type, defenders []Type) float64 {
	var sum int
	for _, d := range defenders {
		sum += int(typeEffectMatrix[attacking][d])
	}
	sum = max(-3, min(sum, 2))
	return typeEffectMultipliers[sum+3]
}

// STABMultiplier is the same-type attack bonus.
const STABMultiplier = 1.2
