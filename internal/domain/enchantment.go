package domain

import "fmt"

// Enchantment identifies an enchantment kind
type Enchantment string

const (
	EnchantmentSharpness      Enchantment = "SHARPNESS"
	EnchantmentSmite          Enchantment = "SMITE"
	EnchantmentKnockback      Enchantment = "KNOCKBACK"
	EnchantmentFireAspect     Enchantment = "FIRE_ASPECT"
	EnchantmentLooting        Enchantment = "LOOTING"
	EnchantmentEfficiency     Enchantment = "EFFICIENCY"
	EnchantmentFortune        Enchantment = "FORTUNE"
	EnchantmentSilkTouch      Enchantment = "SILK_TOUCH"
	EnchantmentUnbreaking     Enchantment = "UNBREAKING"
	EnchantmentMending        Enchantment = "MENDING"
	EnchantmentProtection     Enchantment = "PROTECTION"
	EnchantmentPower          Enchantment = "POWER"
	EnchantmentInfinity       Enchantment = "INFINITY"
	EnchantmentLuckOfTheSea   Enchantment = "LUCK_OF_THE_SEA"
	EnchantmentCurseOfBinding Enchantment = "BINDING_CURSE"
)

// MaxLevels holds the vanilla level cap of each enchantment. The builder
// ignores these caps; they are informational for the host.
var MaxLevels = map[Enchantment]int{
	EnchantmentSharpness:      5,
	EnchantmentSmite:          5,
	EnchantmentKnockback:      2,
	EnchantmentFireAspect:     2,
	EnchantmentLooting:        3,
	EnchantmentEfficiency:     5,
	EnchantmentFortune:        3,
	EnchantmentSilkTouch:      1,
	EnchantmentUnbreaking:     3,
	EnchantmentMending:        1,
	EnchantmentProtection:     4,
	EnchantmentPower:          5,
	EnchantmentInfinity:       1,
	EnchantmentLuckOfTheSea:   3,
	EnchantmentCurseOfBinding: 1,
}

// ParseEnchantment resolves an enchantment by name
func ParseEnchantment(name string) (Enchantment, error) {
	e := Enchantment(normalizeName(name))
	if _, ok := MaxLevels[e]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnchantment, name)
	}
	return e, nil
}

// MaxLevel returns the vanilla level cap, or 0 when unknown
func (e Enchantment) MaxLevel() int {
	return MaxLevels[e]
}
