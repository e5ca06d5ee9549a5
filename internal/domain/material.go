package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Material identifies the type of an item stack (e.g., "DIAMOND_SWORD")
type Material string

// Materials known to the builder. The host may accept more; these are the
// ones templates and tests reference by name.
const (
	MaterialAir               Material = "AIR"
	MaterialStone             Material = "STONE"
	MaterialDirt              Material = "DIRT"
	MaterialPaper             Material = "PAPER"
	MaterialBook              Material = "BOOK"
	MaterialBarrier           Material = "BARRIER"
	MaterialChest             Material = "CHEST"
	MaterialCompass           Material = "COMPASS"
	MaterialClock             Material = "CLOCK"
	MaterialEmerald           Material = "EMERALD"
	MaterialDiamond           Material = "DIAMOND"
	MaterialNameTag           Material = "NAME_TAG"
	MaterialArrow             Material = "ARROW"
	MaterialBow               Material = "BOW"
	MaterialDiamondSword      Material = "DIAMOND_SWORD"
	MaterialDiamondPickaxe    Material = "DIAMOND_PICKAXE"
	MaterialIronSword         Material = "IRON_SWORD"
	MaterialPlayerHead        Material = "PLAYER_HEAD"
	MaterialGrayStainedGlass  Material = "GRAY_STAINED_GLASS_PANE"
	MaterialBlackStainedGlass Material = "BLACK_STAINED_GLASS_PANE"
	MaterialLimeDye           Material = "LIME_DYE"
	MaterialRedDye            Material = "RED_DYE"
	MaterialLeatherHelmet     Material = "LEATHER_HELMET"
	MaterialLeatherChestplate Material = "LEATHER_CHESTPLATE"
	MaterialLeatherLeggings   Material = "LEATHER_LEGGINGS"
	MaterialLeatherBoots      Material = "LEATHER_BOOTS"
	MaterialLeatherHorseArmor Material = "LEATHER_HORSE_ARMOR"
	MaterialCaveAir           Material = "CAVE_AIR"
	MaterialVoidAir           Material = "VOID_AIR"
)

var knownMaterials = map[Material]struct{}{
	MaterialAir: {}, MaterialStone: {}, MaterialDirt: {}, MaterialPaper: {},
	MaterialBook: {}, MaterialBarrier: {}, MaterialChest: {}, MaterialCompass: {},
	MaterialClock: {}, MaterialEmerald: {}, MaterialDiamond: {}, MaterialNameTag: {},
	MaterialArrow: {}, MaterialBow: {}, MaterialDiamondSword: {}, MaterialDiamondPickaxe: {},
	MaterialIronSword: {}, MaterialPlayerHead: {}, MaterialGrayStainedGlass: {},
	MaterialBlackStainedGlass: {}, MaterialLimeDye: {}, MaterialRedDye: {},
	MaterialLeatherHelmet: {}, MaterialLeatherChestplate: {}, MaterialLeatherLeggings: {},
	MaterialLeatherBoots: {}, MaterialLeatherHorseArmor: {}, MaterialCaveAir: {},
	MaterialVoidAir: {},
}

// ParseMaterial resolves a material by name. Accepts "diamond_sword",
// "DIAMOND_SWORD", "minecraft:diamond_sword" and "diamond sword".
func ParseMaterial(name string) (Material, error) {
	m := Material(normalizeName(name))
	if _, ok := knownMaterials[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// IsAir reports whether the material is one of the empty placeholder materials
func (m Material) IsAir() bool {
	return m == "" || m == MaterialAir || m == MaterialCaveAir || m == MaterialVoidAir
}

// IsLeatherArmor reports whether the host attaches colorable metadata to the material
func (m Material) IsLeatherArmor() bool {
	switch m {
	case MaterialLeatherHelmet, MaterialLeatherChestplate, MaterialLeatherLeggings,
		MaterialLeatherBoots, MaterialLeatherHorseArmor:
		return true
	}
	return false
}

// DisplayName returns the human readable default name ("DIAMOND_SWORD" -> "Diamond Sword")
func (m Material) DisplayName() string {
	words := strings.ReplaceAll(strings.ToLower(string(m)), "_", " ")
	return cases.Title(language.English).String(words)
}

func (m Material) String() string {
	return string(m)
}

// normalizeName upper-cases a registry name and strips the "minecraft:" namespace
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	return strings.ToUpper(name)
}
