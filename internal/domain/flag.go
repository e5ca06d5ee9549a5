package domain

import "fmt"

// ItemFlag hides a part of the item tooltip
type ItemFlag string

const (
	FlagHideEnchants          ItemFlag = "HIDE_ENCHANTS"
	FlagHideAttributes        ItemFlag = "HIDE_ATTRIBUTES"
	FlagHideUnbreakable       ItemFlag = "HIDE_UNBREAKABLE"
	FlagHideDestroys          ItemFlag = "HIDE_DESTROYS"
	FlagHidePlacedOn          ItemFlag = "HIDE_PLACED_ON"
	FlagHideDye               ItemFlag = "HIDE_DYE"
	FlagHideArmorTrim         ItemFlag = "HIDE_ARMOR_TRIM"
	FlagHideAdditionalTooltip ItemFlag = "HIDE_ADDITIONAL_TOOLTIP"
)

var knownFlags = map[ItemFlag]struct{}{
	FlagHideEnchants:          {},
	FlagHideAttributes:        {},
	FlagHideUnbreakable:       {},
	FlagHideDestroys:          {},
	FlagHidePlacedOn:          {},
	FlagHideDye:               {},
	FlagHideArmorTrim:         {},
	FlagHideAdditionalTooltip: {},
}

// ParseItemFlag resolves an item flag by name
func ParseItemFlag(name string) (ItemFlag, error) {
	f := ItemFlag(normalizeName(name))
	if _, ok := knownFlags[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownItemFlag, name)
	}
	return f, nil
}
