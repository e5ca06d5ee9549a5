// Package host describes the slice of the game server API that items and click
// actions are built on. The server owns every object behind these interfaces;
// this module only calls into them.
package host

import (
	"context"
	"reflect"
	"strings"

	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/event"
	"github.com/osse101/itemkit/internal/text"
)

// NamespacedKey identifies a persistent data entry as "<namespace>:<key>"
type NamespacedKey struct {
	Namespace string
	Key       string
}

// NewNamespacedKey creates a key scoped to the plugin's namespace
func NewNamespacedKey(p Plugin, key string) NamespacedKey {
	return NamespacedKey{
		Namespace: strings.ToLower(p.Namespace()),
		Key:       strings.ToLower(key),
	}
}

func (k NamespacedKey) String() string {
	return k.Namespace + ":" + k.Key
}

// PersistentDataContainer is the string-keyed store the host serializes with an item
type PersistentDataContainer interface {
	GetString(key NamespacedKey) (string, bool)
	SetString(key NamespacedKey, value string)
	Has(key NamespacedKey) bool
	Remove(key NamespacedKey)
	Keys() []NamespacedKey
}

// ItemMeta is the mutable metadata of an item stack
type ItemMeta interface {
	DisplayName() (text.Component, bool)
	SetDisplayName(name text.Component)

	// Lore returns nil when no lore has been initialized. An initialized but
	// empty lore is returned as a non-nil empty slice.
	Lore() []text.Component
	SetLore(lines []text.Component)

	AddEnchant(e domain.Enchantment, level int, ignoreLevelRestriction bool) bool
	Enchants() map[domain.Enchantment]int

	AddItemFlags(flags ...domain.ItemFlag)
	HasItemFlag(flag domain.ItemFlag) bool
	ItemFlags() []domain.ItemFlag

	IsUnbreakable() bool
	SetUnbreakable(unbreakable bool)

	PersistentData() PersistentDataContainer

	Clone() ItemMeta
}

// ColorableMeta is the metadata variant of dyeable leather armor
type ColorableMeta interface {
	ItemMeta
	Color() domain.Color
	SetColor(c domain.Color)
}

// ItemStack is a quantity of one material plus its metadata
type ItemStack interface {
	Type() domain.Material
	Amount() int
	SetAmount(amount int)

	// ItemMeta returns a copy of the stack's metadata, or nil for empty stacks
	ItemMeta() ItemMeta
	SetItemMeta(meta ItemMeta) bool

	IsEmpty() bool
}

// ItemFactory creates stacks the way the host would
type ItemFactory interface {
	NewItemStack(material domain.Material) ItemStack
}

// InventoryHolder owns an inventory (a menu, a chest, a player)
type InventoryHolder interface {
	Inventory() Inventory
}

// Inventory is a container of slots
type Inventory interface {
	Holder() InventoryHolder
	Size() int
	Item(slot int) ItemStack
	SetItem(slot int, item ItemStack)
}

// ClickEvent is one click in an open inventory view
type ClickEvent interface {
	// CurrentItem is the item in the clicked slot, nil when the slot is empty
	CurrentItem() ItemStack
	// ClickedInventory is nil when the click landed outside any inventory
	ClickedInventory() Inventory
	Slot() int
	IsCancelled() bool
	SetCancelled(cancel bool)
}

// Plugin is the lifecycle handle the host hands to a plugin when it is enabled
type Plugin interface {
	Name() string
	Namespace() string
	Events() event.Bus
}

// NewClickEvent wraps a host click into an event for the plugin's bus
func NewClickEvent(click ClickEvent) event.Event {
	return event.Event{
		Version:  event.EventSchemaVersion,
		Type:     event.InventoryClick,
		Payload:  click,
		Metadata: map[string]interface{}{"slot": click.Slot()},
	}
}

// ClickFromEvent extracts the host click from a bus event
func ClickFromEvent(evt event.Event) (ClickEvent, bool) {
	click, ok := evt.Payload.(ClickEvent)
	return click, ok && click != nil
}

// Dispatch publishes a click on the plugin's bus
func Dispatch(ctx context.Context, p Plugin, click ClickEvent) error {
	return p.Events().Publish(ctx, NewClickEvent(click))
}

// Equalizer lets holders define equality when they are not comparable values
type Equalizer interface {
	Equal(other InventoryHolder) bool
}

// SameHolder compares two holders by Equal when available, otherwise by ==.
// Holders whose dynamic type is not comparable are never equal.
func SameHolder(a, b InventoryHolder) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(Equalizer); ok {
		return eq.Equal(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// IsEmptyStack reports whether a slot holds nothing usable (nil, air or zero amount)
func IsEmptyStack(s ItemStack) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return true
	}
	return s.IsEmpty()
}
