// Package memhost is an in-memory game server host. It backs the tests and the
// demo binary; a real deployment gets these objects from the server.
package memhost

import (
	"sort"

	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/host"
	"github.com/osse101/itemkit/internal/text"
)

// DataContainer is a map-backed persistent data container
type DataContainer struct {
	values map[host.NamespacedKey]string
}

// NewDataContainer creates an empty container
func NewDataContainer() *DataContainer {
	return &DataContainer{values: make(map[host.NamespacedKey]string)}
}

func (d *DataContainer) GetString(key host.NamespacedKey) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d *DataContainer) SetString(key host.NamespacedKey, value string) {
	d.values[key] = value
}

func (d *DataContainer) Has(key host.NamespacedKey) bool {
	_, ok := d.values[key]
	return ok
}

func (d *DataContainer) Remove(key host.NamespacedKey) {
	delete(d.values, key)
}

func (d *DataContainer) Keys() []host.NamespacedKey {
	keys := make([]host.NamespacedKey, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func (d *DataContainer) clone() *DataContainer {
	c := NewDataContainer()
	for k, v := range d.values {
		c.values[k] = v
	}
	return c
}

// Meta is the metadata of an ordinary item
type Meta struct {
	displayName *text.Component
	lore        []text.Component
	enchants    map[domain.Enchantment]int
	flags       map[domain.ItemFlag]struct{}
	unbreakable bool
	data        *DataContainer
}

// NewMeta creates metadata with no display name and no lore
func NewMeta() *Meta {
	return &Meta{
		enchants: make(map[domain.Enchantment]int),
		flags:    make(map[domain.ItemFlag]struct{}),
		data:     NewDataContainer(),
	}
}

func (m *Meta) DisplayName() (text.Component, bool) {
	if m.displayName == nil {
		return text.Component{}, false
	}
	return *m.displayName, true
}

func (m *Meta) SetDisplayName(name text.Component) {
	m.displayName = &name
}

func (m *Meta) Lore() []text.Component {
	if m.lore == nil {
		return nil
	}
	out := make([]text.Component, len(m.lore))
	copy(out, m.lore)
	return out
}

// SetLore replaces the lore; nil removes it entirely
func (m *Meta) SetLore(lines []text.Component) {
	if lines == nil {
		m.lore = nil
		return
	}
	m.lore = make([]text.Component, len(lines))
	copy(m.lore, lines)
}

// AddEnchant stores the enchantment. Levels outside 1..max are rejected unless
// ignoreLevelRestriction is set.
func (m *Meta) AddEnchant(e domain.Enchantment, level int, ignoreLevelRestriction bool) bool {
	if !ignoreLevelRestriction {
		if limit := e.MaxLevel(); level < 1 || (limit > 0 && level > limit) {
			return false
		}
	}
	if m.enchants[e] == level {
		return false
	}
	m.enchants[e] = level
	return true
}

func (m *Meta) Enchants() map[domain.Enchantment]int {
	out := make(map[domain.Enchantment]int, len(m.enchants))
	for k, v := range m.enchants {
		out[k] = v
	}
	return out
}

func (m *Meta) AddItemFlags(flags ...domain.ItemFlag) {
	for _, f := range flags {
		m.flags[f] = struct{}{}
	}
}

func (m *Meta) HasItemFlag(flag domain.ItemFlag) bool {
	_, ok := m.flags[flag]
	return ok
}

func (m *Meta) ItemFlags() []domain.ItemFlag {
	out := make([]domain.ItemFlag, 0, len(m.flags))
	for f := range m.flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m *Meta) IsUnbreakable() bool { return m.unbreakable }

func (m *Meta) SetUnbreakable(unbreakable bool) { m.unbreakable = unbreakable }

func (m *Meta) PersistentData() host.PersistentDataContainer { return m.data }

func (m *Meta) Clone() host.ItemMeta {
	return m.copyMeta()
}

func (m *Meta) copyMeta() *Meta {
	c := &Meta{
		lore:        m.Lore(),
		enchants:    m.Enchants(),
		flags:       make(map[domain.ItemFlag]struct{}, len(m.flags)),
		unbreakable: m.unbreakable,
		data:        m.data.clone(),
	}
	if m.displayName != nil {
		name := *m.displayName
		c.displayName = &name
	}
	for f := range m.flags {
		c.flags[f] = struct{}{}
	}
	return c
}

// LeatherMeta is the colorable metadata of leather armor
type LeatherMeta struct {
	*Meta
	color domain.Color
}

// NewLeatherMeta creates leather metadata with the default tint
func NewLeatherMeta() *LeatherMeta {
	return &LeatherMeta{Meta: NewMeta(), color: domain.DefaultLeatherColor}
}

func (m *LeatherMeta) Color() domain.Color { return m.color }

func (m *LeatherMeta) SetColor(c domain.Color) { m.color = c }

func (m *LeatherMeta) Clone() host.ItemMeta {
	return &LeatherMeta{Meta: m.Meta.copyMeta(), color: m.color}
}

// metaFor returns the metadata variant the host attaches to a material
func metaFor(material domain.Material) host.ItemMeta {
	switch {
	case material.IsAir():
		return nil
	case material.IsLeatherArmor():
		return NewLeatherMeta()
	default:
		return NewMeta()
	}
}
