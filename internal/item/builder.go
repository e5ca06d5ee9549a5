// Package item builds host item stacks through a chainable Builder and loads
// declarative item templates.
package item

import (
	"fmt"

	"github.com/osse101/itemkit/internal/action"
	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/host"
	"github.com/osse101/itemkit/internal/text"
)

// Registrar stores click actions for finished items
type Registrar interface {
	Register(d action.Descriptor, cb action.Callback) (string, error)
}

// Factory creates builders bound to a host and a click action registrar
type Factory struct {
	items    host.ItemFactory
	registry Registrar
}

// NewFactory creates a Factory. registry may be nil when no item needs a click action.
func NewFactory(items host.ItemFactory, registry Registrar) *Factory {
	return &Factory{items: items, registry: registry}
}

// New starts a builder for a single item of material
func (f *Factory) New(material domain.Material) *Builder {
	return NewBuilder(f.items.NewItemStack(material), f.registry)
}

// NewAmount starts a builder for a stack of amount items
func (f *Factory) NewAmount(material domain.Material, amount int) *Builder {
	b := f.New(material)
	b.stack.SetAmount(amount)
	return b
}

// Builder configures one item stack. Every setter returns the builder so calls
// can be chained; Build finishes the item.
//
// A precondition failure (e.g. AddLoreLine without lore) is remembered and
// returned by Build; setters called after it do nothing.
type Builder struct {
	stack    host.ItemStack
	meta     host.ItemMeta
	registry Registrar

	clickHolder host.InventoryHolder
	clickAction action.Callback

	err error
}

// NewBuilder wraps a host stack. The stack's metadata is copied into the
// builder and committed back by Build.
func NewBuilder(stack host.ItemStack, registry Registrar) *Builder {
	return &Builder{
		stack:    stack,
		meta:     stack.ItemMeta(),
		registry: registry,
	}
}

// editable reports whether meta setters may run, recording ErrNoItemMeta for
// materials without metadata
func (b *Builder) editable() bool {
	if b.err != nil {
		return false
	}
	if b.meta == nil {
		b.err = fmt.Errorf("%w: %s", domain.ErrNoItemMeta, b.stack.Type())
		return false
	}
	return true
}

// LeatherColor dyes leather armor. Other items are left untouched.
func (b *Builder) LeatherColor(c domain.Color) *Builder {
	if b.err != nil {
		return b
	}
	if colorable, ok := b.meta.(host.ColorableMeta); ok {
		colorable.SetColor(c)
	}
	return b
}

// DisplayName sets the display name from raw text and a color
func (b *Builder) DisplayName(name string, color text.Color) *Builder {
	return b.DisplayNameComponent(text.Colored(name, color))
}

// DisplayNameComponent sets a pre-styled display name
func (b *Builder) DisplayNameComponent(name text.Component) *Builder {
	if b.editable() {
		b.meta.SetDisplayName(name)
	}
	return b
}

// AddLoreLine appends one line to the existing lore. The lore must have been
// initialized (by Lore or by the host); otherwise Build fails with
// domain.ErrLoreNotInitialized.
func (b *Builder) AddLoreLine(line text.Component) *Builder {
	if !b.editable() {
		return b
	}
	lore := b.meta.Lore()
	if lore == nil {
		b.err = domain.ErrLoreNotInitialized
		return b
	}
	b.meta.SetLore(append(lore, line))
	return b
}

// Lore replaces the whole lore with lines. Calling it with no lines leaves an
// empty, initialized lore.
func (b *Builder) Lore(lines ...text.Component) *Builder {
	if b.editable() {
		lore := make([]text.Component, len(lines))
		copy(lore, lines)
		b.meta.SetLore(lore)
	}
	return b
}

// Enchant adds an enchantment at any level, ignoring vanilla level caps
func (b *Builder) Enchant(e domain.Enchantment, level int) *Builder {
	if b.editable() {
		b.meta.AddEnchant(e, level, true)
	}
	return b
}

// Flags adds item flags to the existing ones
func (b *Builder) Flags(flags ...domain.ItemFlag) *Builder {
	if b.editable() {
		b.meta.AddItemFlags(flags...)
	}
	return b
}

// Unbreakable makes the item unbreakable
func (b *Builder) Unbreakable() *Builder {
	if b.editable() {
		b.meta.SetUnbreakable(true)
	}
	return b
}

// HiddenUnbreakable makes the item unbreakable and hides that from the tooltip
func (b *Builder) HiddenUnbreakable() *Builder {
	if b.editable() {
		b.meta.SetUnbreakable(true)
		b.meta.AddItemFlags(domain.FlagHideUnbreakable)
	}
	return b
}

// InventoryHolder restricts the click action to inventories owned by holder
func (b *Builder) InventoryHolder(holder host.InventoryHolder) *Builder {
	b.clickHolder = holder
	return b
}

// OnClick sets the action run when the finished item is clicked
func (b *Builder) OnClick(cb action.Callback) *Builder {
	b.clickAction = cb
	return b
}

// Build commits the metadata onto the stack and returns it. When a click
// action was set it is registered first, stamping the identifier into the
// metadata. Build is terminal; do not reuse the builder afterwards.
func (b *Builder) Build() (host.ItemStack, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.clickAction != nil {
		if b.registry == nil {
			return nil, domain.ErrRegistryNotInitialized
		}
		if _, err := b.registry.Register(b, b.clickAction); err != nil {
			return nil, fmt.Errorf(ErrMsgRegisterActionFailed, err)
		}
	}

	if b.meta != nil {
		b.stack.SetItemMeta(b.meta)
	}
	return b.stack, nil
}

// MustBuild is Build for items whose configuration is known to be valid
func (b *Builder) MustBuild() host.ItemStack {
	stack, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stack
}

// Err returns the first precondition failure, if any
func (b *Builder) Err() error { return b.err }

// ClickInventoryHolder returns the scope set by InventoryHolder, or nil
func (b *Builder) ClickInventoryHolder() host.InventoryHolder { return b.clickHolder }

// ClickAction returns the callback set by OnClick, or nil
func (b *Builder) ClickAction() action.Callback { return b.clickAction }

// ItemStack returns the underlying stack
func (b *Builder) ItemStack() host.ItemStack { return b.stack }

// ItemMeta returns the builder's working metadata
func (b *Builder) ItemMeta() host.ItemMeta { return b.meta }
