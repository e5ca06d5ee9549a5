package memhost

import (
	"context"

	"github.com/osse101/itemkit/internal/host"
)

// Inventory is a fixed-size container of slots
type Inventory struct {
	holder host.InventoryHolder
	slots  []host.ItemStack
}

// NewInventory creates an inventory owned by holder
func NewInventory(holder host.InventoryHolder, size int) *Inventory {
	return &Inventory{holder: holder, slots: make([]host.ItemStack, size)}
}

func (inv *Inventory) Holder() host.InventoryHolder { return inv.holder }

func (inv *Inventory) Size() int { return len(inv.slots) }

// Item returns the stack in slot, nil for empty or out-of-range slots
func (inv *Inventory) Item(slot int) host.ItemStack {
	if slot < 0 || slot >= len(inv.slots) {
		return nil
	}
	return inv.slots[slot]
}

func (inv *Inventory) SetItem(slot int, item host.ItemStack) {
	if slot < 0 || slot >= len(inv.slots) {
		return
	}
	inv.slots[slot] = item
}

// Menu is a custom GUI holder, the usual scope for click actions
type Menu struct {
	Title string
	inv   *Inventory
}

// NewMenu creates a menu with rows*9 slots
func NewMenu(title string, rows int) *Menu {
	m := &Menu{Title: title}
	m.inv = NewInventory(m, rows*9)
	return m
}

func (m *Menu) Inventory() host.Inventory { return m.inv }

// Player holds the player's own inventory
type Player struct {
	Name string
	inv  *Inventory
}

// NewPlayer creates a player with a 36 slot inventory
func NewPlayer(name string) *Player {
	p := &Player{Name: name}
	p.inv = NewInventory(p, 36)
	return p
}

func (p *Player) Inventory() host.Inventory { return p.inv }

// ClickEvent is a single click
type ClickEvent struct {
	inventory host.Inventory
	slot      int
	current   host.ItemStack
	cancelled bool
}

// NewClick creates a click on slot of inv, reading the current item from the slot
func NewClick(inv host.Inventory, slot int) *ClickEvent {
	return &ClickEvent{inventory: inv, slot: slot, current: inv.Item(slot)}
}

// NewClickOn creates a click whose clicked inventory may be nil (outside the window)
func NewClickOn(inv host.Inventory, slot int, current host.ItemStack) *ClickEvent {
	return &ClickEvent{inventory: inv, slot: slot, current: current}
}

func (e *ClickEvent) CurrentItem() host.ItemStack { return e.current }

func (e *ClickEvent) ClickedInventory() host.Inventory { return e.inventory }

func (e *ClickEvent) Slot() int { return e.slot }

func (e *ClickEvent) IsCancelled() bool { return e.cancelled }

func (e *ClickEvent) SetCancelled(cancel bool) { e.cancelled = cancel }

// Click dispatches a click on slot of inv through the plugin's bus and returns it
func (p *Plugin) Click(ctx context.Context, inv host.Inventory, slot int) (*ClickEvent, error) {
	click := NewClick(inv, slot)
	return click, host.Dispatch(ctx, p, click)
}
