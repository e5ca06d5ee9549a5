// Package action keeps the side table that links an identifier stamped into an
// item's persistent data to the callback run when that item is clicked.
package action

import (
	"context"

	"github.com/osse101/itemkit/internal/host"
)

// Callback runs when a registered item is clicked
type Callback func(ctx context.Context, click host.ClickEvent)

// RegisteredAction is a stored callback with its optional inventory scope.
// A nil Holder means the callback fires in any inventory.
type RegisteredAction struct {
	Callback Callback
	Holder   host.InventoryHolder
}

// Scoped reports whether the action only fires inside its holder's inventory
func (a RegisteredAction) Scoped() bool {
	return a.Holder != nil
}

// Descriptor is an item under construction that can carry a click action
type Descriptor interface {
	// ItemMeta returns the descriptor's working metadata; the identifier is written into it
	ItemMeta() host.ItemMeta
	ClickInventoryHolder() host.InventoryHolder
}
