package memhost

import (
	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/host"
)

// Stack is an item stack. Metadata is copied on read and on write, so edits to
// a meta obtained from ItemMeta are invisible until committed with SetItemMeta.
type Stack struct {
	material domain.Material
	amount   int
	meta     host.ItemMeta
}

// NewStack creates a stack of one item
func NewStack(material domain.Material) *Stack {
	return &Stack{material: material, amount: 1, meta: metaFor(material)}
}

func (s *Stack) Type() domain.Material { return s.material }

func (s *Stack) Amount() int { return s.amount }

func (s *Stack) SetAmount(amount int) { s.amount = amount }

func (s *Stack) ItemMeta() host.ItemMeta {
	if s.meta == nil {
		return nil
	}
	return s.meta.Clone()
}

// SetItemMeta commits meta onto the stack. Air cannot carry metadata.
func (s *Stack) SetItemMeta(meta host.ItemMeta) bool {
	if s.material.IsAir() {
		return false
	}
	if meta == nil {
		s.meta = metaFor(s.material)
		return true
	}
	s.meta = meta.Clone()
	return true
}

func (s *Stack) IsEmpty() bool {
	return s.material.IsAir() || s.amount <= 0
}

// Factory creates in-memory stacks
type Factory struct{}

// NewFactory creates a Factory
func NewFactory() Factory { return Factory{} }

func (Factory) NewItemStack(material domain.Material) host.ItemStack {
	return NewStack(material)
}
