package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/host"
	"github.com/osse101/itemkit/internal/host/memhost"
)

type sliceHolder struct {
	tags []string
}

func (sliceHolder) Inventory() host.Inventory { return nil }

type namedHolder struct {
	name string
}

func (namedHolder) Inventory() host.Inventory { return nil }

func (h namedHolder) Equal(other host.InventoryHolder) bool {
	o, ok := other.(namedHolder)
	return ok && o.name == h.name
}

func TestSameHolder(t *testing.T) {
	a := memhost.NewMenu("a", 1)
	b := memhost.NewMenu("a", 1)

	assert.True(t, host.SameHolder(a, a))
	assert.False(t, host.SameHolder(a, b), "distinct menus are different holders")
	assert.False(t, host.SameHolder(a, nil))
	assert.True(t, host.SameHolder(nil, nil))
	assert.False(t, host.SameHolder(sliceHolder{}, sliceHolder{}), "non-comparable holders never match")
	assert.True(t, host.SameHolder(namedHolder{"x"}, namedHolder{"x"}))
	assert.False(t, host.SameHolder(namedHolder{"x"}, namedHolder{"y"}))
}

func TestIsEmptyStack(t *testing.T) {
	var nilStack *memhost.Stack

	assert.True(t, host.IsEmptyStack(nil))
	assert.True(t, host.IsEmptyStack(nilStack))
	assert.True(t, host.IsEmptyStack(memhost.NewStack(domain.MaterialAir)))
	assert.False(t, host.IsEmptyStack(memhost.NewStack(domain.MaterialStone)))
}

func TestNewNamespacedKey(t *testing.T) {
	p := memhost.NewPluginWithNamespace("Shop", "MyShop")
	key := host.NewNamespacedKey(p, "Click_ID")

	assert.Equal(t, "myshop:click_id", key.String())
}

func TestClickFromEvent(t *testing.T) {
	click := memhost.NewClickOn(nil, 3, nil)
	evt := host.NewClickEvent(click)

	got, ok := host.ClickFromEvent(evt)
	assert.True(t, ok)
	assert.Equal(t, 3, got.Slot())
	assert.Equal(t, 3, evt.GetMetadataValue("slot"))
}
