package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemkit/internal/action"
	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/host/memhost"
	"github.com/osse101/itemkit/internal/item"
)

func setupShop(t *testing.T, templates *item.Config) (*shop, *memhost.Plugin, *action.Registry) {
	t.Helper()
	plugin := memhost.NewPlugin("ShopPlugin")
	registry := action.NewRegistry()
	require.NoError(t, registry.Init(plugin))

	s, err := newShop(item.NewFactory(memhost.NewFactory(), registry), templates)
	require.NoError(t, err)
	return s, plugin, registry
}

func TestShop_Replay(t *testing.T) {
	s, plugin, registry := setupShop(t, nil)
	assert.Equal(t, 3, registry.Len(), "buy, close and wallet carry actions")

	require.NoError(t, s.replay(context.Background(), plugin))
	assert.Equal(t, 2, s.balance)
}

func TestShop_ButtonsAreScoped(t *testing.T) {
	s, plugin, _ := setupShop(t, nil)

	buy := s.menu.Inventory().Item(buySlot)
	s.player.Inventory().SetItem(5, buy)

	click, err := plugin.Click(context.Background(), s.player.Inventory(), 5)
	require.NoError(t, err)
	assert.False(t, click.IsCancelled())
	assert.Equal(t, 12, s.balance)

	click, err = plugin.Click(context.Background(), s.menu.Inventory(), buySlot)
	require.NoError(t, err)
	assert.True(t, click.IsCancelled())
	assert.Equal(t, 7, s.balance)
}

func TestShop_FillerFromTemplate(t *testing.T) {
	templates := &item.Config{Version: "1", Items: []item.Def{
		{Key: "filler", Material: "BLACK_STAINED_GLASS_PANE", Name: "-"},
	}}
	s, _, _ := setupShop(t, templates)

	assert.Equal(t, domain.MaterialBlackStainedGlass, s.menu.Inventory().Item(0).Type())
}
