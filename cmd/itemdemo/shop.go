package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/host"
	"github.com/osse101/itemkit/internal/host/memhost"
	"github.com/osse101/itemkit/internal/item"
	"github.com/osse101/itemkit/internal/logger"
	"github.com/osse101/itemkit/internal/text"
)

const (
	buySlot    = 13
	closeSlot  = 22
	walletSlot = 0
	price      = 5
)

// shop is a one-row-of-goods menu with a wallet item in the player's inventory
type shop struct {
	menu    *memhost.Menu
	player  *memhost.Player
	balance int
}

func newShop(f *item.Factory, templates *item.Config) (*shop, error) {
	s := &shop{
		menu:    memhost.NewMenu("Shop", 3),
		player:  memhost.NewPlayer("steve"),
		balance: 12,
	}

	filler, err := s.filler(f, templates)
	if err != nil {
		return nil, err
	}
	for slot := 0; slot < s.menu.Inventory().Size(); slot++ {
		s.menu.Inventory().SetItem(slot, filler)
	}

	buy, err := f.New(domain.MaterialEmerald).
		DisplayName("Buy diamond", text.Green).
		Lore(text.Colored(fmt.Sprintf("Costs %d emeralds", price), text.Gray)).
		Enchant(domain.EnchantmentUnbreaking, 1).
		Flags(domain.FlagHideEnchants).
		InventoryHolder(s.menu).
		OnClick(s.buy).
		Build()
	if err != nil {
		return nil, err
	}
	s.menu.Inventory().SetItem(buySlot, buy)

	closeButton, err := f.New(domain.MaterialBarrier).
		DisplayNameComponent(text.Plain("Close").Color(text.Red).Decorate(text.Bold)).
		InventoryHolder(s.menu).
		OnClick(func(ctx context.Context, _ host.ClickEvent) {
			logger.FromContext(ctx).Info("Shop closed")
		}).
		Build()
	if err != nil {
		return nil, err
	}
	s.menu.Inventory().SetItem(closeSlot, closeButton)

	wallet, err := f.New(domain.MaterialLeatherChestplate).
		LeatherColor(domain.RGB(0x2e, 0x8b, 0x57)).
		DisplayName("Wallet", text.Gold).
		Lore().
		AddLoreLine(text.Plain("Click to show your balance")).
		HiddenUnbreakable().
		OnClick(s.showBalance).
		Build()
	if err != nil {
		return nil, err
	}
	s.player.Inventory().SetItem(walletSlot, wallet)

	return s, nil
}

// filler uses the "filler" template when one is loaded
func (s *shop) filler(f *item.Factory, templates *item.Config) (host.ItemStack, error) {
	if templates != nil {
		if def, err := templates.Find("filler"); err == nil {
			return def.Apply(f).Build()
		}
	}
	return f.New(domain.MaterialGrayStainedGlass).DisplayName(" ", text.Gray).Build()
}

func (s *shop) buy(ctx context.Context, click host.ClickEvent) {
	log := logger.FromContext(ctx)
	if s.balance < price {
		log.Info("Purchase declined", "balance", s.balance, "price", price)
		return
	}
	s.balance -= price
	log.Info("Purchase complete", "balance", s.balance, "slot", click.Slot())
}

func (s *shop) showBalance(ctx context.Context, _ host.ClickEvent) {
	logger.FromContext(ctx).Info("Wallet", "balance", s.balance)
}

// replay simulates a player session against the menu
func (s *shop) replay(ctx context.Context, plugin *memhost.Plugin) error {
	clicks := []struct {
		inv  host.Inventory
		slot int
	}{
		{s.player.Inventory(), walletSlot},
		{s.menu.Inventory(), buySlot},
		{s.menu.Inventory(), buySlot},
		{s.menu.Inventory(), buySlot},
		{s.menu.Inventory(), 0},
		{s.player.Inventory(), walletSlot},
		{s.menu.Inventory(), closeSlot},
	}

	for _, c := range clicks {
		click, err := plugin.Click(ctx, c.inv, c.slot)
		if err != nil {
			return err
		}
		slog.Debug("Click replayed", "slot", c.slot, "cancelled", click.IsCancelled())
	}
	return nil
}
