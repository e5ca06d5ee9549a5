package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemkit/internal/action"
	"github.com/osse101/itemkit/internal/config"
	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/event"
	"github.com/osse101/itemkit/internal/host"
	"github.com/osse101/itemkit/internal/host/memhost"
	"github.com/osse101/itemkit/internal/item"
)

func testConfig() *config.Config {
	return &config.Config{
		PluginName:  "ShopPlugin",
		Store:       config.StoreMap,
		StoreSize:   config.DefaultStoreSize,
		LogLevel:    "debug",
		LogFormat:   "json",
		Environment: "production",
	}
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(testConfig(), &buf)

	out := buf.String()
	assert.Contains(t, out, LogMsgStarting)
	assert.Contains(t, out, `"plugin":"ShopPlugin"`)
	assert.Contains(t, out, LogMsgConfigWarning, "production map store should warn")
	assert.NotContains(t, out, `"namespace"`, "derived namespace is not repeated")

	buf.Reset()
	cfg := testConfig()
	cfg.Namespace = "market"
	SetupLogger(cfg, &buf)
	assert.Contains(t, buf.String(), `"namespace":"market"`)
}

func TestNewActionStore(t *testing.T) {
	cfg := testConfig()
	_, ok := NewActionStore(cfg).(*action.MapStore)
	assert.True(t, ok)

	cfg.Store = config.StoreLRU
	cfg.StoreSize = 2
	cfg.StoreTTL = time.Minute
	_, ok = NewActionStore(cfg).(*action.LRUStore)
	assert.True(t, ok)
}

func TestInitializeRegistry(t *testing.T) {
	plugin := memhost.NewPlugin("ShopPlugin")

	registry, err := InitializeRegistry(testConfig(), plugin)
	require.NoError(t, err)
	assert.True(t, registry.Initialized())
	// listener plus metrics collector
	assert.Equal(t, 2, plugin.Bus().SubscriberCount(event.InventoryClick))
	assert.Equal(t, 1, plugin.Bus().SubscriberCount(event.ActionRegistered))

	_, err = InitializeRegistry(testConfig(), nil)
	assert.ErrorIs(t, err, domain.ErrNilPlugin)
}

func TestLoadTemplates(t *testing.T) {
	t.Run("missing file is tolerated", func(t *testing.T) {
		templates, err := LoadTemplates(filepath.Join(t.TempDir(), "items.json"))
		require.NoError(t, err)
		assert.Nil(t, templates.Templates())
	})

	t.Run("invalid file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"1","items":[{"key":"a","material":"UNOBTAINIUM"}]}`), 0o600))

		_, err := LoadTemplates(path)
		assert.ErrorIs(t, err, item.ErrInvalidConfig)
	})

	t.Run("reload keeps previous on failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"1","items":[{"key":"a","material":"STONE"}]}`), 0o600))

		templates, err := LoadTemplates(path)
		require.NoError(t, err)
		require.NotNil(t, templates.Templates())

		require.NoError(t, os.WriteFile(path, []byte(`{"version":`), 0o600))
		assert.Error(t, templates.Reload())
		assert.Equal(t, []string{"a"}, templates.Templates().Keys())

		require.NoError(t, os.WriteFile(path, []byte(`{"version":"2","items":[{"key":"b","material":"DIRT"}]}`), 0o600))
		require.NoError(t, templates.Reload())
		assert.Equal(t, "2", templates.Templates().Version)
	})
}

func TestGracefulShutdown_NoServer(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestRegistryEndToEnd(t *testing.T) {
	plugin := memhost.NewPlugin("ShopPlugin")
	registry, err := InitializeRegistry(testConfig(), plugin)
	require.NoError(t, err)

	clicked := false
	stack := item.NewFactory(memhost.NewFactory(), registry).
		New(domain.MaterialEmerald).
		OnClick(func(context.Context, host.ClickEvent) { clicked = true }).
		MustBuild()

	player := memhost.NewPlayer("steve")
	player.Inventory().SetItem(0, stack)
	_, err = plugin.Click(context.Background(), player.Inventory(), 0)
	require.NoError(t, err)
	assert.True(t, clicked)
}
