package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync/atomic"

	"github.com/osse101/itemkit/internal/item"
)

// Templates holds the loaded item templates and can swap them at runtime
type Templates struct {
	loader item.Loader
	path   string
	cfg    atomic.Pointer[item.Config]
}

// LoadTemplates reads and validates the templates at path. A missing file is
// not an error: the plugin simply has no declarative items.
func LoadTemplates(path string) (*Templates, error) {
	t := &Templates{loader: item.NewLoader(), path: path}
	if err := t.Reload(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn(LogMsgTemplatesSkipped, "path", path)
			return t, nil
		}
		return nil, err
	}
	return t, nil
}

// Reload re-reads the templates file. On failure the previous templates stay active.
func (t *Templates) Reload() error {
	cfg, err := t.loader.Load(t.path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLoadTemplatesFailed, err)
	}
	if err := t.loader.Validate(cfg); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgValidateTemplatesFailed, err)
	}

	t.cfg.Store(cfg)
	slog.Info(LogMsgTemplatesReloaded, "path", t.path, "version", cfg.Version, "items", len(cfg.Items))
	return nil
}

// Templates returns the active templates, or nil when none are loaded
func (t *Templates) Templates() *item.Config {
	return t.cfg.Load()
}
