package memhost

import (
	"strings"

	"github.com/osse101/itemkit/internal/event"
)

// Plugin is a plugin handle with its own event bus
type Plugin struct {
	name      string
	namespace string
	bus       *event.MemoryBus
}

// NewPlugin creates a plugin whose namespace is its lower-cased name
func NewPlugin(name string) *Plugin {
	return NewPluginWithNamespace(name, strings.ToLower(name))
}

// NewPluginWithNamespace creates a plugin with an explicit namespace
func NewPluginWithNamespace(name, namespace string) *Plugin {
	return &Plugin{name: name, namespace: namespace, bus: event.NewMemoryBus()}
}

func (p *Plugin) Name() string { return p.name }

func (p *Plugin) Namespace() string { return p.namespace }

func (p *Plugin) Events() event.Bus { return p.bus }

// Bus exposes the concrete bus for inspection
func (p *Plugin) Bus() *event.MemoryBus { return p.bus }
