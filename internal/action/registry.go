package action

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/event"
	"github.com/osse101/itemkit/internal/host"
	"github.com/osse101/itemkit/internal/logger"
	"github.com/osse101/itemkit/internal/metrics"
)

// Registry maps identifiers stamped on items to click actions.
//
// A Registry starts uninitialized. Init binds it to the plugin and subscribes
// its click listener; that transition happens once per registry. Register
// before Init fails with domain.ErrRegistryNotInitialized.
type Registry struct {
	mu      sync.RWMutex
	plugin  host.Plugin
	key     host.NamespacedKey
	keyName string
	store   Store
	newID   func() string
}

// Option configures a Registry
type Option func(*Registry)

// WithStore replaces the default unbounded MapStore
func WithStore(s Store) Option {
	return func(r *Registry) { r.store = s }
}

// WithKeyName changes the persistent data key (default "click_id")
func WithKeyName(name string) Option {
	return func(r *Registry) { r.keyName = name }
}

// WithIDGenerator replaces the UUIDv4 identifier source
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) { r.newID = fn }
}

// NewRegistry creates an uninitialized registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		keyName: DefaultKeyName,
		store:   NewMapStore(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init binds the registry to plugin and subscribes the click listener to the
// plugin's inventory click stream.
func (r *Registry) Init(plugin host.Plugin) error {
	if plugin == nil {
		return domain.ErrNilPlugin
	}

	r.mu.Lock()
	if r.plugin != nil {
		r.mu.Unlock()
		return domain.ErrAlreadyInitialized
	}
	r.plugin = plugin
	r.key = host.NewNamespacedKey(plugin, r.keyName)
	r.mu.Unlock()

	plugin.Events().Subscribe(event.InventoryClick, NewClickListener(r).Handle)

	logger.Info(LogMsgRegistryInitialized, "plugin", plugin.Name(), "key", r.key.String())
	return nil
}

// Initialized reports whether Init has been called
func (r *Registry) Initialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.plugin != nil
}

// Key returns the namespaced key identifiers are stored under
func (r *Registry) Key() (host.NamespacedKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.key, r.plugin != nil
}

// Register stamps a fresh identifier into the descriptor's metadata and stores
// the callback together with the descriptor's inventory scope.
func (r *Registry) Register(d Descriptor, cb Callback) (string, error) {
	id, registered, stored, plugin, err := r.stamp(d, cb)
	if err != nil {
		return "", err
	}

	metrics.ActionsStored.Set(float64(stored))
	logger.Debug(LogMsgActionRegistered, "action_id", id, "scoped", registered.Scoped())

	r.publish(plugin, event.NewActionRegisteredEvent(id, registered.Scoped()))
	return id, nil
}

// stamp does the locked part of Register. The lock is released even when the
// host's metadata or the store panics.
func (r *Registry) stamp(d Descriptor, cb Callback) (string, RegisteredAction, int, host.Plugin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.plugin == nil {
		return "", RegisteredAction{}, 0, nil, domain.ErrRegistryNotInitialized
	}
	if cb == nil {
		return "", RegisteredAction{}, 0, nil, fmt.Errorf(ErrFmtNilCallback, domain.ErrInvalidInput)
	}
	if isNil(d) {
		return "", RegisteredAction{}, 0, nil, fmt.Errorf(ErrFmtNilDescriptor, domain.ErrInvalidInput)
	}
	meta := d.ItemMeta()
	if isNil(meta) {
		return "", RegisteredAction{}, 0, nil, domain.ErrNoItemMeta
	}

	id := r.newID()
	meta.PersistentData().SetString(r.key, id)
	registered := RegisteredAction{Callback: cb, Holder: d.ClickInventoryHolder()}
	r.store.Put(id, registered)
	return id, registered, r.store.Len(), r.plugin, nil
}

// isNil reports whether v is nil or an interface holding a nil pointer
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Unregister removes an action. Items still carrying the identifier become inert.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	removed := r.store.Delete(id)
	stored := r.store.Len()
	plugin := r.plugin
	r.mu.Unlock()

	if !removed {
		return false
	}

	metrics.ActionsStored.Set(float64(stored))
	logger.Debug(LogMsgActionUnregistered, "action_id", id)
	r.publish(plugin, event.NewActionUnregisteredEvent(id))
	return true
}

// Lookup returns the action stored under id
func (r *Registry) Lookup(id string) (RegisteredAction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.Get(id)
}

// Len returns the number of stored actions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.Len()
}

// IDs returns the stored identifiers
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.Keys()
}

// IdentifierOf reads the click identifier stamped on stack
func (r *Registry) IdentifierOf(stack host.ItemStack) (string, bool) {
	key, ok := r.Key()
	if !ok || host.IsEmptyStack(stack) {
		return "", false
	}
	meta := stack.ItemMeta()
	if meta == nil {
		return "", false
	}
	id, ok := meta.PersistentData().GetString(key)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// HandleClick resolves the clicked item's action and runs it when the scope
// allows. Clicks on unregistered, unknown or out-of-scope items are ignored.
// It returns the outcome recorded in metrics.
func (r *Registry) HandleClick(ctx context.Context, click host.ClickEvent) string {
	outcome := r.handleClick(ctx, click)
	metrics.RecordClick(outcome)
	return outcome
}

func (r *Registry) handleClick(ctx context.Context, click host.ClickEvent) string {
	log := logger.FromContext(ctx)

	current := click.CurrentItem()
	if host.IsEmptyStack(current) {
		return metrics.OutcomeEmptySlot
	}

	id, ok := r.IdentifierOf(current)
	if !ok {
		return metrics.OutcomeNoIdentifier
	}

	// Identifiers can outlive their actions (process restart, eviction, Unregister).
	registered, ok := r.Lookup(id)
	if !ok || registered.Callback == nil {
		log.Debug(LogMsgClickIgnored, "action_id", id, "reason", metrics.OutcomeUnknownAction)
		return metrics.OutcomeUnknownAction
	}

	if !registered.Scoped() {
		r.invoke(ctx, id, registered.Callback, click)
		return metrics.OutcomeInvoked
	}

	inv := click.ClickedInventory()
	if inv == nil {
		log.Debug(LogMsgClickIgnored, "action_id", id, "reason", metrics.OutcomeNoInventory)
		return metrics.OutcomeNoInventory
	}
	if !host.SameHolder(inv.Holder(), registered.Holder) {
		log.Debug(LogMsgClickIgnored, "action_id", id, "reason", metrics.OutcomeHolderMismatch)
		return metrics.OutcomeHolderMismatch
	}

	click.SetCancelled(true)
	r.invoke(ctx, id, registered.Callback, click)
	return metrics.OutcomeInvokedScoped
}

// invoke runs cb without holding the registry lock, so callbacks may build and
// register further items. A panicking callback is logged and swallowed.
func (r *Registry) invoke(ctx context.Context, id string, cb Callback, click host.ClickEvent) {
	log := logger.FromContext(ctx)
	defer func() {
		if rec := recover(); rec != nil {
			metrics.CallbackPanics.Inc()
			log.Error(LogMsgCallbackPanicked, "action_id", id, "panic", rec)
		}
	}()

	log.Debug(LogMsgClickInvoked, "action_id", id, "slot", click.Slot())
	cb(ctx, click)
}

func (r *Registry) publish(plugin host.Plugin, evt event.Event) {
	if plugin == nil {
		return
	}
	if err := plugin.Events().Publish(context.Background(), evt); err != nil {
		logger.Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
