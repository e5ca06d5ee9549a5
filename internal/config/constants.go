package config

const (
	// Configuration file paths
	ConfigPathItems = "configs/items.json"
)

// Action store kinds
const (
	StoreMap = "map"
	StoreLRU = "lru"
)

// Defaults
const (
	DefaultPluginName = "ItemKit"
	DefaultStoreSize  = 4096
	DefaultAdminPort  = 8081
)

// Error format strings
const (
	ErrFmtInvalidEnv = "invalid %s value: %w"
)
