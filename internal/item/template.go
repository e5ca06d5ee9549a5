package item

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/text"
	"github.com/osse101/itemkit/internal/validation"
)

//go:embed schemas/items.schema.json
var itemsSchema []byte

// Sentinel errors for the template loader
var (
	ErrDuplicateKey = errors.New("duplicate item key")

	ErrInvalidConfig = errors.New("invalid configuration")

	ErrTemplateNotFound = errors.New("item template not found")
)

// Config represents the JSON file of item templates
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Items []Def `json:"items" validate:"required,min=1,dive"`
}

// Def is a single declarative item
type Def struct {
	Key             string         `json:"key" validate:"required"`
	Material        string         `json:"material" validate:"required"`
	Amount          int            `json:"amount,omitempty" validate:"omitempty,min=1,max=99"`
	Name            string         `json:"name,omitempty"`
	NameColor       string         `json:"name_color,omitempty"`
	Lore            []string       `json:"lore,omitempty"`
	Enchants        map[string]int `json:"enchants,omitempty" validate:"omitempty,dive,min=1"`
	Flags           []string       `json:"flags,omitempty"`
	Unbreakable     bool           `json:"unbreakable,omitempty"`
	HideUnbreakable bool           `json:"hide_unbreakable,omitempty"`
	LeatherColor    string         `json:"leather_color,omitempty"`
}

// Loader handles loading and validating item templates
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte) (*Config, error)
	Validate(config *Config) error
}

type templateLoader struct {
	schemaValidator validation.SchemaValidator
	structValidator *validation.StructValidator
}

// NewLoader creates a new Loader instance backed by the embedded schema
func NewLoader() Loader {
	sv := validation.NewSchemaValidator()
	if err := sv.RegisterSchema(ItemsSchemaName, itemsSchema); err != nil {
		// the schema is compiled into the binary; failing here is a build defect
		panic(fmt.Sprintf("item schema: %v", err))
	}
	return &templateLoader{
		schemaValidator: sv,
		structValidator: validation.NewStructValidator(),
	}
}

// Load reads, schema-checks and parses an items JSON file
func (l *templateLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}
	return l.decode(data)
}

// Parse schema-checks and parses raw template JSON
func (l *templateLoader) Parse(data []byte) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, "<bytes>", err)
	}
	return l.decode(data)
}

func (l *templateLoader) decode(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks the templates for errors the schema cannot express:
// duplicate keys and names unknown to the domain
func (l *templateLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}
	if err := l.structValidator.ValidateStruct(config); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	keys := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]
		if def.Key == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, i)
		}
		if keys[def.Key] {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, def.Key)
		}
		keys[def.Key] = true

		if err := def.check(); err != nil {
			return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, def.Key, err)
		}
	}
	return nil
}

// Find returns the template with key
func (c *Config) Find(key string) (*Def, error) {
	for i := range c.Items {
		if c.Items[i].Key == key {
			return &c.Items[i], nil
		}
	}
	return nil, fmt.Errorf(ErrFmtTemplateNotFound, ErrTemplateNotFound, key)
}

// Keys lists template keys in file order
func (c *Config) Keys() []string {
	keys := make([]string, len(c.Items))
	for i := range c.Items {
		keys[i] = c.Items[i].Key
	}
	return keys
}

// resolved holds a Def's names converted to domain values
type resolved struct {
	material     domain.Material
	nameColor    text.Color
	enchants     []enchantLevel
	flags        []domain.ItemFlag
	leatherColor *domain.Color
}

type enchantLevel struct {
	enchantment domain.Enchantment
	level       int
}

func (d *Def) check() error {
	_, err := d.resolve()
	return err
}

func (d *Def) resolve() (*resolved, error) {
	material, err := domain.ParseMaterial(d.Material)
	if err != nil {
		return nil, err
	}
	r := &resolved{material: material}

	if d.NameColor != "" {
		if r.nameColor, err = text.ParseColor(d.NameColor); err != nil {
			return nil, err
		}
	}

	// sorted so enchantment order does not depend on map iteration
	names := make([]string, 0, len(d.Enchants))
	for name := range d.Enchants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e, err := domain.ParseEnchantment(name)
		if err != nil {
			return nil, err
		}
		r.enchants = append(r.enchants, enchantLevel{enchantment: e, level: d.Enchants[name]})
	}

	for _, name := range d.Flags {
		f, err := domain.ParseItemFlag(name)
		if err != nil {
			return nil, err
		}
		r.flags = append(r.flags, f)
	}

	if d.LeatherColor != "" {
		c, err := domain.ParseColor(d.LeatherColor)
		if err != nil {
			return nil, err
		}
		r.leatherColor = &c
	}
	return r, nil
}

// Apply starts a builder configured from the template. Resolution failures
// are recorded on the builder and surface from Build.
func (d *Def) Apply(f *Factory) *Builder {
	r, err := d.resolve()
	if err != nil {
		b := f.New(domain.MaterialAir)
		b.err = fmt.Errorf("item '%s': %w", d.Key, err)
		return b
	}

	amount := d.Amount
	if amount <= 0 {
		amount = 1
	}
	b := f.NewAmount(r.material, amount)

	switch {
	case d.Name != "":
		b.DisplayName(d.Name, r.nameColor)
	case !r.material.IsAir():
		b.DisplayName(r.material.DisplayName(), r.nameColor)
	}
	if d.Lore != nil {
		lines := make([]text.Component, len(d.Lore))
		for i, line := range d.Lore {
			lines[i] = text.Plain(line)
		}
		b.Lore(lines...)
	}
	for _, e := range r.enchants {
		b.Enchant(e.enchantment, e.level)
	}
	if len(r.flags) > 0 {
		b.Flags(r.flags...)
	}
	if d.HideUnbreakable {
		b.HiddenUnbreakable()
	} else if d.Unbreakable {
		b.Unbreakable()
	}
	if r.leatherColor != nil {
		b.LeatherColor(*r.leatherColor)
	}
	return b
}
