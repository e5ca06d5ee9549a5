package validation

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against JSON schemas
type SchemaValidator interface {
	// ValidateFile validates the document at dataPath against the schema file at schemaPath
	ValidateFile(dataPath, schemaPath string) error
	// ValidateBytes validates data against a registered schema name or a schema file path
	ValidateBytes(data []byte, schema string) error
	// RegisterSchema compiles an in-memory schema under name, so later
	// validations against name never touch the filesystem
	RegisterSchema(name string, schema []byte) error
}

// ErrSchemaViolation wraps every document that fails its schema
var ErrSchemaViolation = errors.New("schema validation failed")

type schemaValidator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &schemaValidator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *schemaValidator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

func (v *schemaValidator) ValidateBytes(data []byte, schema string) error {
	compiled, err := v.schema(schema)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schema, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := compiled.Validate(doc); err != nil {
		return describe(err)
	}
	return nil
}

func (v *schemaValidator) RegisterSchema(name string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}
	compiled, err := v.compile(name, schema)
	if err != nil {
		return err
	}
	v.schemas[name] = compiled
	return nil
}

// schema returns a registered schema, or compiles and caches the schema file at name
func (v *schemaValidator) schema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if compiled, ok := v.schemas[name]; ok {
		return compiled, nil
	}

	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	compiled, err := v.compile(name, raw)
	if err != nil {
		return nil, err
	}
	v.schemas[name] = compiled
	return compiled, nil
}

func (v *schemaValidator) compile(name string, raw []byte) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled, nil
}

// describe flattens a jsonschema error tree into one line per failing keyword,
// e.g. "/items/0/amount: maximum"
func describe(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	var lines []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			lines = append(lines, "  - "+location(e)+": "+keyword(e))
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)

	return fmt.Errorf("%w:\n%s", ErrSchemaViolation, strings.Join(lines, "\n"))
}

func location(e *jsonschema.ValidationError) string {
	if len(e.InstanceLocation) == 0 {
		return "(root)"
	}
	return "/" + strings.Join(e.InstanceLocation, "/")
}

func keyword(e *jsonschema.ValidationError) string {
	if e.ErrorKind == nil {
		return "invalid"
	}
	if path := e.ErrorKind.KeywordPath(); len(path) > 0 {
		return strings.Join(path, ".") + " validation failed"
	}
	return "invalid"
}
