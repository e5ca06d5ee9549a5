package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()

	schemaPath := filepath.Join(tmpDir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(personSchema), 0644))

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "type"},
		{name: "negative age", data: `{"name": "John", "age": -1}`, wantError: true, errorMsg: "minimum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "data.json")
			require.NoError(t, os.WriteFile(dataPath, []byte(tt.data), 0644))

			err := validator.ValidateFile(dataPath, schemaPath)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaViolation)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_RegisteredSchema(t *testing.T) {
	validator := NewSchemaValidator()
	require.NoError(t, validator.RegisterSchema("person.schema.json", []byte(personSchema)))
	// registering twice is a no-op
	require.NoError(t, validator.RegisterSchema("person.schema.json", []byte(personSchema)))

	assert.NoError(t, validator.ValidateBytes([]byte(`{"name": "A"}`), "person.schema.json"))
	assert.Error(t, validator.ValidateBytes([]byte(`{}`), "person.schema.json"))
	assert.Error(t, validator.ValidateBytes([]byte(`{not json`), "person.schema.json"))
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "does/not/exist.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

type sample struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"gte=1,lte=64"`
	Mode  string `json:"mode" validate:"oneof=map lru"`
}

func TestStructValidator(t *testing.T) {
	v := NewStructValidator()

	assert.NoError(t, v.ValidateStruct(sample{Name: "x", Count: 3, Mode: "lru"}))

	err := v.ValidateStruct(sample{Count: 100, Mode: "disk"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructInvalid)
	assert.Contains(t, err.Error(), "sample.name is required")
	assert.Contains(t, err.Error(), "sample.count must be at most 64")
	assert.Contains(t, err.Error(), "sample.mode must be one of [map lru]")
}
