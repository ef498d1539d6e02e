package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "todo-config.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// ValidationError reports the first schema violation in a config file.
type ValidationError struct {
	Key     string // dotted key path, empty for the document root
	Message string
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return "invalid config: " + e.Message
	}
	return fmt.Sprintf("invalid config: %s: %s", e.Key, e.Message)
}

// validate checks a decoded TOML document against the config schema.
func validate(raw map[string]any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	// Round-trip through JSON so TOML integers and datetimes become the
	// plain JSON values the validator expects.
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ValidationError{Message: err.Error()}
	}
	if leaf := firstLeaf(ve); leaf != nil {
		return &ValidationError{Key: pointerToKey(leaf.InstanceLocation), Message: leaf.Message}
	}
	return &ValidationError{Message: ve.Message}
}

// firstLeaf returns the first cause with no causes of its own.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return ve
	}
	for _, cause := range ve.Causes {
		if leaf := firstLeaf(cause); leaf != nil {
			return leaf
		}
	}
	return nil
}

// pointerToKey converts a JSON pointer like "/a/b" to "a.b".
func pointerToKey(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	return strings.ReplaceAll(ptr, "/", ".")
}
