// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Load reads and validates a document registry from the given file path.
func Load(path string) (*DocumentRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	if err := ValidateRaw(data); err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}

	var reg DocumentRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}

	if err := checkDuplicates(&reg); err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}

	return &reg, nil
}

// Save writes the registry back to disk, pretty-printed for review in diffs.
func Save(path string, reg *DocumentRegistry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	return nil
}

// ValidateRaw checks raw registry JSON against the embedded schema.
func ValidateRaw(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(registrySchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("registry validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Lookup returns the entry for key, or nil when the key is not registered.
func (r *DocumentRegistry) Lookup(key string) *Document {
	for i := range r.Documents {
		if r.Documents[i].Key == key {
			return &r.Documents[i]
		}
	}
	return nil
}

// Keys returns all registered document keys in registry order.
func (r *DocumentRegistry) Keys() []string {
	keys := make([]string, len(r.Documents))
	for i, d := range r.Documents {
		keys[i] = d.Key
	}
	return keys
}

// checkDuplicates rejects registries where two keys resolve to the same entry,
// or the same key appears twice. Exactly one on-disk document backs one key.
func checkDuplicates(reg *DocumentRegistry) error {
	seen := make(map[string]string, len(reg.Documents))
	for _, d := range reg.Documents {
		if prev, ok := seen[d.Key]; ok {
			return fmt.Errorf("duplicate key %q (paths %q and %q)", d.Key, prev, d.Path)
		}
		seen[d.Key] = d.Path
	}
	return nil
}
