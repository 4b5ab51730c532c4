package storage

import (
	"encoding/json"
	"fmt"
)

// ExtensionState is a bag of arbitrary named attributes persisted alongside
// an entity. Values are kept as raw JSON so callers can store any shape
// without the storage layer knowing about it.
type ExtensionState map[string]json.RawMessage

// Set stores v under key after marshalling it to JSON.
func (e *ExtensionState) Set(k string, v any) error {
	if *e == nil {
		*e = ExtensionState{}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal extension %q: %w", k, err)
	}

	(*e)[k] = json.RawMessage(b)
	return nil
}

// Get unmarshals the extension value at key into out.
// Returns (found=false, nil) if not present.
func (e ExtensionState) Get(key string, out any) (bool, error) {
	if e == nil {
		return false, nil
	}

	raw, ok := e[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("unmarshal extension %q: %w", key, err)
	}
	return true, nil
}

// Has reports whether key is present without unmarshalling it.
func (e ExtensionState) Has(key string) bool {
	if e == nil {
		return false
	}
	_, ok := e[key]
	return ok
}

// Delete removes the extension key, if present.
func (e ExtensionState) Delete(key string) {
	if e == nil {
		return
	}
	delete(e, key)
}
