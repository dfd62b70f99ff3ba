// Package config holds the key/value core shared by the config stores.
package config

import (
	"strconv"
	"strings"
	"sync"
)

// Values is a concurrency-safe map of dot-notation keys to decoded
// config values. Typed getters accept the Go types TOML decodes to, plus
// quoted scalars from hand-edited files ("300", "true").
type Values struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewValues returns an empty value set.
func NewValues() *Values {
	return &Values{data: make(map[string]any)}
}

// Get retrieves a value by key.
func (v *Values) Get(key string) (any, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.data[key]
	return val, ok
}

// GetString returns the value if it is a string, else "".
func (v *Values) GetString(key string) string {
	val, _ := v.Get(key)
	s, _ := val.(string)
	return s
}

// GetInt returns an integer value. Floats are truncated.
func (v *Values) GetInt(key string) int {
	val, _ := v.Get(key)
	switch n := val.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}

// GetFloat returns a floating point value. Integers are widened.
func (v *Values) GetFloat(key string) float64 {
	val, _ := v.Get(key)
	switch n := val.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// GetBool returns a boolean value.
func (v *Values) GetBool(key string) bool {
	val, _ := v.Get(key)
	switch b := val.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	}
	return false
}

// Set stores a value.
func (v *Values) Set(key string, value any) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data[key] = value
	return nil
}

// Delete removes a key. Missing keys are not an error.
func (v *Values) Delete(key string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.data, key)
	return nil
}

// Has reports whether key is set.
func (v *Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Snapshot returns a copy of all values.
func (v *Values) Snapshot() map[string]any {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make(map[string]any, len(v.data))
	for k, val := range v.data {
		out[k] = val
	}
	return out
}

// Replace swaps in a new value set.
func (v *Values) Replace(data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data = data
}
