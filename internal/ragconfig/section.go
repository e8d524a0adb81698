package ragconfig

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Section is a read-only snapshot of one top-level object of the document.
// Later updates to the store are not visible through it.
type Section struct {
	name   string
	values map[string]any
}

// Name returns the section's top-level key, e.g. "milvus".
func (s Section) Name() string {
	return s.name
}

// Len returns the number of keys in the section.
func (s Section) Len() int {
	return len(s.values)
}

// Keys returns the section keys in sorted order.
func (s Section) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a deep copy of the section. Numbers are json.Number values.
func (s Section) Map() map[string]any {
	return copyMap(s.values)
}

// Get returns the raw value stored under key.
func (s Section) Get(key string) (any, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, &KeyNotFoundError{Path: s.name + "." + key, Segment: key}
	}
	return copyValue(v), nil
}

// String returns a string value. Other JSON types are a type mismatch.
func (s Section) String(key string) (string, error) {
	v, err := s.Get(key)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{Path: s.name + "." + key, Want: "string", Got: typeName(v)}
	}
	return str, nil
}

// Int returns an integral number. Fractional values are a type mismatch.
func (s Section) Int(key string) (int64, error) {
	v, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	n, ok := toInt(v)
	if !ok {
		return 0, &TypeMismatchError{Path: s.name + "." + key, Want: "integer", Got: typeName(v)}
	}
	return n, nil
}

// Float returns any number as float64.
func (s Section) Float(key string) (float64, error) {
	v, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, &TypeMismatchError{Path: s.name + "." + key, Want: "number", Got: typeName(v)}
	}
	return f, nil
}

// Display formats a value for humans: strings unquoted, numbers as written in
// the file, anything else as compact JSON.
func (s Section) Display(key string) (string, error) {
	v, err := s.Get(key)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	}
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// floatToInt accepts whole numbers inside the int64 range. float64(MaxInt64)
// rounds up to 2^63, hence >=.
func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
