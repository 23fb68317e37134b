package content

import (
	"encoding/json"
	"math"
)

func object(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case map[any]any:
		// yaml documents with non-string keys
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				continue
			}
			out[s] = val
		}
		return out, true
	}
	return nil, false
}

func list(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

func str(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func boolean(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// truthy mirrors how CMS payload flags are read by the rendering side:
// absent, false, zero and empty strings count as unset.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if n, ok := number(v); ok {
		return n != 0
	}
	return true
}

func stringField(in map[string]any, key string) string {
	s, _ := str(in[key])
	return s
}

func boolField(in map[string]any, key string) *bool {
	b, ok := boolean(in[key])
	if !ok {
		return nil
	}
	return &b
}

func firstString(in map[string]any, fallback string, keys ...string) string {
	for _, k := range keys {
		if s, ok := str(in[k]); ok {
			return s
		}
	}
	return fallback
}

// extras copies every key not in known, deep-cloning values so the caller
// owns the result.
func extras(in map[string]any, known map[string]struct{}) map[string]any {
	var out map[string]any
	for k, v := range in {
		if _, ok := known[k]; ok {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	}
	return v
}

func keySet(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// marshalOpen encodes known and then appends every extra key the known
// fields did not already claim.
func marshalOpen(known any, extra map[string]any) ([]byte, error) {
	b, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := merged[k]; ok {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		merged[k] = raw
	}
	return json.Marshal(merged)
}
