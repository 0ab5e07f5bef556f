package jsvalid

import (
	"math"
	"reflect"
	"sort"
)

// typeTag returns the dynamic type tag of a subject: "null", "boolean",
// "number", "string", "array", "object", or "function". Anything that is
// neither a scalar, a sequence, nor a func counts as "object".
func typeTag(subject any) string {
	switch subject.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	}
	if _, ok := toFloat(subject); ok {
		return "number"
	}

	rv := reflect.ValueOf(subject)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Func:
		return "function"
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return typeTag(rv.Elem().Interface())
	}
	return "object"
}

// toFloat converts any numeric subject to float64. The bool result is false
// for non-numeric subjects.
func toFloat(subject any) (float64, bool) {
	switch n := subject.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// maxSafeInteger is the largest integer exactly representable as a float64.
const maxSafeInteger = 1<<53 - 1

func isSafeInteger(subject any) bool {
	f, ok := toFloat(subject)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger
}

// member reads subject[key] without ever panicking. Missing members, index
// overruns, and subjects with no members at all read as nil, exactly like a
// member that is present with a nil value. Sequences and strings expose a
// synthetic "length" member so that validators can be scoped onto it.
func member(subject, key any) any {
	switch s := subject.(type) {
	case map[string]any:
		if k, ok := key.(string); ok {
			return s[k]
		}
		return nil
	case []any:
		if key == "length" {
			return len(s)
		}
		if i, ok := toIndex(key); ok && i >= 0 && i < len(s) {
			return s[i]
		}
		return nil
	case string:
		if key == "length" {
			return len(s)
		}
		return nil
	case nil:
		return nil
	}

	rv := reflect.ValueOf(subject)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if key == "length" {
			return rv.Len()
		}
		if i, ok := toIndex(key); ok && i >= 0 && i < rv.Len() {
			return rv.Index(i).Interface()
		}
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if kv.IsValid() && kv.Type().AssignableTo(rv.Type().Key()) {
			if found := rv.MapIndex(kv); found.IsValid() {
				return found.Interface()
			}
		}
	}
	return nil
}

// hasMember reports whether key is a genuine member of subject, even when
// its value is nil.
func hasMember(subject any, key string) bool {
	switch s := subject.(type) {
	case map[string]any:
		_, ok := s[key]
		return ok
	}

	rv := reflect.ValueOf(subject)
	if rv.Kind() != reflect.Map {
		return false
	}
	kv := reflect.ValueOf(key)
	if !kv.Type().AssignableTo(rv.Type().Key()) {
		return false
	}
	return rv.MapIndex(kv).IsValid()
}

// objectKeys returns the subject's member keys in sorted order, so that
// validators iterating a keyed collection stay deterministic. The bool
// result is false when the subject is not a keyed collection.
func objectKeys(subject any) ([]string, bool) {
	if m, ok := subject.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for key := range m {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return keys, true
	}

	rv := reflect.ValueOf(subject)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keys := make([]string, 0, rv.Len())
	for _, kv := range rv.MapKeys() {
		keys = append(keys, kv.String())
	}
	sort.Strings(keys)
	return keys, true
}

// seqLen returns the length of a sequence-shaped subject.
func seqLen(subject any) int {
	if s, ok := subject.([]any); ok {
		return len(s)
	}
	rv := reflect.ValueOf(subject)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	}
	return 0
}

func toIndex(key any) (int, bool) {
	switch i := key.(type) {
	case int:
		return i, true
	case int8:
		return int(i), true
	case int16:
		return int(i), true
	case int32:
		return int(i), true
	case int64:
		return int(i), true
	case uint:
		return int(i), true
	case uint8:
		return int(i), true
	case uint16:
		return int(i), true
	case uint32:
		return int(i), true
	}
	return 0, false
}
