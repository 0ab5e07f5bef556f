package jsvalid

import (
	"reflect"
	"sort"
)

// Object returns a validator for keyed-collection subjects. It takes two
// modes, chosen structurally by the arguments:
//
//	Object(required, optional?, allowStrays?)  // heterogeneous
//	Object(keyValidator?, valueValidator?)     // homogeneous
//
// The heterogeneous mode is selected when either of the first two arguments
// is a map from key to validator-or-literal. Required keys must be present
// on the subject (a missing one reports missing_property_a) and their values
// are validated under the key's path. Optional keys are validated only when
// the subject's value for them is non-nil, which deliberately cannot tell a
// missing key from a key that is present with a nil value. Keys on the
// subject that appear in neither map each report unexpected_property_a,
// unless allowStrays is true.
//
// The homogeneous mode validates every key (as a string) and every value on
// the subject against the two validators; either may be omitted to accept
// anything. Both checks report under the key's path.
//
// Mode selection by shape means a homogeneous key or value validator that is
// itself a map of validators reads as heterogeneous configuration; this is a
// known wart of the surface, kept as a public contract.
//
// In both modes a subject that is not a keyed collection (sequences and nil
// included) fails with a single not_type_a violation and nothing else runs.
// All remaining checks are exhaustive and iterate keys in sorted order, so
// results are deterministic.
func Object(args ...any) Validator {
	first := argAt(args, 0)
	second := argAt(args, 1)
	if isValidatorMap(first) || isValidatorMap(second) {
		allowStrays, _ := argAt(args, 2).(bool)
		return heterogeneousObject(validatorMap(first), validatorMap(second), allowStrays)
	}

	keyV, valueV := Any(), Any()
	if first != nil {
		keyV = AsValidator(first)
	}
	if second != nil {
		valueV = AsValidator(second)
	}
	return homogeneousObject(keyV, valueV)
}

var isObject = TypeOf("object")

func heterogeneousObject(required, optional map[string]Validator, allowStrays bool) Validator {
	requiredKeys := sortedKeys(required)
	optionalKeys := sortedKeys(optional)

	return func(subject any) Violations {
		if found := isObject(subject); len(found) > 0 {
			return found
		}

		var all Violations
		for _, key := range requiredKeys {
			if !hasMember(subject, key) {
				all = append(all, NewViolation(CodeMissingPropertyA, key))
				continue
			}
			all = append(all, Property(key, required[key])(subject)...)
		}
		for _, key := range optionalKeys {
			if member(subject, key) == nil {
				continue
			}
			all = append(all, Property(key, optional[key])(subject)...)
		}
		if !allowStrays {
			keys, _ := objectKeys(subject)
			for _, key := range keys {
				if _, ok := required[key]; ok {
					continue
				}
				if _, ok := optional[key]; ok {
					continue
				}
				all = append(all, NewViolation(CodeUnexpectedPropertyA, key))
			}
		}
		return all
	}
}

func homogeneousObject(keyV, valueV Validator) Validator {
	return func(subject any) Violations {
		if found := isObject(subject); len(found) > 0 {
			return found
		}

		keys, _ := objectKeys(subject)
		var all Violations
		for _, key := range keys {
			all = append(all, keyV(key).scope(key)...)
			all = append(all, Property(key, valueV)(subject)...)
		}
		return all
	}
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// isValidatorMap reports whether v is usable as heterogeneous configuration:
// a map with string keys.
func isValidatorMap(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// validatorMap normalizes heterogeneous configuration, euphemizing each
// member once. A nil or non-map argument yields an empty map.
func validatorMap(v any) map[string]Validator {
	out := make(map[string]Validator)
	if m, ok := v.(map[string]any); ok {
		for key, val := range m {
			out[key] = AsValidator(val)
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return out
	}
	for _, kv := range rv.MapKeys() {
		out[kv.String()] = AsValidator(rv.MapIndex(kv).Interface())
	}
	return out
}

func sortedKeys(m map[string]Validator) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
