package jsvalid

import "reflect"

// Array returns a validator for sequence-shaped subjects. It takes two
// forms, chosen by the shape of the first argument:
//
//	Array(element?, length?)          // homogeneous: every element checked
//	Array(positions, length?, rest?)  // positional: one validator per index
//
// The positional form is selected when the first argument is itself a slice;
// its members, like every other argument, may be validators or bare literal
// values. Indexes beyond the positional list use the rest validator when one
// was given, and otherwise cycle the positional list modulo its length, so a
// two-element list validates even indexes with its first entry and odd
// indexes with its second. The homogeneous form is the positional form with
// an empty list and the element validator as rest.
//
// When no length validator is given, the positional form without a rest
// validator demands the exact positional length; every other configuration
// leaves the length unconstrained.
//
// A non-sequence subject fails with a single not_type_a violation and
// nothing else runs. Length violations are reported under the "length" path
// key. Element checks are exhaustive: every element is validated even when
// the length or an earlier element already failed.
func Array(args ...any) Validator {
	var positions []Validator
	var lengthV, rest Validator

	if len(args) > 0 && isSlice(args[0]) {
		positions = asValidators(anySlice(args[0]))
		if len(args) > 1 && args[1] != nil {
			lengthV = AsValidator(args[1])
		}
		if len(args) > 2 && args[2] != nil {
			rest = AsValidator(args[2])
		}
	} else {
		if len(args) > 0 && args[0] != nil {
			rest = AsValidator(args[0])
		}
		if len(args) > 1 && args[1] != nil {
			lengthV = AsValidator(args[1])
		}
	}
	if lengthV == nil {
		if len(positions) > 0 && rest == nil {
			lengthV = Literal(len(positions))
		} else {
			lengthV = Any()
		}
	}

	isArray := TypeOf("array")
	return func(subject any) Violations {
		if found := isArray(subject); len(found) > 0 {
			return found
		}

		n := seqLen(subject)
		all := lengthV(n).scope("length")
		for i := 0; i < n; i++ {
			v := rest
			switch {
			case i < len(positions):
				v = positions[i]
			case rest == nil && len(positions) > 0:
				v = positions[i%len(positions)]
			}
			if v == nil {
				continue
			}
			all = append(all, Property(i, v)(subject)...)
		}
		return all
	}
}

func isSlice(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func anySlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
