package jsvalid

import (
	"reflect"
	"regexp"

	"github.com/google/uuid"
)

// Boolean returns a validator accepting boolean subjects.
func Boolean() Validator {
	return TypeOf("boolean")
}

// Number returns a validator accepting finite numbers, optionally within
// bounds: Number(min) or Number(min, max). A nil bound leaves that side
// unconstrained.
func Number(bounds ...any) Validator {
	if len(bounds) == 0 {
		return FiniteNumber()
	}
	min := bounds[0]
	var max any
	if len(bounds) > 1 {
		max = bounds[1]
	}
	return AllOf([]any{FiniteNumber(), Bounds(min, max)}, false)
}

// Integer returns a validator accepting safe integers, optionally within
// bounds: Integer(min) or Integer(min, max).
func Integer(bounds ...any) Validator {
	if len(bounds) == 0 {
		return SafeInteger()
	}
	min := bounds[0]
	var max any
	if len(bounds) > 1 {
		max = bounds[1]
	}
	return AllOf([]any{SafeInteger(), Bounds(min, max)}, false)
}

// String returns a validator accepting string subjects. An optional
// constraint narrows it: a *regexp.Regexp requires a pattern match, while
// any other validator-or-literal checks the string's length (reported under
// the "length" path key), so String(3) demands exactly three bytes and
// String(jsvalid.Bounds(1, 80)) a length within bounds.
func String(constraint ...any) Validator {
	base := TypeOf("string")
	if len(constraint) == 0 || constraint[0] == nil {
		return base
	}
	if re, ok := constraint[0].(*regexp.Regexp); ok {
		return AllOf([]any{base, Pattern(re)}, false)
	}
	return AllOf([]any{base, Property("length", constraint[0])}, false)
}

// Function returns a validator accepting func subjects, optionally checking
// the parameter count against a validator-or-literal (reported under the
// "arity" path key).
func Function(arity ...any) Validator {
	base := TypeOf("function")
	if len(arity) == 0 || arity[0] == nil {
		return base
	}
	arityV := AsValidator(arity[0])
	checkArity := func(subject any) Violations {
		var n any
		if rt := reflect.TypeOf(subject); rt != nil && rt.Kind() == reflect.Func {
			n = rt.NumIn()
		}
		return arityV(n).scope("arity")
	}
	return AllOf([]any{base, Validator(checkArity)}, false)
}

// UUID returns a validator accepting strings in canonical UUID form.
// Malformed values fail with wrong_pattern.
func UUID() Validator {
	base := TypeOf("string")
	checkUUID := func(subject any) Violations {
		s, _ := subject.(string)
		// Fast rejection on length and hyphen positions before parsing.
		if len(s) == 36 && s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-' {
			if _, err := uuid.Parse(s); err == nil {
				return nil
			}
		}
		return Violations{NewViolation(CodeWrongPattern)}
	}
	return AllOf([]any{base, Validator(checkUUID)}, false)
}
