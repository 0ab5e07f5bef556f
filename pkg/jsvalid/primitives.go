package jsvalid

import (
	"math"
	"reflect"
	"regexp"
)

// TypeOf returns a validator that checks the subject's dynamic type tag:
// "null", "boolean", "number", "string", "array", "object", or "function".
// The tag "integer" is also accepted and behaves like SafeInteger.
func TypeOf(expected string) Validator {
	return func(subject any) Violations {
		ok := false
		if expected == "integer" {
			ok = isSafeInteger(subject)
		} else {
			ok = typeTag(subject) == expected
		}
		if ok {
			return nil
		}
		return Violations{NewViolation(CodeNotTypeA, expected)}
	}
}

// Literal returns a validator requiring the subject to be identical to the
// expected value. Numbers compare by value across numeric types, with two
// exceptions to strict float semantics: NaN equals NaN, and 0 equals -0.
// Everything else compares structurally.
func Literal(expected any) Validator {
	return func(subject any) Violations {
		if identical(subject, expected) {
			return nil
		}
		return Violations{NewViolation(CodeNotEqualToA, expected)}
	}
}

func identical(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		if !ok {
			return false
		}
		if math.IsNaN(af) && math.IsNaN(bf) {
			return true
		}
		return af == bf
	}
	if _, ok := toFloat(b); ok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// FiniteNumber returns a validator accepting finite numeric subjects only;
// infinities, NaN, and non-numbers fail.
func FiniteNumber() Validator {
	return func(subject any) Violations {
		if f, ok := toFloat(subject); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return nil
		}
		return Violations{NewViolation(CodeNotFinite)}
	}
}

// Bounds returns a validator checking a numeric subject against optional
// bounds. A nil bound imposes no constraint on that side. Bounds are
// inclusive unless the corresponding exclusive flag is set (the first flag
// applies to min, the second to max). Non-numeric subjects fail.
func Bounds(min, max any, exclusive ...bool) Validator {
	exclusiveMin := len(exclusive) > 0 && exclusive[0]
	exclusiveMax := len(exclusive) > 1 && exclusive[1]
	minF, hasMin := toFloat(min)
	maxF, hasMax := toFloat(max)

	return func(subject any) Violations {
		f, ok := toFloat(subject)
		if !ok {
			return Violations{NewViolation(CodeOutOfBounds)}
		}
		if hasMin && (f < minF || (exclusiveMin && f == minF)) {
			return Violations{NewViolation(CodeOutOfBounds)}
		}
		if hasMax && (f > maxF || (exclusiveMax && f == maxF)) {
			return Violations{NewViolation(CodeOutOfBounds)}
		}
		return nil
	}
}

// SafeInteger returns a validator accepting integers that are exactly
// representable within the safe range of a float64 (±(2^53 − 1)). Whole
// floats such as 3.0 pass; 2^53 and beyond do not.
func SafeInteger() Validator {
	return func(subject any) Violations {
		if isSafeInteger(subject) {
			return nil
		}
		return Violations{NewViolation(CodeNotTypeA, "integer")}
	}
}

// Pattern returns a validator requiring a string subject to contain a match
// of the regular expression. Anchor the expression to demand a full match.
// Non-string subjects fail.
func Pattern(re *regexp.Regexp) Validator {
	return func(subject any) Violations {
		if s, ok := subject.(string); ok && re != nil && re.MatchString(s) {
			return nil
		}
		return Violations{NewViolation(CodeWrongPattern)}
	}
}
