package jsvalid

import (
	"math"
	"strconv"
)

// AllOf returns the conjunction of the given validators (validator-or-literal
// arguments, normalized once). In short-circuit mode the first failing
// validator's violations are returned as-is and later validators never run.
// In exhaustive mode every validator runs and all violations are returned in
// validator order. Zero validators always pass.
func AllOf(validators []any, exhaustive bool) Validator {
	vs := asValidators(validators)
	return func(subject any) Violations {
		var all Violations
		for _, v := range vs {
			found := v(subject)
			if len(found) == 0 {
				continue
			}
			if !exhaustive {
				return found
			}
			all = append(all, found...)
		}
		return all
	}
}

// WunOf returns the disjunction of the given validators (validator-or-literal
// arguments): the subject passes as soon as one of them accepts it. When all
// of them fail, the result is a single not_wun_of violation followed by every
// attempt's violations in order, so the caller can see why each alternative
// was rejected.
func WunOf(validators ...any) Validator {
	vs := asValidators(validators)
	return func(subject any) Violations {
		attempts := make([]Violations, 0, len(vs))
		for _, v := range vs {
			found := v(subject)
			if len(found) == 0 {
				return nil
			}
			attempts = append(attempts, found)
		}

		all := Violations{NewViolation(CodeNotWunOf)}
		for _, found := range attempts {
			all = append(all, found...)
		}
		return all
	}
}

// WunOfByKey returns a discriminated disjunction: the classifier inspects the
// subject and names the single validator that applies. A classifier result is
// usable when it is a string, or a finite number taken in its shortest
// decimal string form. An unusable result — including a panicking classifier
// — or a key with no entry yields one unexpected_classification_a violation;
// no other validator is attempted, keeping diagnostics compact for
// tagged-union data.
func WunOfByKey(validatorsByKey map[string]any, classifier func(subject any) any) Validator {
	byKey := make(map[string]Validator, len(validatorsByKey))
	for key, v := range validatorsByKey {
		byKey[key] = AsValidator(v)
	}
	return func(subject any) Violations {
		result, key, usable := classify(classifier, subject)
		if usable {
			if v, ok := byKey[key]; ok {
				return v(subject)
			}
		}
		return Violations{NewViolation(CodeUnexpectedClassificationA, result)}
	}
}

// classify runs the classifier, swallowing any panic, and reduces its result
// to a map key when possible.
func classify(classifier func(subject any) any, subject any) (result any, key string, usable bool) {
	if classifier == nil {
		return nil, "", false
	}
	defer func() {
		if recover() != nil {
			result, key, usable = nil, "", false
		}
	}()

	result = classifier(subject)
	if s, ok := result.(string); ok {
		return result, s, true
	}
	if f, ok := toFloat(result); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return result, strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return result, "", false
}

// Not inverts a validator (or literal): it passes exactly when the wrapped
// validator fails. When the wrapped validator accepts the subject, the
// result is a single unexpected violation; the wrapped validator's own
// violations are never forwarded.
func Not(v any) Validator {
	inner := AsValidator(v)
	return func(subject any) Violations {
		if len(inner(subject)) > 0 {
			return nil
		}
		return Violations{NewViolation(CodeUnexpected)}
	}
}
