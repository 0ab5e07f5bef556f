package jsvalid

// Validator checks a subject and reports every constraint it found violated.
// An empty result means the subject is valid. A Validator must be pure:
// deterministic, free of side effects, and total over arbitrary subject
// shapes. All validators produced by this package satisfy that contract and
// are safe for concurrent use.
type Validator func(subject any) Violations

// AsValidator normalizes a validator-or-literal argument: a Validator (or a
// bare func with the same signature) passes through unchanged, anything else
// becomes a Literal equality check against that value. Factories apply this
// once, at construction time, wherever they accept a validator argument.
func AsValidator(v any) Validator {
	switch fn := v.(type) {
	case Validator:
		return fn
	case func(subject any) Violations:
		return fn
	}
	return Literal(v)
}

func asValidators(args []any) []Validator {
	validators := make([]Validator, len(args))
	for i, arg := range args {
		validators[i] = AsValidator(arg)
	}
	return validators
}

// Any returns a validator that accepts every subject.
func Any() Validator {
	return func(any) Violations {
		return nil
	}
}
