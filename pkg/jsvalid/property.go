package jsvalid

// Property returns a validator that runs v (validator-or-literal) against
// one member of the subject and prefixes the member's key onto every
// resulting violation path. Sequence members are read by int index,
// collection members by string key; a missing member reads as nil rather
// than failing, so Property composes safely with subjects of any shape.
//
// Property is the sole mechanism by which nested failures gain location
// information; the sequence and collection validators are built on it.
func Property(key any, v any) Validator {
	inner := AsValidator(v)
	return func(subject any) Violations {
		return inner(member(subject, key)).scope(key)
	}
}
