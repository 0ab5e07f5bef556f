package jsvalid

import (
	"fmt"
	"reflect"
	"strings"
)

// Code identifies the kind of constraint a subject violated. The set of
// codes is closed; renderers and callers can rely on never seeing a value
// outside this enumeration. A trailing letter in a code names the exhibit
// that the corresponding message template refers to.
type Code string

const (
	CodeNotTypeA                  Code = "not_type_a"
	CodeNotWunOf                  Code = "not_wun_of"
	CodeNotEqualToA               Code = "not_equal_to_a"
	CodeNotFinite                 Code = "not_finite"
	CodeOutOfBounds               Code = "out_of_bounds"
	CodeWrongPattern              Code = "wrong_pattern"
	CodeMissingPropertyA          Code = "missing_property_a"
	CodeUnexpected                Code = "unexpected"
	CodeUnexpectedClassificationA Code = "unexpected_classification_a"
	CodeUnexpectedPropertyA       Code = "unexpected_property_a"
)

// Violation describes a single failed constraint. Exhibits are the values
// relevant to the failure, in positional order (canonically named a, b, …).
// Path locates the failure inside the subject, ordered root to leaf, with
// string keys for collection members and int keys for sequence indexes. A
// nil Path means the subject itself failed. Violations are never mutated
// after construction.
type Violation struct {
	Code     Code
	Exhibits []any
	Path     []any
}

// NewViolation builds a Violation with the given exhibits in call order.
func NewViolation(code Code, exhibits ...any) Violation {
	return Violation{Code: code, Exhibits: exhibits}
}

// Exhibit returns the exhibit at position i, or nil when absent.
func (v Violation) Exhibit(i int) any {
	if i < 0 || i >= len(v.Exhibits) {
		return nil
	}
	return v.Exhibits[i]
}

// PathString renders the path as a dot-joined string, e.g. "items.2.id".
// An empty path renders as the empty string.
func (v Violation) PathString() string {
	if len(v.Path) == 0 {
		return ""
	}
	parts := make([]string, len(v.Path))
	for i, key := range v.Path {
		parts[i] = fmt.Sprintf("%v", key)
	}
	return strings.Join(parts, ".")
}

// scope returns a copy of v with key prepended to its path. The receiver's
// path slice is never written to.
func (v Violation) scope(key any) Violation {
	path := make([]any, 0, len(v.Path)+1)
	path = append(path, key)
	path = append(path, v.Path...)
	v.Path = path
	return v
}

// Violations is the result of running a Validator: one entry per failed
// constraint, empty (or nil) when the subject is valid.
type Violations []Violation

// Empty reports whether the subject was valid.
func (vs Violations) Empty() bool {
	return len(vs) == 0
}

// Codes returns the violation codes in result order.
func (vs Violations) Codes() []Code {
	codes := make([]Code, len(vs))
	for i, v := range vs {
		codes[i] = v.Code
	}
	return codes
}

// At returns the violations whose path equals the given keys exactly.
func (vs Violations) At(path ...any) Violations {
	var found Violations
	for _, v := range vs {
		if len(v.Path) != len(path) {
			continue
		}
		match := true
		for i, key := range path {
			if !reflect.DeepEqual(v.Path[i], key) {
				match = false
				break
			}
		}
		if match {
			found = append(found, v)
		}
	}
	return found
}

// Error makes Violations usable as a Go error for callers that bubble a
// failed validation up an error chain. Validators themselves never return
// the error interface.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, v := range vs {
		if p := v.PathString(); p != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", p, v.Code))
		} else {
			parts = append(parts, string(v.Code))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// scope applies Violation.scope to every entry, leaving vs untouched.
func (vs Violations) scope(key any) Violations {
	if len(vs) == 0 {
		return nil
	}
	scoped := make(Violations, len(vs))
	for i, v := range vs {
		scoped[i] = v.scope(key)
	}
	return scoped
}
