// Package jsvalid provides a composable set of runtime structural validators
// for dynamic values such as decoded JSON: primitive checks (type, literal
// equality, bounds, pattern), combinators (all-of, one-of with optional
// discriminant dispatch, negation), and structural validators for sequences
// and keyed collections.
//
// A Validator is a pure function from a subject to a sequence of Violations;
// an empty result means the subject is valid. Failures are always data, never
// errors or panics: every validator is total over arbitrary subjects, and
// nested failures carry a path locating them inside the subject.
//
// # Architecture
//
// Each source file groups one layer of the engine: the violation model
// (`violation.go`), leaf validators (`primitives.go`), the combinator layer
// (`combinators.go`), property scoping (`property.go`), and the structural
// validators for sequences (`sequence.go`) and keyed collections
// (`collection.go`). The named factories in `factory.go` assemble these into
// ready-to-use validators. There is no hidden global state; validators and
// factories are stateless, deterministic, and goroutine-safe.
//
// Wherever a factory accepts a validator, a plain non-validator value may be
// passed instead and is treated as a Literal equality check. The conversion
// happens once, when the enclosing validator is constructed.
//
// # Usage
//
//	user := jsvalid.Object(
//	    map[string]any{
//	        "id":   jsvalid.UUID(),
//	        "name": jsvalid.String(),
//	        "age":  jsvalid.Integer(0, 150),
//	    },
//	    map[string]any{
//	        "note": jsvalid.String(),
//	    },
//	)
//	violations := user(subject)
//	if !violations.Empty() {
//	    // inspect violations[...].Code, .Exhibits, .Path
//	}
//
// # Error Handling
//
// Violations implements the error interface as a convenience for callers
// that want to bubble a failed validation up an error chain, but validators
// themselves never return Go errors and never panic, whatever the shape of
// the subject. Reading a member that does not exist yields nil, exactly as
// if the member were present with a nil value.
//
// # Performance Considerations
//
// Validation cost is linear in subject size times validator-graph size.
// Recursion depth follows subject nesting depth; cyclic subjects are not
// detected and will exhaust the stack.
package jsvalid
