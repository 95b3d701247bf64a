// Package validator provides a composable, generic validation algebra: a
// Validator wraps a pure function from a subject value (a form model, an API
// request, any struct) to an ordered list of caller-defined errors, and
// combinators assemble small field-level validators into whole-subject ones.
// An empty error list means the subject is valid.
//
// The package promotes declarative validation by letting you build leaf
// validators from a field accessor and an error value, then compose them with
// All, FirstError and Any. Both the error type and the subject type are type
// parameters, so errors can be plain strings, enum-tagged values, or the
// bundled FieldError convenience type.
//
// # Architecture
//
// Each source file groups a family of leaf constructors for a specific domain
// (`string_rules.go`, `numeric_rules.go`, `collection_rules.go`, etc.). Every
// constructor returns a Validator holding a closure over the accessor and the
// error; there is no hidden global state, therefore the package is completely
// stateless, allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Validator[E, S] – opaque wrapper around a pure func(S) []E
//   - Valid[S]        – marker wrapper obtainable only from a successful Validate
//   - FieldError      – optional ready-made field/message error pair
//   - Numeric         – generic constraint used by the numeric helpers
//
// # Usage
//
//	v := validator.All(
//	    validator.IfBlank(func(f SignupForm) string { return f.Name }, validator.Err("name", "is required")),
//	    validator.FirstError(
//	        validator.IfBlank(func(f SignupForm) string { return f.Email }, validator.Err("email", "is required")),
//	        validator.IfInvalidEmail(func(f SignupForm) string { return f.Email }, validator.Err("email", "is not a valid email")),
//	    ),
//	    validator.IfNotInt(func(f SignupForm) string { return f.Age }, validator.Err("age", "must be a whole number")),
//	)
//
//	valid, errs := validator.Validate(v, form)
//	if len(errs) > 0 {
//	    // render errs; the order matches the declaration order above
//	}
//	save(valid.Subject()) // only reachable with a validated form
//
// For the simple "bare error list" mode, call v.Apply(form) directly.
//
// # Evaluation semantics
//
// All runs every child and concatenates errors in declaration order; it never
// short-circuits. FirstError returns exactly the first failing child's errors,
// for dependent checks on one field. Any reports whether every child passes
// and stops at the first failure. PreMap reuses a validator defined over a
// field type inside a validator over a containing record type.
//
// # Error Handling
//
// The library raises no errors of its own: validators always return a
// (possibly empty) list, and a panic can only come from a caller-supplied
// accessor or predicate, which propagates unchanged. The one deliberate
// exception is IfNoMatch, which panics at construction time on a malformed
// pattern, matching regexp.MustCompile. FieldErrors implements the error
// interface and works with errors.As via AsFieldErrors and IsFieldErrors.
//
// # Performance Considerations
//
// Evaluation is a synchronous fold over closures; the only allocations are
// the error slices for failing validators. Patterns passed to IfNoMatch are
// compiled once at construction, so build validators once and reuse them.
// Long-running or I/O-bound checks do not belong here; run them outside and
// adapt the outcome into a validator with New where appropriate.
package validator
