package validator

// Validator wraps a pure function from a subject value to an ordered list of
// errors. An empty (or nil) result means the subject passed every check the
// validator performs. Both the error type and the subject type are
// caller-defined; the library never inspects errors beyond collecting them.
type Validator[E, S any] struct {
	run func(S) []E
}

// New wraps a caller-supplied function as a Validator. The function must be
// pure: same subject in, same errors out, no side effects.
func New[E, S any](run func(S) []E) Validator[E, S] {
	return Validator[E, S]{run: run}
}

// Apply evaluates the validator against a subject and returns the errors in
// evaluation order. The zero-value Validator applies as "no errors".
func (v Validator[E, S]) Apply(subject S) []E {
	if v.run == nil {
		return nil
	}
	return v.run(subject)
}

// Valid wraps a subject that passed validation. The only way to obtain a
// populated Valid is the success path of Validate, so holding one is a
// type-level assertion that the wrapped value was checked.
type Valid[S any] struct {
	subject S
}

// Subject returns the validated value.
func (v Valid[S]) Subject() S {
	return v.subject
}

// Validate runs a validator against a subject. On success it returns the
// subject wrapped in Valid and a nil error list; on failure it returns the
// zero Valid and the non-empty, ordered list of errors.
func Validate[E, S any](v Validator[E, S], subject S) (Valid[S], []E) {
	if errs := v.Apply(subject); len(errs) > 0 {
		var invalid Valid[S]
		return invalid, errs
	}
	return Valid[S]{subject: subject}, nil
}

// IfTrue reports err when the predicate over the whole subject returns true.
func IfTrue[E, S any](pred func(S) bool, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if pred(subject) {
			return []E{err}
		}
		return nil
	})
}

// IfFalse reports err when the predicate over the whole subject returns false.
func IfFalse[E, S any](pred func(S) bool, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if !pred(subject) {
			return []E{err}
		}
		return nil
	})
}

// IfInvalid is a legacy alias for IfTrue kept for callers migrating from the
// earlier API shape.
func IfInvalid[E, S any](pred func(S) bool, err E) Validator[E, S] {
	return IfTrue(pred, err)
}
