package validator

// All runs every validator against the same subject, in the given order, and
// concatenates their errors in that order. It never short-circuits: every
// validator runs regardless of earlier failures, which is the composition to
// use when all problems should be reported at once.
func All[E, S any](validators ...Validator[E, S]) Validator[E, S] {
	return New(func(subject S) []E {
		var errs []E
		for _, v := range validators {
			errs = append(errs, v.Apply(subject)...)
		}
		return errs
	})
}

// FirstError runs validators in order and returns exactly the errors of the
// first one that fails, or an empty list when all pass. Use it to chain
// dependent checks on one field, e.g. skip the email-format check when the
// field is already reported blank.
func FirstError[E, S any](validators ...Validator[E, S]) Validator[E, S] {
	return New(func(subject S) []E {
		for _, v := range validators {
			if errs := v.Apply(subject); len(errs) > 0 {
				return errs
			}
		}
		return nil
	})
}

// Any reports whether every validator passes for the subject. It
// short-circuits to false at the first failing validator and is vacuously
// true for zero validators.
func Any[E, S any](subject S, validators ...Validator[E, S]) bool {
	for _, v := range validators {
		if len(v.Apply(subject)) > 0 {
			return false
		}
	}
	return true
}

// PreMap adapts a validator over an inner type into one over an outer type by
// composing the projection in front of it, so field-level validators can be
// reused across containing record types.
func PreMap[E, Outer, Inner any](project func(Outer) Inner, v Validator[E, Inner]) Validator[E, Outer] {
	return New(func(subject Outer) []E {
		return v.Apply(project(subject))
	})
}
