package validator

import "slices"

// IfNotIn reports err when the projected value is not one of the allowed
// values.
func IfNotIn[E, S any, F comparable](get func(S) F, allowed []F, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if !slices.Contains(allowed, get(subject)) {
			return []E{err}
		}
		return nil
	})
}
