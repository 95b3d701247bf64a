package validator

// IfEmptySlice reports err when the projected slice has zero elements.
func IfEmptySlice[E, S, T any](get func(S) []T, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if len(get(subject)) == 0 {
			return []E{err}
		}
		return nil
	})
}

// IfEmptyMap reports err when the projected map has zero entries.
func IfEmptyMap[E, S any, K comparable, V any](get func(S) map[K]V, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if len(get(subject)) == 0 {
			return []E{err}
		}
		return nil
	})
}

// IfEmptySet reports err when the projected set has zero members.
func IfEmptySet[E, S any, T comparable](get func(S) map[T]struct{}, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if len(get(subject)) == 0 {
			return []E{err}
		}
		return nil
	})
}

// IfNil reports err when the projected pointer is nil.
func IfNil[E, S, F any](get func(S) *F, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if get(subject) == nil {
			return []E{err}
		}
		return nil
	})
}

// IfZero reports err when the projected comparable value is its zero value.
func IfZero[E, S any, F comparable](get func(S) F, err E) Validator[E, S] {
	return New(func(subject S) []E {
		var zero F
		if get(subject) == zero {
			return []E{err}
		}
		return nil
	})
}
