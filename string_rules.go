package validator

// IfBlank reports err when the projected string is empty or all whitespace.
func IfBlank[E, S any](get func(S) string, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if IsBlank(get(subject)) {
			return []E{err}
		}
		return nil
	})
}
