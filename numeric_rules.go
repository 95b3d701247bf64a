package validator

// Numeric is the constraint shared by the numeric helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IfNotInt reports err when the projected string does not parse, in full, as
// a base-10 signed integer.
func IfNotInt[E, S any](get func(S) string, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if !IsInt(get(subject)) {
			return []E{err}
		}
		return nil
	})
}

// IfNotIntFunc is IfNotInt with the error built from the offending string,
// for callers whose error values carry the rejected input.
func IfNotIntFunc[E, S any](get func(S) string, errFn func(string) E) Validator[E, S] {
	return New(func(subject S) []E {
		if value := get(subject); !IsInt(value) {
			return []E{errFn(value)}
		}
		return nil
	})
}

// IfNotFloat reports err when the projected string does not parse, in full,
// as a floating-point literal.
func IfNotFloat[E, S any](get func(S) string, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if !IsFloat(get(subject)) {
			return []E{err}
		}
		return nil
	})
}

// IfOutOfRange reports err when the projected number falls outside the
// inclusive [min, max] range.
func IfOutOfRange[E, S any, N Numeric](get func(S) N, min, max N, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if value := get(subject); value < min || value > max {
			return []E{err}
		}
		return nil
	})
}
