package validator

import (
	"net/url"
	"regexp"
)

// IfInvalidEmail reports err when the projected string fails the email
// pattern. The check is syntactic only.
func IfInvalidEmail[E, S any](get func(S) string, err E) Validator[E, S] {
	return New(func(subject S) []E {
		if !IsValidEmail(get(subject)) {
			return []E{err}
		}
		return nil
	})
}

// IfInvalidEmailFunc is IfInvalidEmail with the error built from the
// offending string.
func IfInvalidEmailFunc[E, S any](get func(S) string, errFn func(string) E) Validator[E, S] {
	return New(func(subject S) []E {
		if value := get(subject); !IsValidEmail(value) {
			return []E{errFn(value)}
		}
		return nil
	})
}

// IfNoMatch reports err when the projected string contains no match for the
// pattern. The pattern is compiled case-insensitively and is not anchored;
// anchor it yourself for full-string matching. A malformed pattern panics at
// construction time, same as regexp.MustCompile.
func IfNoMatch[E, S any](get func(S) string, pattern string, err E) Validator[E, S] {
	re := regexp.MustCompile("(?i)" + pattern)
	return New(func(subject S) []E {
		if !re.MatchString(get(subject)) {
			return []E{err}
		}
		return nil
	})
}

// IfInvalidURL reports err when the projected string is not an absolute URL
// with both a scheme and a host.
func IfInvalidURL[E, S any](get func(S) string, err E) Validator[E, S] {
	return New(func(subject S) []E {
		u, parseErr := url.ParseRequestURI(get(subject))
		if parseErr != nil || u.Scheme == "" || u.Host == "" {
			return []E{err}
		}
		return nil
	})
}
