package validator

import "github.com/google/uuid"

// IfInvalidUUID reports err when the projected string is not a standard
// 36-character UUID. Length and hyphen positions are checked before parsing
// to reject most bad input cheaply.
func IfInvalidUUID[E, S any](get func(S) string, err E) Validator[E, S] {
	return New(func(subject S) []E {
		value := get(subject)
		if len(value) != 36 ||
			value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return []E{err}
		}
		if _, parseErr := uuid.Parse(value); parseErr != nil {
			return []E{err}
		}
		return nil
	})
}
