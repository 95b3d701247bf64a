package validator

import (
	"regexp"
	"strconv"
)

// Email regex - syntactic check only, no DNS or mailbox verification.
// Local part allows the usual special characters; the domain is one or more
// dot-separated labels of 1-63 characters, alphanumeric at both ends, with
// internal hyphens allowed. No TLD requirement, so "foo@bar" is valid.
var emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// IsBlank reports whether a string is empty or consists entirely of
// whitespace (space, tab, newline, carriage return).
func IsBlank(value string) bool {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}

// IsInt reports whether the entire string parses as a base-10 signed integer.
// Partial parses are rejected: "1.0", " 1" and "" are all false.
func IsInt(value string) bool {
	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}

// IsFloat reports whether the entire string parses as a floating-point
// literal.
func IsFloat(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// IsValidEmail reports whether a string fully matches the email pattern.
func IsValidEmail(value string) bool {
	return emailRegex.MatchString(value)
}
