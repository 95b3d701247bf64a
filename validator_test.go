package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validator"
)

type profile struct {
	Name  string
	Email string
	Age   string
}

func TestNew(t *testing.T) {
	t.Run("wraps a function returning errors", func(t *testing.T) {
		v := validator.New(func(s string) []string {
			return []string{"always wrong: " + s}
		})

		assert.Equal(t, []string{"always wrong: x"}, v.Apply("x"))
	})

	t.Run("wraps a function returning no errors", func(t *testing.T) {
		v := validator.New(func(s string) []string { return nil })

		assert.Empty(t, v.Apply("anything"))
	})

	t.Run("is pure across repeated applications", func(t *testing.T) {
		v := validator.New(func(s string) []string {
			if s == "" {
				return []string{"empty"}
			}
			return nil
		})

		assert.Equal(t, v.Apply(""), v.Apply(""))
		assert.Equal(t, v.Apply("ok"), v.Apply("ok"))
	})
}

func TestValidatorZeroValue(t *testing.T) {
	t.Run("zero validator applies as no errors", func(t *testing.T) {
		var v validator.Validator[string, int]

		assert.Empty(t, v.Apply(42))
	})
}

func TestValidate(t *testing.T) {
	nameRequired := validator.IfBlank(func(p profile) string { return p.Name }, "name required")

	t.Run("wraps the subject on success", func(t *testing.T) {
		subject := profile{Name: "Sam", Email: "sam@x.com", Age: "27"}

		valid, errs := validator.Validate(nameRequired, subject)

		require.Empty(t, errs)
		assert.Equal(t, subject, valid.Subject())
	})

	t.Run("returns ordered errors on failure", func(t *testing.T) {
		valid, errs := validator.Validate(nameRequired, profile{})

		assert.Equal(t, []string{"name required"}, errs)
		assert.Zero(t, valid.Subject())
	})

	t.Run("does not mutate the subject", func(t *testing.T) {
		subject := profile{Name: "Sam", Email: "sam@x.com", Age: "27"}
		before := subject

		_, _ = validator.Validate(nameRequired, subject)

		assert.Equal(t, before, subject)
	})
}

func TestIfTrue(t *testing.T) {
	t.Run("reports error when predicate holds", func(t *testing.T) {
		v := validator.IfTrue(func(n int) bool { return n < 0 }, "must not be negative")

		assert.Equal(t, []string{"must not be negative"}, v.Apply(-1))
	})

	t.Run("passes when predicate does not hold", func(t *testing.T) {
		v := validator.IfTrue(func(n int) bool { return n < 0 }, "must not be negative")

		assert.Empty(t, v.Apply(3))
	})
}

func TestIfFalse(t *testing.T) {
	t.Run("reports error when predicate fails", func(t *testing.T) {
		v := validator.IfFalse(func(n int) bool { return n > 0 }, "must be positive")

		assert.Equal(t, []string{"must be positive"}, v.Apply(0))
	})

	t.Run("passes when predicate holds", func(t *testing.T) {
		v := validator.IfFalse(func(n int) bool { return n > 0 }, "must be positive")

		assert.Empty(t, v.Apply(1))
	})
}

func TestIfInvalid(t *testing.T) {
	t.Run("behaves like IfTrue", func(t *testing.T) {
		v := validator.IfInvalid(func(s string) bool { return s == "bad" }, "rejected")

		assert.Equal(t, []string{"rejected"}, v.Apply("bad"))
		assert.Empty(t, v.Apply("good"))
	})
}
