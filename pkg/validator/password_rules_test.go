package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/validator"
)

func TestDefaultPasswordPolicy(t *testing.T) {
	t.Parallel()
	policy := validator.DefaultPasswordPolicy()

	assert.Equal(t, 8, policy.MinLength)
	assert.Equal(t, "@$!%*?&", policy.Symbols)
	assert.True(t, policy.RequireUpper)
	assert.True(t, policy.RequireLower)
	assert.True(t, policy.RequireDigit)
	assert.True(t, policy.RequireSymbol)
	assert.True(t, policy.RestrictCharset)
}

func TestPasswordComplexity(t *testing.T) {
	t.Parallel()
	policy := validator.DefaultPasswordPolicy()

	t.Run("accepted passwords", func(t *testing.T) {
		for _, pw := range []string{"Abc123!@", "StrongP@ss123", "aB3$efgh", "Zz9&Zz9&Zz9&"} {
			assert.NoError(t, validator.Apply(validator.PasswordComplexity("password", pw, policy)), pw)
		}
	})

	t.Run("rejected passwords", func(t *testing.T) {
		rejected := map[string]string{
			"abc123":    "too short and no upper or symbol",
			"Abc12!@":   "seven characters",
			"abc123!@":  "no uppercase",
			"ABC123!@":  "no lowercase",
			"Abcdef!@":  "no digit",
			"Abc12345":  "no symbol",
			"Abc123!#":  "# is outside the symbol set",
			"Abc 123!@": "whitespace is outside the charset",
			"Äbc123!@":  "non-ASCII letter",
		}
		for pw, why := range rejected {
			err := validator.Apply(validator.PasswordComplexity("password", pw, policy))
			require.Error(t, err, why)
			assert.ErrorIs(t, err, validator.ErrPatternMismatch, why)
		}
	})

	t.Run("unrestricted charset allows other symbols", func(t *testing.T) {
		loose := policy
		loose.RestrictCharset = false
		loose.RequireSymbol = false
		assert.NoError(t, validator.Apply(validator.PasswordComplexity("password", "Abc 123 #", loose)))
	})
}
