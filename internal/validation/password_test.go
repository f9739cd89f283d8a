package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("12345678"))
	assert.True(t, ValidPassword("a much longer passphrase"))
	assert.False(t, ValidPassword("1234567"))
	assert.False(t, ValidPassword(""))
}

func TestHasSpecialChar(t *testing.T) {
	assert.True(t, HasSpecialChar("str0ng-pass!"))
	assert.True(t, HasSpecialChar("under_score"))
	assert.False(t, HasSpecialChar("onlyletters"))
	assert.False(t, HasSpecialChar("letters and spaces 123"))
	assert.False(t, HasSpecialChar(""))
}
