package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomCode(t *testing.T) {
	code := GenerateRandomCode(RedemptionCodeRandomLength)
	assert.Len(t, code, RedemptionCodeRandomLength)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeCharset, r), "unexpected character %q", r)
	}
}

func TestGenerateRedemptionCode_Format(t *testing.T) {
	code := GenerateRedemptionCode()

	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, RedemptionCodePrefix, parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], RedemptionCodeRandomLength)
}

func TestGenerateRedemptionCode_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateRedemptionCode()
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
