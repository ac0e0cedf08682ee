package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePolicyNumber(t *testing.T) {
	now := time.Date(2026, time.October, 19, 8, 5, 9, 0, time.UTC)

	got := GeneratePolicyNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^HGN-20261019-080509-\d{4}$`), got)
}

func TestCardFingerprint(t *testing.T) {
	a, err := CardFingerprint("secret", "4111111111111")
	require.NoError(t, err)
	b, err := CardFingerprint("secret", "4111111111111")
	require.NoError(t, err)
	c, err := CardFingerprint("other", "4111111111111")
	require.NoError(t, err)
	unkeyed, err := CardFingerprint("", "4111111111111")
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, unkeyed)
}

func TestCardFingerprint_RejectsLongKey(t *testing.T) {
	_, err := CardFingerprint(string(make([]byte, 65)), "4111111111111")
	assert.Error(t, err)
}

func TestCardLast4(t *testing.T) {
	assert.Equal(t, "1111", CardLast4("4111111111111111"))
	assert.Equal(t, "567", CardLast4("567"))
}
