package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingReference(t *testing.T) {
	ref, err := GenerateBookingReference(BookingReferenceLength)
	require.NoError(t, err)
	assert.Len(t, ref, BookingReferenceLength)
	for _, r := range ref {
		ok := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		assert.True(t, ok, "unexpected character %q", r)
	}
}

func TestGenerateBookingReference_InvalidLength(t *testing.T) {
	_, err := GenerateBookingReference(0)
	assert.Error(t, err)

	_, err = GenerateBookingReference(-3)
	assert.Error(t, err)
}

func TestGenerateBookingReference_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref, err := GenerateBookingReference(BookingReferenceLength)
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
