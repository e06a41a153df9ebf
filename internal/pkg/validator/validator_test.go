package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane@example.com"))
	assert.True(t, IsValidEmail("jane.doe+tag@sub.example.co"))
	assert.False(t, IsValidEmail("jane@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidHourOfDay(t *testing.T) {
	assert.True(t, IsValidHourOfDay(0))
	assert.True(t, IsValidHourOfDay(23))
	assert.False(t, IsValidHourOfDay(-1))
	assert.False(t, IsValidHourOfDay(24))
}

func TestIsValidLatitudeLongitude(t *testing.T) {
	assert.True(t, IsValidLatitude(28.6))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.01))

	assert.True(t, IsValidLongitude(77.2))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(-180.5))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-16")
	assert.True(t, ok)

	_, ok = IsValidDate("16-03-2024")
	assert.False(t, ok)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190a1b2-c3d4-7e5f-8a6b-7c8d9e0f1234"))
	assert.False(t, IsValidUUID("0190a1b2-c3d4-4e5f-8a6b-7c8d9e0f1234")) // v4, not v7
	assert.False(t, IsValidUUID("nope"))
}
