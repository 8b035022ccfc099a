package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUUIDIsValid(t *testing.T) {
	g := New()
	a, b := g.NewUUID(), g.NewUUID()

	assert.True(t, IsValid(a))
	assert.NotEqual(t, a, b)
}

func TestIsValid(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("p-hasan"))
	assert.False(t, IsValid("{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"))
	assert.True(t, IsValid("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
}
