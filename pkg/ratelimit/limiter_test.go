package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithinCapacity(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("client-a", 5, 0), "request %d should pass", i)
	}
	assert.False(t, l.Allow("client-a", 5, 0))
}

func TestKeysIsolated(t *testing.T) {
	l := New()
	assert.True(t, l.Allow("a", 1, 0))
	assert.False(t, l.Allow("a", 1, 0))
	assert.True(t, l.Allow("b", 1, 0))
}
