package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterCapsRequestsPerWindow(t *testing.T) {
	limiter := NewLimiter(10, time.Minute)

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow("1.2.3.4"), "request %d should be allowed", i+1)
	}
	assert.False(t, limiter.Allow("1.2.3.4"), "11th request should be rejected")
	assert.False(t, limiter.Allow("1.2.3.4"), "12th request should be rejected")
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(2, time.Minute)

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))

	assert.True(t, limiter.Allow("b"), "a different address has its own window")
}

func TestLimiterResetsAfterWindowElapses(t *testing.T) {
	limiter := NewLimiter(2, time.Minute)

	now := time.Now()
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))

	// Window elapsed: counter resets to 1.
	limiter.now = func() time.Time { return now.Add(61 * time.Second) }
	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
}
