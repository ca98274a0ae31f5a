package rate_limit

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Authenticated requests are keyed by user ID, anonymous ones by client IP.
// Both go through the same bucket machinery, so the tests exercise both shapes.

func freshUserKey(t *testing.T, limiter *RateLimiter) string {
	t.Helper()
	key := uuid.New().String()
	require.NoError(t, limiter.ResetRateLimit(key))
	return key
}

func freshIPKey(t *testing.T, limiter *RateLimiter) string {
	t.Helper()
	key := fmt.Sprintf("203.0.113.%d", time.Now().UnixNano()%254+1)
	require.NoError(t, limiter.ResetRateLimit(key))
	return key
}

func Test_CheckRateLimit_FreshBucket_StartsWithFullBurst(t *testing.T) {
	limiter := NewRateLimiter()
	callerKey := freshUserKey(t, limiter)

	result, err := limiter.CheckRateLimit(callerKey, 5, 15)
	require.NoError(t, err)

	assert.True(t, result.Allowed)
	assert.Equal(t, 14, result.Remaining)
	assert.Zero(t, result.RetryAfterSec)
}

func Test_CheckRateLimit_RemainingDecreasesPerRequest(t *testing.T) {
	limiter := NewRateLimiter()
	callerKey := freshIPKey(t, limiter)
	burstLimit := 4

	for want := burstLimit - 1; want >= 0; want-- {
		result, err := limiter.CheckRateLimit(callerKey, 1, burstLimit)
		require.NoError(t, err)
		require.True(t, result.Allowed)
		assert.Equal(t, want, result.Remaining)
	}
}

func Test_CheckRateLimit_DrainedBucket_DeniesWithRetryAfter(t *testing.T) {
	limiter := NewRateLimiter()
	callerKey := freshUserKey(t, limiter)

	first, err := limiter.CheckRateLimit(callerKey, 1, 1)
	require.NoError(t, err)
	require.True(t, first.Allowed)

	denied, err := limiter.CheckRateLimit(callerKey, 1, 1)
	require.NoError(t, err)

	assert.False(t, denied.Allowed)
	assert.Zero(t, denied.Remaining)
	assert.GreaterOrEqual(t, denied.RetryAfterSec, 1)
	assert.True(t, denied.ResetTime.After(time.Now()))
}

func Test_CheckRateLimit_RefillRestoresCapacityGradually(t *testing.T) {
	limiter := NewRateLimiter()
	callerKey := freshUserKey(t, limiter)
	rpsLimit := 20 // one token every 50ms

	// Drain the two-token bucket
	for i := 0; i < 2; i++ {
		result, err := limiter.CheckRateLimit(callerKey, rpsLimit, 2)
		require.NoError(t, err)
		require.True(t, result.Allowed)
	}

	denied, err := limiter.CheckRateLimit(callerKey, rpsLimit, 2)
	require.NoError(t, err)
	require.False(t, denied.Allowed)

	// Enough time for a single token, not the whole bucket
	time.Sleep(80 * time.Millisecond)

	refilled, err := limiter.CheckRateLimit(callerKey, rpsLimit, 2)
	require.NoError(t, err)
	assert.True(t, refilled.Allowed)
}

func Test_CheckRateLimit_UserAndAnonymousCallers_DoNotShareBuckets(t *testing.T) {
	limiter := NewRateLimiter()
	userKey := freshUserKey(t, limiter)
	ipKey := freshIPKey(t, limiter)

	// Exhaust the anonymous caller
	result, err := limiter.CheckRateLimit(ipKey, 1, 1)
	require.NoError(t, err)
	require.True(t, result.Allowed)

	result, err = limiter.CheckRateLimit(ipKey, 1, 1)
	require.NoError(t, err)
	require.False(t, result.Allowed)

	// The authenticated caller still has a full bucket
	result, err = limiter.CheckRateLimit(userKey, 1, 1)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func Test_CheckRateLimit_NonPositiveLimits_FallBackToDefaults(t *testing.T) {
	limiter := NewRateLimiter()

	testCases := []struct {
		name         string
		rpsLimit     int
		burstLimit   int
		minRemaining int
	}{
		{name: "zero rps", rpsLimit: 0, burstLimit: 10, minRemaining: 9},
		{name: "zero burst derives from rps", rpsLimit: 10, burstLimit: 0, minRemaining: 49},
		{name: "both negative", rpsLimit: -3, burstLimit: -3, minRemaining: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			callerKey := freshUserKey(t, limiter)

			result, err := limiter.CheckRateLimit(callerKey, tc.rpsLimit, tc.burstLimit)
			require.NoError(t, err)

			assert.True(t, result.Allowed)
			assert.GreaterOrEqual(t, result.Remaining, tc.minRemaining)
		})
	}
}

func Test_ResetRateLimit_GivesCallerFullBucketBack(t *testing.T) {
	limiter := NewRateLimiter()
	callerKey := freshIPKey(t, limiter)
	burstLimit := 3

	for i := 0; i < burstLimit; i++ {
		result, err := limiter.CheckRateLimit(callerKey, 1, burstLimit)
		require.NoError(t, err)
		require.True(t, result.Allowed)
	}

	denied, err := limiter.CheckRateLimit(callerKey, 1, burstLimit)
	require.NoError(t, err)
	require.False(t, denied.Allowed)

	require.NoError(t, limiter.ResetRateLimit(callerKey))

	result, err := limiter.CheckRateLimit(callerKey, 1, burstLimit)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, burstLimit-1, result.Remaining)
}

func Test_CheckRateLimit_BurstOfRequests_AllowsExactlyBurstLimit(t *testing.T) {
	limiter := NewRateLimiter()
	callerKey := freshUserKey(t, limiter)
	burstLimit := 8

	allowed := 0
	// Low rps keeps refill within the loop negligible
	for i := 0; i < 30; i++ {
		result, err := limiter.CheckRateLimit(callerKey, 1, burstLimit)
		require.NoError(t, err)
		if result.Allowed {
			allowed++
		}
	}

	assert.Equal(t, burstLimit, allowed)
}
