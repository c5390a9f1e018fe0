package trial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompute_NoStartDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	state := Compute(nil, now)

	assert.Equal(t, FreeTrialDays, state.DaysRemaining)
	assert.False(t, state.Expired)
}

func TestCompute_FreshStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now

	state := Compute(&start, now)

	assert.Equal(t, 30, state.DaysRemaining)
	assert.False(t, state.Expired)
}

func TestCompute_MidTrial(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -10)

	state := Compute(&start, now)

	assert.Equal(t, 20, state.DaysRemaining)
	assert.False(t, state.Expired)
}

func TestCompute_LastDay(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -29)

	state := Compute(&start, now)

	assert.Equal(t, 1, state.DaysRemaining)
	assert.False(t, state.Expired)
}

func TestCompute_ExpiresAtExactlyThirtyDays(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	start := now.Add(-30 * 24 * time.Hour)

	state := Compute(&start, now)

	assert.Equal(t, 0, state.DaysRemaining)
	assert.True(t, state.Expired)
}

func TestCompute_LongExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	start := now.AddDate(-1, 0, 0)

	state := Compute(&start, now)

	assert.Equal(t, 0, state.DaysRemaining)
	assert.True(t, state.Expired)
}

func TestCompute_FutureStartClampsToFull(t *testing.T) {
	// Clock skew can put the recorded start slightly ahead of now; treat it
	// as day zero rather than extending the window.
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(6 * time.Hour)

	state := Compute(&start, now)

	assert.Equal(t, 30, state.DaysRemaining)
	assert.False(t, state.Expired)
}

func TestCompute_PartialDayDoesNotCount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-23 * time.Hour)

	state := Compute(&start, now)

	assert.Equal(t, 30, state.DaysRemaining)
}

func TestCompute_MonotonicDecay(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	prev := FreeTrialDays + 1
	for day := 0; day <= 35; day++ {
		now := start.AddDate(0, 0, day)
		state := Compute(&start, now)

		assert.LessOrEqual(t, state.DaysRemaining, prev, "day %d", day)
		assert.GreaterOrEqual(t, state.DaysRemaining, 0, "day %d", day)
		assert.Equal(t, state.DaysRemaining <= 0, state.Expired, "day %d", day)
		prev = state.DaysRemaining
	}
}
