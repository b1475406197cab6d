package contactform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierAutoDismiss(t *testing.T) {
	clock := newFakeClock()
	var dismissed []SubmissionResult
	n := NewNotifier(clock, 0, func(r SubmissionResult) { dismissed = append(dismissed, r) })

	shown := n.Show(newResult(OutcomeSuccess))
	assert.Equal(t, clock.Now().Add(DefaultNotificationDuration), shown.VisibleUntil)

	clock.Advance(2999 * time.Millisecond)
	_, visible := n.Current()
	require.True(t, visible)
	require.Empty(t, dismissed)

	clock.Advance(time.Millisecond)
	_, visible = n.Current()
	require.False(t, visible)
	require.Len(t, dismissed, 1)
	assert.Equal(t, shown.ID, dismissed[0].ID)
}

func TestNotifierExplicitDismissCancelsTimer(t *testing.T) {
	clock := newFakeClock()
	calls := 0
	n := NewNotifier(clock, 3*time.Second, func(SubmissionResult) { calls++ })

	n.Show(newResult(OutcomeFailure))
	clock.Advance(time.Second)

	require.True(t, n.Dismiss())
	assert.Equal(t, 1, calls)
	assert.Zero(t, clock.Pending())

	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, calls, "timer must not dismiss twice")
	assert.False(t, n.Dismiss())
}

func TestNotifierReplaceRestartsTimer(t *testing.T) {
	clock := newFakeClock()
	var dismissed []SubmissionResult
	n := NewNotifier(clock, 3*time.Second, func(r SubmissionResult) { dismissed = append(dismissed, r) })

	first := n.Show(newResult(OutcomeFailure))
	clock.Advance(2 * time.Second)
	second := n.Show(newResult(OutcomeSuccess))
	require.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(1500 * time.Millisecond)
	current, visible := n.Current()
	require.True(t, visible)
	assert.Equal(t, OutcomeSuccess, current.Outcome)
	assert.Empty(t, dismissed)

	clock.Advance(1500 * time.Millisecond)
	require.Len(t, dismissed, 1)
	assert.Equal(t, second.ID, dismissed[0].ID)
}

func TestNotifierStaleExpiryIgnored(t *testing.T) {
	clock := newFakeClock()
	calls := 0
	n := NewNotifier(clock, time.Second, func(SubmissionResult) { calls++ })

	first := n.Show(newResult(OutcomeFailure))
	n.Show(newResult(OutcomeSuccess))

	// simulate a timer that fired after Stop lost the race
	n.expire(first.ID)
	assert.Zero(t, calls)
	_, visible := n.Current()
	assert.True(t, visible)
}
