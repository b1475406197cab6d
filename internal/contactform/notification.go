package contactform

import (
	"sync"
	"time"
)

// DefaultNotificationDuration is how long a result stays visible.
const DefaultNotificationDuration = 3 * time.Second

// Notifier holds at most one visible SubmissionResult and dismisses it after
// a fixed duration. A newer result replaces the current one and restarts the
// timer; explicit dismissal cancels it.
type Notifier struct {
	mu        sync.Mutex
	clock     Clock
	duration  time.Duration
	current   *SubmissionResult
	timer     Timer
	seq       uint64
	onDismiss func(SubmissionResult)
}

// NewNotifier builds a notifier. onDismiss, when set, runs once per shown
// result, outside the notifier lock.
func NewNotifier(clock Clock, duration time.Duration, onDismiss func(SubmissionResult)) *Notifier {
	if clock == nil {
		clock = SystemClock{}
	}
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}
	return &Notifier{clock: clock, duration: duration, onDismiss: onDismiss}
}

// Show makes result the visible notification and returns it with ID and
// VisibleUntil filled in.
func (n *Notifier) Show(result SubmissionResult) SubmissionResult {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}

	n.seq++
	id := n.seq
	result.ID = id
	result.VisibleUntil = n.clock.Now().Add(n.duration)
	n.current = &result
	n.timer = n.clock.AfterFunc(n.duration, func() { n.expire(id) })

	return result
}

// Current returns the visible result, if any.
func (n *Notifier) Current() (SubmissionResult, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return SubmissionResult{}, false
	}
	return *n.current, true
}

// Dismiss hides the visible result. It returns false when nothing was shown.
func (n *Notifier) Dismiss() bool {
	n.mu.Lock()
	if n.current == nil {
		n.mu.Unlock()
		return false
	}
	dismissed := *n.current
	n.clearLocked()
	n.mu.Unlock()

	n.notify(dismissed)
	return true
}

func (n *Notifier) expire(id uint64) {
	n.mu.Lock()
	// a stale timer may still fire after Stop lost the race
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	dismissed := *n.current
	n.clearLocked()
	n.mu.Unlock()

	n.notify(dismissed)
}

func (n *Notifier) clearLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}

func (n *Notifier) notify(result SubmissionResult) {
	if n.onDismiss != nil {
		n.onDismiss(result)
	}
}
