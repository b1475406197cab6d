package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-site/internal/events"
)

// ErrQueueFull is returned when the worker cannot accept another event.
var ErrQueueFull = errors.New("notification queue full")

// ErrStopped is returned by Enqueue after Stop.
var ErrStopped = errors.New("notification worker stopped")

// Deliverer performs the actual notification for one event.
type Deliverer interface {
	Deliver(ctx context.Context, event events.Event) error
}

// NotificationWorker delivers events off the request path.
type NotificationWorker struct {
	deliverer Deliverer
	logger    *zap.Logger
	timeout   time.Duration

	mu      sync.RWMutex
	queue   chan events.Event
	stopped bool
	wg      sync.WaitGroup
}

// NewNotificationWorker builds a worker with a bounded queue.
func NewNotificationWorker(deliverer Deliverer, queueSize int, logger *zap.Logger) *NotificationWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationWorker{
		deliverer: deliverer,
		logger:    logger,
		timeout:   30 * time.Second,
		queue:     make(chan events.Event, queueSize),
	}
}

// Enqueue hands an event to the worker without blocking.
func (w *NotificationWorker) Enqueue(_ context.Context, event events.Event) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return ErrStopped
	}
	select {
	case w.queue <- event:
		return nil
	default:
		w.logger.Warn("notification dropped", zap.String("event_id", event.ID))
		return ErrQueueFull
	}
}

// Start runs the delivery loop until ctx ends or Stop drains the queue.
func (w *NotificationWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.queue:
				if !ok {
					return
				}
				w.process(ctx, event)
			}
		}
	}()
}

// Stop closes the queue and waits for queued events to be delivered.
func (w *NotificationWorker) Stop() {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		close(w.queue)
	}
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *NotificationWorker) process(ctx context.Context, event events.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout)
	defer cancel()

	if err := w.deliverer.Deliver(ctx, event); err != nil {
		w.logger.Error("notification delivery failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return
	}
	w.logger.Debug("notification delivered", zap.String("event_id", event.ID))
}

// StartNotificationWorker subscribes the worker to contact events and starts it.
func StartNotificationWorker(ctx context.Context, dispatcher events.Dispatcher, deliverer Deliverer, queueSize int, logger *zap.Logger) *NotificationWorker {
	w := NewNotificationWorker(deliverer, queueSize, logger)
	dispatcher.Subscribe(events.EventContactMessageReceived, w.Enqueue)
	w.Start(ctx)
	return w
}
