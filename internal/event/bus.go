// Package event provides an asynchronous topic bus backed by a fixed worker pool.
package event

import (
	"log/slog"
	"sync"

	"knowledge-base/internal/logger"
	"knowledge-base/internal/metrics"
)

// Topic names a stream of events.
type Topic string

const (
	// TopicArticleMail carries domain.MailMessage values for subscriber mail.
	TopicArticleMail Topic = "knowledge_base.mail"
	// TopicPushNotification carries domain.PushPayload values.
	TopicPushNotification Topic = "push_notifications"
)

const (
	DefaultWorkerCount = 4
	DefaultChannelSize = 1024
)

// Handler processes one event payload.
type Handler func(payload any)

// Event is what travels through the bus channel.
type Event struct {
	Topic   Topic
	Payload any
}

// Bus delivers published events to subscribed handlers on background workers.
// Publish never blocks; events are dropped when the buffer is full.
type Bus struct {
	mu        sync.RWMutex
	handlers  map[Topic][]Handler
	eventChan chan Event
	closed    bool
	wg        sync.WaitGroup
}

// NewBus creates a bus and starts its workers. Non-positive arguments use the defaults.
func NewBus(workers, bufferSize int) *Bus {
	if workers <= 0 {
		workers = DefaultWorkerCount
	}
	if bufferSize <= 0 {
		bufferSize = DefaultChannelSize
	}

	b := &Bus{
		handlers:  make(map[Topic][]Handler),
		eventChan: make(chan Event, bufferSize),
	}
	for i := 0; i < workers; i++ {
		b.wg.Add(1)
		go b.worker(i + 1)
	}
	return b
}

func (b *Bus) worker(id int) {
	defer b.wg.Done()
	logger.Debug("Event bus worker started", slog.Int("worker", id))

	for ev := range b.eventChan {
		b.mu.RLock()
		handlers := append([]Handler(nil), b.handlers[ev.Topic]...)
		b.mu.RUnlock()

		for _, h := range handlers {
			b.dispatch(id, ev, h)
		}
	}
	logger.Debug("Event bus worker stopped", slog.Int("worker", id))
}

func (b *Bus) dispatch(worker int, ev Event, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Event handler panicked",
				slog.Int("worker", worker),
				slog.String("topic", string(ev.Topic)),
				slog.Any("panic", r))
			metrics.EventsPublished.WithLabelValues(string(ev.Topic), "panic").Inc()
		}
	}()
	h(ev.Payload)
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish queues an event for delivery.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		logger.Warn("Event bus closed, dropping event", slog.String("topic", string(topic)))
		metrics.EventsPublished.WithLabelValues(string(topic), "dropped").Inc()
		return
	}

	select {
	case b.eventChan <- Event{Topic: topic, Payload: payload}:
		metrics.EventsPublished.WithLabelValues(string(topic), "queued").Inc()
	default:
		logger.Warn("Event channel is full, dropping event", slog.String("topic", string(topic)))
		metrics.EventsPublished.WithLabelValues(string(topic), "dropped").Inc()
	}
}

// Shutdown stops accepting events, drains the queue and waits for the workers.
func (b *Bus) Shutdown() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.eventChan)
	b.mu.Unlock()

	b.wg.Wait()
	logger.Info("Event bus stopped")
}
