// Package realtime fans stored messages out to live listeners of a room.
// Delivery is at-most-once: a subscriber that is not connected, or whose
// queue is full, misses the event and reconciles by fetching history.
package realtime

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/models"
)

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("realtime: notifier closed")

const defaultBufferSize = 64

var (
	_ Notifier = (*Broker)(nil)
	_ Notifier = (*RedisRelay)(nil)
)

// Handler receives messages for one subscription. Calls for a single
// subscription never overlap.
type Handler func(msg *models.Message)

// Notifier is the room-scoped publish/subscribe channel.
type Notifier interface {
	Publish(ctx context.Context, msg *models.Message) error
	// Subscribe returns an idempotent unsubscribe function.
	Subscribe(roomID string, handler Handler) (unsubscribe func())
	// Done is closed once Close has ended every subscription.
	Done() <-chan struct{}
	Close() error
}

type subscriber struct {
	id      uint64
	roomID  string
	queue   chan *models.Message
	handler Handler
	done    chan struct{}
	once    sync.Once
}

func (s *subscriber) run() {
	for {
		select {
		case <-s.done:
			return
		case msg := <-s.queue:
			s.handler(msg)
		}
	}
}

func (s *subscriber) stop() {
	s.once.Do(func() { close(s.done) })
}

// Broker is the in-process Notifier. Every subscriber has its own bounded
// queue and goroutine, so Publish never waits on a slow listener.
type Broker struct {
	mu         sync.RWMutex
	rooms      map[string]map[uint64]*subscriber
	nextID     uint64
	bufferSize int
	closed     bool
	done       chan struct{}
	log        *logrus.Logger
}

func NewBroker(bufferSize int, log *logrus.Logger) *Broker {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Broker{
		rooms:      make(map[string]map[uint64]*subscriber),
		bufferSize: bufferSize,
		done:       make(chan struct{}),
		log:        log,
	}
}

// Publish hands msg to every current subscriber of msg.RoomID.
func (b *Broker) Publish(_ context.Context, msg *models.Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}

	for _, sub := range b.rooms[msg.RoomID] {
		cp := *msg
		select {
		case sub.queue <- &cp:
		default:
			b.log.WithFields(logrus.Fields{
				"room_id":    msg.RoomID,
				"message_id": msg.ID,
				"subscriber": sub.id,
			}).Warn("subscriber queue full, dropping message")
		}
	}
	return nil
}

func (b *Broker) Subscribe(roomID string, handler Handler) func() {
	sub := &subscriber{
		roomID:  roomID,
		queue:   make(chan *models.Message, b.bufferSize),
		handler: handler,
		done:    make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return func() {}
	}
	b.nextID++
	sub.id = b.nextID
	if b.rooms[roomID] == nil {
		b.rooms[roomID] = make(map[uint64]*subscriber)
	}
	b.rooms[roomID][sub.id] = sub
	b.mu.Unlock()

	go sub.run()

	b.log.WithFields(logrus.Fields{"room_id": roomID, "subscriber": sub.id}).Debug("subscribed")
	return func() { b.unsubscribe(sub) }
}

func (b *Broker) unsubscribe(sub *subscriber) {
	b.mu.Lock()
	if subs, ok := b.rooms[sub.roomID]; ok {
		delete(subs, sub.id)
		if len(subs) == 0 {
			delete(b.rooms, sub.roomID)
		}
	}
	b.mu.Unlock()
	sub.stop()
}

// SubscriberCount reports the active subscriptions for roomID.
func (b *Broker) SubscriberCount(roomID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.rooms[roomID])
}

func (b *Broker) Done() <-chan struct{} {
	return b.done
}

// Close stops every subscription. Later Publish calls fail with ErrClosed.
func (b *Broker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	rooms := b.rooms
	b.rooms = make(map[string]map[uint64]*subscriber)
	b.closed = true
	close(b.done)
	b.mu.Unlock()

	for _, subs := range rooms {
		for _, sub := range subs {
			sub.stop()
		}
	}
	return nil
}
