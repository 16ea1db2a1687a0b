package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/models"
)

const (
	roomChannelPrefix  = "chat:room:"
	roomChannelPattern = roomChannelPrefix + "*"
)

// RoomChannel is the Redis channel carrying events for roomID.
func RoomChannel(roomID string) string {
	return roomChannelPrefix + roomID
}

// RedisRelay publishes through Redis so every instance sees every message.
// One pattern subscription per instance feeds the local broker, which owns
// the actual subscribers.
type RedisRelay struct {
	client *redis.Client
	local  *Broker
	pubsub *redis.PubSub
	log    *logrus.Logger
	wg     sync.WaitGroup
	once   sync.Once
}

// NewRedisRelay subscribes to all room channels and starts relaying into local.
func NewRedisRelay(ctx context.Context, client *redis.Client, local *Broker, log *logrus.Logger) (*RedisRelay, error) {
	pubsub := client.PSubscribe(ctx, roomChannelPattern)
	// Wait for the subscription confirmation so nothing published after
	// construction is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", roomChannelPattern, err)
	}

	r := &RedisRelay{
		client: client,
		local:  local,
		pubsub: pubsub,
		log:    log,
	}
	r.wg.Add(1)
	go r.relay()
	return r, nil
}

func (r *RedisRelay) relay() {
	defer r.wg.Done()
	for event := range r.pubsub.Channel() {
		var msg models.Message
		if err := json.Unmarshal([]byte(event.Payload), &msg); err != nil {
			r.log.WithError(err).WithField("channel", event.Channel).Warn("dropping malformed room event")
			continue
		}
		if msg.RoomID == "" {
			msg.RoomID = strings.TrimPrefix(event.Channel, roomChannelPrefix)
		}
		if err := r.local.Publish(context.Background(), &msg); err != nil {
			return
		}
	}
}

func (r *RedisRelay) Publish(ctx context.Context, msg *models.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode room event: %w", err)
	}
	if err := r.client.Publish(ctx, RoomChannel(msg.RoomID), payload).Err(); err != nil {
		return fmt.Errorf("publish room event: %w", err)
	}
	return nil
}

func (r *RedisRelay) Subscribe(roomID string, handler Handler) func() {
	return r.local.Subscribe(roomID, handler)
}

func (r *RedisRelay) Done() <-chan struct{} {
	return r.local.Done()
}

// Close ends the pattern subscription and the local broker. The Redis
// client itself belongs to the caller.
func (r *RedisRelay) Close() error {
	var err error
	r.once.Do(func() {
		err = r.pubsub.Close()
		r.wg.Wait()
		_ = r.local.Close()
	})
	return err
}
