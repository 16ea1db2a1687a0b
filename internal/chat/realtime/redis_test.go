package realtime

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotravel/internal/chat/models"
)

func setupRelay(t *testing.T, client *redis.Client) *RedisRelay {
	t.Helper()
	relay, err := NewRedisRelay(context.Background(), client, NewBroker(8, testLogger()), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { relay.Close() })
	return relay
}

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRoomChannel(t *testing.T) {
	assert.Equal(t, "chat:room:abc", RoomChannel("abc"))
}

func TestRedisRelay_FansOutAcrossInstances(t *testing.T) {
	client := newTestClient(t)

	first := setupRelay(t, client)
	second := setupRelay(t, client)

	handler, ch := collect(4)
	defer second.Subscribe("room-a", handler)()
	otherHandler, other := collect(4)
	defer second.Subscribe("room-b", otherHandler)()

	require.NoError(t, first.Publish(context.Background(), &models.Message{
		ID:       "m1",
		RoomID:   "room-a",
		SenderID: "u1",
		Body:     "Hello",
	}))

	got := receive(t, ch)
	assert.Equal(t, "m1", got.ID)
	assert.Equal(t, "u1", got.SenderID)
	assert.Equal(t, "Hello", got.Body)
	assertSilent(t, other)
}

func TestRedisRelay_DropsMalformedPayload(t *testing.T) {
	client := newTestClient(t)

	relay := setupRelay(t, client)
	handler, ch := collect(4)
	defer relay.Subscribe("room-a", handler)()

	require.NoError(t, client.Publish(context.Background(), RoomChannel("room-a"), "{not json").Err())
	require.NoError(t, relay.Publish(context.Background(), &models.Message{ID: "m2", RoomID: "room-a"}))

	assert.Equal(t, "m2", receive(t, ch).ID)
}

func TestRedisRelay_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	_, err := NewRedisRelay(context.Background(), client, NewBroker(8, testLogger()), testLogger())
	assert.Error(t, err)
}
