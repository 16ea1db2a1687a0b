package realtime

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotravel/internal/chat/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func collect(buffer int) (Handler, <-chan *models.Message) {
	ch := make(chan *models.Message, buffer)
	return func(msg *models.Message) { ch <- msg }, ch
}

func receive(t *testing.T, ch <-chan *models.Message) *models.Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func assertSilent(t *testing.T, ch <-chan *models.Message) {
	t.Helper()
	select {
	case msg := <-ch:
		t.Fatalf("unexpected message %s in room %s", msg.ID, msg.RoomID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroker_DeliversOnlyToRoomSubscribers(t *testing.T) {
	broker := NewBroker(8, testLogger())
	defer broker.Close()

	handlerA, roomA := collect(8)
	handlerB, roomB := collect(8)
	defer broker.Subscribe("room-a", handlerA)()
	defer broker.Subscribe("room-b", handlerB)()

	require.NoError(t, broker.Publish(context.Background(), &models.Message{ID: "m1", RoomID: "room-a", Body: "Hello"}))

	got := receive(t, roomA)
	assert.Equal(t, "m1", got.ID)
	assert.Equal(t, "Hello", got.Body)
	assertSilent(t, roomB)
}

func TestBroker_PreservesOrderPerSubscriber(t *testing.T) {
	broker := NewBroker(16, testLogger())
	defer broker.Close()

	handler, ch := collect(16)
	defer broker.Subscribe("room-a", handler)()

	for i := 0; i < 10; i++ {
		require.NoError(t, broker.Publish(context.Background(), &models.Message{ID: fmt.Sprintf("m%d", i), RoomID: "room-a"}))
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, fmt.Sprintf("m%d", i), receive(t, ch).ID)
	}
}

func TestBroker_UnsubscribeIsIdempotent(t *testing.T) {
	broker := NewBroker(8, testLogger())
	defer broker.Close()

	handler, ch := collect(8)
	unsubscribe := broker.Subscribe("room-a", handler)
	assert.Equal(t, 1, broker.SubscriberCount("room-a"))

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, broker.SubscriberCount("room-a"))

	require.NoError(t, broker.Publish(context.Background(), &models.Message{ID: "m1", RoomID: "room-a"}))
	assertSilent(t, ch)
}

func TestBroker_SlowSubscriberDoesNotBlockOthers(t *testing.T) {
	broker := NewBroker(1, testLogger())
	defer broker.Close()

	release := make(chan struct{})
	var once sync.Once
	defer once.Do(func() { close(release) })

	broker.Subscribe("room-a", func(*models.Message) { <-release })
	fast, ch := collect(32)
	defer broker.Subscribe("room-a", fast)()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			_ = broker.Publish(context.Background(), &models.Message{ID: fmt.Sprintf("m%d", i), RoomID: "room-a"})
			// Let the fast subscriber drain its single-slot queue.
			time.Sleep(2 * time.Millisecond)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		case <-time.After(100 * time.Millisecond):
		}
		break
	}
	assert.Greater(t, received, 0)
}

func TestBroker_Close(t *testing.T) {
	broker := NewBroker(0, testLogger())

	handler, ch := collect(1)
	broker.Subscribe("room-a", handler)
	require.NoError(t, broker.Close())

	assert.ErrorIs(t, broker.Publish(context.Background(), &models.Message{ID: "m1", RoomID: "room-a"}), ErrClosed)
	assert.Equal(t, 0, broker.SubscriberCount("room-a"))
	assertSilent(t, ch)

	// Subscribing after close is a no-op.
	unsubscribe := broker.Subscribe("room-a", handler)
	unsubscribe()

	select {
	case <-broker.Done():
	default:
		t.Fatal("Done not closed after Close")
	}
	assert.NoError(t, broker.Close())
}
