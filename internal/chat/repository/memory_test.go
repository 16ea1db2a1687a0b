package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotravel/internal/chat/models"
	"gotravel/internal/common"
)

func TestMemoryStore_RoomPairIsUnique(t *testing.T) {
	store := NewMemoryStore()
	rooms := store.Rooms()
	ctx := context.Background()

	require.NoError(t, rooms.Create(ctx, &models.Room{ID: "r1", ParticipantLow: "u1", ParticipantHigh: "u2"}))

	err := rooms.Create(ctx, &models.Room{ID: "r2", ParticipantLow: "u1", ParticipantHigh: "u2"})
	assert.ErrorIs(t, err, common.ErrRoomCreateConflict)
	assert.Equal(t, 1, store.RoomCount())

	found, err := rooms.FindByPair(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "r1", found.ID)
	assert.False(t, found.CreatedAt.IsZero())

	_, err = rooms.FindByPair(ctx, "u2", "u3")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStore_ConcurrentCreateKeepsOneRoom(t *testing.T) {
	store := NewMemoryStore()
	rooms := store.Rooms()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := rooms.Create(context.Background(), &models.Room{
				ID:              fmt.Sprintf("r%d", i),
				ParticipantLow:  "u1",
				ParticipantHigh: "u2",
			})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, store.RoomCount())
}

func TestMemoryStore_UpdateLastMessageIsMonotonic(t *testing.T) {
	store := NewMemoryStore()
	rooms := store.Rooms()
	ctx := context.Background()
	require.NoError(t, rooms.Create(ctx, &models.Room{ID: "r1", ParticipantLow: "u1", ParticipantHigh: "u2"}))

	now := time.Now().UTC()
	require.NoError(t, rooms.UpdateLastMessage(ctx, "r1", "newer", now))
	require.NoError(t, rooms.UpdateLastMessage(ctx, "r1", "older", now.Add(-time.Minute)))

	room, err := rooms.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "newer", room.LastMessage)
	require.NotNil(t, room.LastMessageAt)
	assert.True(t, room.LastMessageAt.Equal(now))

	err = rooms.UpdateLastMessage(ctx, "missing", "x", now)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStore_Messages(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Rooms().Create(ctx, &models.Room{ID: "r1", ParticipantLow: "u1", ParticipantHigh: "u2"}))

	messages := store.Messages()
	base := time.Now().UTC()
	require.NoError(t, messages.Create(ctx, &models.Message{ID: "m2", RoomID: "r1", SenderID: "u2", Body: "b", CreatedAt: base.Add(time.Second)}))
	require.NoError(t, messages.Create(ctx, &models.Message{ID: "m1", RoomID: "r1", SenderID: "u1", Body: "a", CreatedAt: base}))
	require.NoError(t, messages.Create(ctx, &models.Message{ID: "m3", RoomID: "r1", SenderID: "u2", Body: "c", CreatedAt: base.Add(time.Second)}))

	err := messages.Create(ctx, &models.Message{ID: "m4", RoomID: "nope", SenderID: "u1", Body: "x"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	history, err := messages.ListByRoom(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "m1", history[0].ID)
	assert.Equal(t, "m2", history[1].ID)
	assert.Equal(t, "m3", history[2].ID)

	counts, err := messages.CountUnread(ctx, "u1", []string{"r1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["r1"])

	updated, err := messages.MarkRead(ctx, "r1", "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	counts, err = messages.CountUnread(ctx, "u1", []string{"r1"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts["r1"])

	// u1's own message stays unread for u2.
	counts, err = messages.CountUnread(ctx, "u2", []string{"r1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts["r1"])
}

func TestMemoryStore_ListByParticipant(t *testing.T) {
	store := NewMemoryStore()
	rooms := store.Rooms()
	ctx := context.Background()
	require.NoError(t, rooms.Create(ctx, &models.Room{ID: "r1", ParticipantLow: "u1", ParticipantHigh: "u2"}))
	require.NoError(t, rooms.Create(ctx, &models.Room{ID: "r2", ParticipantLow: "u0", ParticipantHigh: "u1"}))
	require.NoError(t, rooms.Create(ctx, &models.Room{ID: "r3", ParticipantLow: "u2", ParticipantHigh: "u3"}))

	list, err := rooms.ListByParticipant(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = rooms.ListByParticipant(ctx, "u9")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryStore_DirectoryAndBlocks(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	store.PutAccount(&models.Account{ID: "u9", Role: models.RoleGuide, DisplayName: "Guide"})
	store.PutGuideProfile(&models.GuideProfile{ID: "g7", AccountID: "u9"})

	profile, err := store.GuideProfileByID(ctx, "g7")
	require.NoError(t, err)
	assert.Equal(t, "u9", profile.AccountID)

	_, err = store.GuideProfileByID(ctx, "g8")
	assert.ErrorIs(t, err, common.ErrNotFound)

	account, err := store.AccountByID(ctx, "u9")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuide, account.Role)

	accounts, err := store.AccountsByIDs(ctx, []string{"u9", "u404"})
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	require.NoError(t, store.Block(ctx, "u1", "u2"))
	blocked, err := store.IsBlocked(ctx, "u2", "u1")
	require.NoError(t, err)
	assert.True(t, blocked)

	require.NoError(t, store.Unblock(ctx, "u1", "u2"))
	blocked, err = store.IsBlocked(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.False(t, blocked)
}
