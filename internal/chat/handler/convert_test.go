package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotravel/internal/chat/models"
	"gotravel/internal/common"
)

func TestToPBRoom(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	last := created.Add(90 * time.Minute)

	room := toPBRoom(&models.Room{ID: "r1", ParticipantLow: "u1", ParticipantHigh: "u2", LastMessage: "hi", LastMessageAt: &last, CreatedAt: created})
	require.NotNil(t, room.LastMessageAt)
	assert.True(t, last.Equal(room.LastMessageAt.AsTime()))
	assert.True(t, created.Equal(room.CreatedAt.AsTime()))

	empty := toPBRoom(&models.Room{ID: "r2", CreatedAt: created})
	assert.Nil(t, empty.LastMessageAt)

	assert.Nil(t, toPBRoom(nil))
}

func TestToPBMessage(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 500, time.UTC)
	msg := toPBMessage(&models.Message{ID: "m1", RoomID: "r1", SenderID: "u1", Body: "f1", Type: common.MessageTypeImage, IsRead: true, CreatedAt: created})

	assert.Equal(t, "image", msg.Type)
	assert.True(t, msg.IsRead)
	assert.True(t, created.Equal(msg.CreatedAt.AsTime()))
}
