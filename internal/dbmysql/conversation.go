package dbmysql

import (
	"time"

	"gotravel/internal/chat/models"
)

// Room is the conversation row. The unique pair index is what keeps a
// single room per pair of accounts under concurrent creation.
type Room struct {
	ID              string     `gorm:"primaryKey;type:varchar(36) COLLATE utf8mb4_bin"`
	ParticipantLow  string     `gorm:"column:participant_low;type:varchar(64) COLLATE utf8mb4_bin;not null;index:idx_room_pair,unique"`
	ParticipantHigh string     `gorm:"column:participant_high;type:varchar(64) COLLATE utf8mb4_bin;not null;index:idx_room_pair,unique;index:idx_room_high"`
	LastMessage     string     `gorm:"column:last_message;type:text"`
	LastMessageAt   *time.Time `gorm:"column:last_message_at;precision:6"`
	CreatedAt       time.Time  `gorm:"column:created_at;precision:6"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (r *Room) ToModel() *models.Room {
	return &models.Room{
		ID:              r.ID,
		ParticipantLow:  r.ParticipantLow,
		ParticipantHigh: r.ParticipantHigh,
		LastMessage:     r.LastMessage,
		LastMessageAt:   r.LastMessageAt,
		CreatedAt:       r.CreatedAt,
	}
}

func RoomFromModel(room *models.Room) *Room {
	return &Room{
		ID:              room.ID,
		ParticipantLow:  room.ParticipantLow,
		ParticipantHigh: room.ParticipantHigh,
		LastMessage:     room.LastMessage,
		LastMessageAt:   room.LastMessageAt,
		CreatedAt:       room.CreatedAt,
	}
}
