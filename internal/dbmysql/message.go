package dbmysql

import (
	"time"

	"gotravel/internal/chat/models"
	"gotravel/internal/common"
)

type Message struct {
	ID        string    `gorm:"primaryKey;type:varchar(36) COLLATE utf8mb4_bin"`
	RoomID    string    `gorm:"column:room_id;type:varchar(36) COLLATE utf8mb4_bin;not null;index:idx_room_created,priority:1"`
	SenderID  string    `gorm:"column:sender_id;type:varchar(64) COLLATE utf8mb4_bin;not null"`
	Body      string    `gorm:"column:body;type:text;not null"`
	Type      string    `gorm:"column:type;type:enum('text','image','file','location');not null"`
	IsRead    bool      `gorm:"column:is_read;not null"`
	CreatedAt time.Time `gorm:"column:created_at;precision:6;index:idx_room_created,priority:2"`
}

func (m *Message) ToModel() *models.Message {
	return &models.Message{
		ID:        m.ID,
		RoomID:    m.RoomID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		Type:      common.MessageType(m.Type),
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func MessageFromModel(msg *models.Message) *Message {
	return &Message{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		SenderID:  msg.SenderID,
		Body:      msg.Body,
		Type:      msg.Type.String(),
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}
}
