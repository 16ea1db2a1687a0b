package repository

import (
	"context"

	"gorm.io/gorm"

	"gotravel/internal/chat/models"
	"gotravel/internal/dbmysql"
)

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *models.Message) error {
	return translateError(r.db.WithContext(ctx).Create(dbmysql.MessageFromModel(msg)).Error, "create message")
}

func (r *messageRepo) ListByRoom(ctx context.Context, roomID string) ([]*models.Message, error) {
	var rows []dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, "list messages")
	}

	messages := make([]*models.Message, 0, len(rows))
	for i := range rows {
		messages = append(messages, rows[i].ToModel())
	}
	return messages, nil
}

func (r *messageRepo) MarkRead(ctx context.Context, roomID, readerID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("room_id = ? AND sender_id <> ? AND is_read = ?", roomID, readerID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, translateError(result.Error, "mark read")
	}
	return result.RowsAffected, nil
}

func (r *messageRepo) CountUnread(ctx context.Context, accountID string, roomIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(roomIDs))
	if len(roomIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		RoomID string
		Unread int64
	}
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Select("room_id, COUNT(*) AS unread").
		Where("room_id IN ? AND sender_id <> ? AND is_read = ?", roomIDs, accountID, false).
		Group("room_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, "count unread")
	}

	for _, row := range rows {
		counts[row.RoomID] = row.Unread
	}
	return counts, nil
}
