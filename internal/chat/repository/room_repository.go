package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gotravel/internal/chat/models"
	"gotravel/internal/dbmysql"
)

type roomRepo struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) FindByPair(ctx context.Context, low, high string) (*models.Room, error) {
	var row dbmysql.Room
	err := r.db.WithContext(ctx).
		Where("participant_low = ? AND participant_high = ?", low, high).
		Take(&row).Error
	if err != nil {
		return nil, translateError(err, "find room by pair")
	}
	return row.ToModel(), nil
}

func (r *roomRepo) Create(ctx context.Context, room *models.Room) error {
	row := dbmysql.RoomFromModel(room)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err, "create room")
	}
	room.CreatedAt = row.CreatedAt
	return nil
}

func (r *roomRepo) GetByID(ctx context.Context, roomID string) (*models.Room, error) {
	var row dbmysql.Room
	if err := r.db.WithContext(ctx).Where("id = ?", roomID).Take(&row).Error; err != nil {
		return nil, translateError(err, "get room "+roomID)
	}
	return row.ToModel(), nil
}

func (r *roomRepo) ListByParticipant(ctx context.Context, accountID string) ([]*models.Room, error) {
	var rows []dbmysql.Room
	err := r.db.WithContext(ctx).
		Where("participant_low = ? OR participant_high = ?", accountID, accountID).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, "list rooms")
	}

	rooms := make([]*models.Room, 0, len(rows))
	for i := range rows {
		rooms = append(rooms, rows[i].ToModel())
	}
	return rooms, nil
}

func (r *roomRepo) UpdateLastMessage(ctx context.Context, roomID, body string, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Room{}).
		Where("id = ? AND (last_message_at IS NULL OR last_message_at <= ?)", roomID, at).
		Updates(map[string]interface{}{
			"last_message":    body,
			"last_message_at": at,
		}).Error
	return translateError(err, "update last message")
}
