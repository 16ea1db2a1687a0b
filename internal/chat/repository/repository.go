//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks
package repository

import (
	"context"
	"time"

	"gotravel/internal/chat/models"
)

// RoomRepository persists rooms keyed by their canonical participant pair.
type RoomRepository interface {
	// FindByPair returns common.ErrNotFound when no room exists for the pair.
	FindByPair(ctx context.Context, low, high string) (*models.Room, error)
	// Create returns common.ErrRoomCreateConflict when the pair already exists.
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, roomID string) (*models.Room, error)
	ListByParticipant(ctx context.Context, accountID string) ([]*models.Room, error)
	// UpdateLastMessage never moves the cached last message backwards in time.
	UpdateLastMessage(ctx context.Context, roomID, body string, at time.Time) error
}

// MessageRepository is the only writer of message rows.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	// ListByRoom returns the room history oldest first.
	ListByRoom(ctx context.Context, roomID string) ([]*models.Message, error)
	// MarkRead flips is_read on messages in the room not sent by readerID.
	MarkRead(ctx context.Context, roomID, readerID string) (int64, error)
	CountUnread(ctx context.Context, accountID string, roomIDs []string) (map[string]int64, error)
}

// DirectoryRepository reads accounts and guide profiles.
type DirectoryRepository interface {
	GuideProfileByID(ctx context.Context, profileID string) (*models.GuideProfile, error)
	AccountByID(ctx context.Context, accountID string) (*models.Account, error)
	AccountsByIDs(ctx context.Context, accountIDs []string) ([]*models.Account, error)
}

type BlockRepository interface {
	// IsBlocked is true when either account blocked the other.
	IsBlocked(ctx context.Context, a, b string) (bool, error)
	Block(ctx context.Context, blockerID, blockedID string) error
	Unblock(ctx context.Context, blockerID, blockedID string) error
}
