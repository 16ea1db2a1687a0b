package service

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/models"
	"gotravel/internal/chat/repository"
)

// RoomLister builds an account's inbox. It only reads.
type RoomLister struct {
	rooms     repository.RoomRepository
	messages  repository.MessageRepository
	directory repository.DirectoryRepository
	log       *logrus.Logger
}

func NewRoomLister(
	rooms repository.RoomRepository,
	messages repository.MessageRepository,
	directory repository.DirectoryRepository,
	log *logrus.Logger,
) *RoomLister {
	return &RoomLister{rooms: rooms, messages: messages, directory: directory, log: log}
}

// ListRooms returns every room of accountID with the counterpart's display
// identity, most recent conversation first.
func (l *RoomLister) ListRooms(ctx context.Context, accountID string) ([]*models.RoomSummary, error) {
	rooms, err := l.rooms.ListByParticipant(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return []*models.RoomSummary{}, nil
	}

	counterpartIDs := lo.Uniq(lo.Map(rooms, func(room *models.Room, _ int) string {
		return room.Counterpart(accountID)
	}))
	accounts, err := l.directory.AccountsByIDs(ctx, counterpartIDs)
	if err != nil {
		// Placeholders keep the inbox usable while the directory is down.
		l.log.WithError(err).WithField("account_id", accountID).Warn("directory lookup failed for room list")
		accounts = nil
	}
	byID := lo.KeyBy(accounts, func(account *models.Account) string { return account.ID })

	roomIDs := lo.Map(rooms, func(room *models.Room, _ int) string { return room.ID })
	unread, err := l.messages.CountUnread(ctx, accountID, roomIDs)
	if err != nil {
		return nil, err
	}

	summaries := lo.Map(rooms, func(room *models.Room, _ int) *models.RoomSummary {
		counterpartID := room.Counterpart(accountID)
		counterpart, ok := byID[counterpartID]
		if !ok {
			counterpart = &models.Account{ID: counterpartID}
		}
		return &models.RoomSummary{
			Room:        room,
			Counterpart: counterpart,
			UnreadCount: unread[room.ID],
		}
	})

	sort.SliceStable(summaries, func(i, j int) bool {
		return recentFirst(summaries[i].Room, summaries[j].Room)
	})
	return summaries, nil
}

// recentFirst orders rooms by last message time, newest first. Rooms without
// messages come last, newest created first.
func recentFirst(a, b *models.Room) bool {
	switch {
	case a.LastMessageAt != nil && b.LastMessageAt != nil:
		if !a.LastMessageAt.Equal(*b.LastMessageAt) {
			return a.LastMessageAt.After(*b.LastMessageAt)
		}
	case a.LastMessageAt != nil:
		return true
	case b.LastMessageAt != nil:
		return false
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}
