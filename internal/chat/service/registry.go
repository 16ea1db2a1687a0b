package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/models"
	"gotravel/internal/chat/repository"
	"gotravel/internal/common"
)

// CanonicalPair orders two account ids so that a pair has one key no matter
// which side asks.
func CanonicalPair(a, b string) (low, high string) {
	if a < b {
		return a, b
	}
	return b, a
}

// RoomRegistry hands out the single room that exists for a pair of accounts.
type RoomRegistry struct {
	rooms  repository.RoomRepository
	blocks repository.BlockRepository
	log    *logrus.Logger
}

func NewRoomRegistry(rooms repository.RoomRepository, blocks repository.BlockRepository, log *logrus.Logger) *RoomRegistry {
	return &RoomRegistry{rooms: rooms, blocks: blocks, log: log}
}

// GetOrCreate returns the room for a and b, creating it on first contact.
// A concurrent creator that loses the insert race gets the winner's row.
func (r *RoomRegistry) GetOrCreate(ctx context.Context, a, b string) (*models.Room, error) {
	if a == "" || b == "" {
		return nil, fmt.Errorf("%w: both participants are required", common.ErrInvalidArgument)
	}
	if a == b {
		return nil, fmt.Errorf("%w: cannot open a room with yourself", common.ErrInvalidArgument)
	}
	low, high := CanonicalPair(a, b)

	room, err := r.rooms.FindByPair(ctx, low, high)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	blocked, err := r.blocks.IsBlocked(ctx, low, high)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, fmt.Errorf("%w: conversation between %s and %s is blocked", common.ErrPermissionDenied, low, high)
	}

	room = &models.Room{
		ID:              uuid.NewString(),
		ParticipantLow:  low,
		ParticipantHigh: high,
		CreatedAt:       now(),
	}
	err = r.rooms.Create(ctx, room)
	if err == nil {
		r.log.WithFields(logrus.Fields{
			"room_id": room.ID,
			"low":     low,
			"high":    high,
		}).Info("room created")
		return room, nil
	}
	if !errors.Is(err, common.ErrRoomCreateConflict) {
		return nil, err
	}

	existing, ferr := r.rooms.FindByPair(ctx, low, high)
	if ferr != nil {
		r.log.WithError(ferr).WithFields(logrus.Fields{"low": low, "high": high}).
			Error("room missing after create conflict")
		return nil, fmt.Errorf("%w: room for %s/%s missing after conflict: %v", common.ErrStoreUnavailable, low, high, ferr)
	}
	r.log.WithField("room_id", existing.ID).Debug("lost room create race, using existing room")
	return existing, nil
}

// now truncates to the storage precision so values read back compare equal.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
