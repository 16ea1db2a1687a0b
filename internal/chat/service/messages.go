package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/models"
	"gotravel/internal/chat/realtime"
	"gotravel/internal/chat/repository"
	"gotravel/internal/common"
)

// MessageStore owns message writes and keeps the room's last message cache
// in step with them.
type MessageStore struct {
	messages      repository.MessageRepository
	rooms         repository.RoomRepository
	blocks        repository.BlockRepository
	notifier      realtime.Notifier
	maxBodyLength int
	log           *logrus.Logger
}

func NewMessageStore(
	messages repository.MessageRepository,
	rooms repository.RoomRepository,
	blocks repository.BlockRepository,
	notifier realtime.Notifier,
	maxBodyLength int,
	log *logrus.Logger,
) *MessageStore {
	return &MessageStore{
		messages:      messages,
		rooms:         rooms,
		blocks:        blocks,
		notifier:      notifier,
		maxBodyLength: maxBodyLength,
		log:           log,
	}
}

// Send stores a message and publishes it to the room's live listeners.
// The message row is authoritative: a failed cache update or publish is
// logged and the stored message is still returned.
func (s *MessageStore) Send(ctx context.Context, roomID, senderID, body string, msgType common.MessageType) (*models.Message, error) {
	if msgType == "" {
		msgType = common.MessageTypeText
	}
	in := common.SendMessageInput{RoomID: roomID, SenderID: senderID, Body: body, Type: msgType}
	if err := common.ValidateSendMessage(in, s.maxBodyLength); err != nil {
		return nil, err
	}

	room, err := s.participantRoom(ctx, roomID, senderID)
	if err != nil {
		return nil, err
	}

	blocked, err := s.blocks.IsBlocked(ctx, senderID, room.Counterpart(senderID))
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, fmt.Errorf("%w: sender is blocked in room %s", common.ErrPermissionDenied, roomID)
	}

	msg := &models.Message{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		SenderID:  senderID,
		Body:      body,
		Type:      msgType,
		CreatedAt: now(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	logger := s.log.WithFields(logrus.Fields{"room_id": roomID, "message_id": msg.ID})
	if err := s.rooms.UpdateLastMessage(ctx, roomID, msg.Body, msg.CreatedAt); err != nil {
		logger.WithError(err).Warn("failed to update room last message")
	}
	if err := s.notifier.Publish(ctx, msg); err != nil {
		logger.WithError(err).Warn("failed to publish message")
	}

	return msg, nil
}

// Fetch returns the full history of a room, oldest first.
func (s *MessageStore) Fetch(ctx context.Context, roomID string) ([]*models.Message, error) {
	if roomID == "" {
		return nil, fmt.Errorf("%w: room id is required", common.ErrInvalidArgument)
	}
	return s.messages.ListByRoom(ctx, roomID)
}

// MarkRead flags everything the counterpart sent in the room as read.
func (s *MessageStore) MarkRead(ctx context.Context, roomID, readerID string) (int64, error) {
	if _, err := s.participantRoom(ctx, roomID, readerID); err != nil {
		return 0, err
	}
	return s.messages.MarkRead(ctx, roomID, readerID)
}

func (s *MessageStore) participantRoom(ctx context.Context, roomID, accountID string) (*models.Room, error) {
	if roomID == "" || accountID == "" {
		return nil, fmt.Errorf("%w: room id and account id are required", common.ErrInvalidArgument)
	}
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasParticipant(accountID) {
		return nil, fmt.Errorf("%w: %s is not a participant of room %s", common.ErrPermissionDenied, accountID, roomID)
	}
	return room, nil
}
