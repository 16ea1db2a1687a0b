//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_service.go -package=mocks
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/models"
	"gotravel/internal/chat/realtime"
	"gotravel/internal/chat/repository"
	"gotravel/internal/common"
)

// ChatService is what the transports call. Every operation acts on behalf of
// an already authenticated account.
type ChatService interface {
	ResolveAndOpenRoom(ctx context.Context, callerID, targetRef string) (*models.RoomHandle, error)
	SendMessage(ctx context.Context, roomID, senderID, body string, msgType common.MessageType) (*models.Message, error)
	ListMessages(ctx context.Context, callerID, roomID string) ([]*models.Message, error)
	Subscribe(ctx context.Context, callerID, roomID string, handler realtime.Handler) (func(), error)
	ListRooms(ctx context.Context, accountID string) ([]*models.RoomSummary, error)
	MarkRead(ctx context.Context, roomID, readerID string) (int64, error)
	// EnsureParticipant returns the room when accountID belongs to it.
	EnsureParticipant(ctx context.Context, roomID, accountID string) (*models.Room, error)
	Block(ctx context.Context, blockerID, targetRef string) error
	Unblock(ctx context.Context, blockerID, targetRef string) error
}

// Resolver maps a caller supplied reference to an account id.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

type chatService struct {
	resolver Resolver
	registry *RoomRegistry
	store    *MessageStore
	lister   *RoomLister
	blocks   repository.BlockRepository
	notifier realtime.Notifier
	log      *logrus.Logger
}

func NewChatService(
	resolver Resolver,
	registry *RoomRegistry,
	store *MessageStore,
	lister *RoomLister,
	blocks repository.BlockRepository,
	notifier realtime.Notifier,
	log *logrus.Logger,
) ChatService {
	return &chatService{
		resolver: resolver,
		registry: registry,
		store:    store,
		lister:   lister,
		blocks:   blocks,
		notifier: notifier,
		log:      log,
	}
}

func (s *chatService) ResolveAndOpenRoom(ctx context.Context, callerID, targetRef string) (*models.RoomHandle, error) {
	targetID, err := s.resolver.Resolve(ctx, targetRef)
	if err != nil {
		return nil, err
	}
	room, err := s.registry.GetOrCreate(ctx, callerID, targetID)
	if err != nil {
		return nil, err
	}
	return &models.RoomHandle{Room: room, CounterpartID: targetID}, nil
}

func (s *chatService) SendMessage(ctx context.Context, roomID, senderID, body string, msgType common.MessageType) (*models.Message, error) {
	return s.store.Send(ctx, roomID, senderID, body, msgType)
}

func (s *chatService) ListMessages(ctx context.Context, callerID, roomID string) ([]*models.Message, error) {
	if _, err := s.store.participantRoom(ctx, roomID, callerID); err != nil {
		return nil, err
	}
	return s.store.Fetch(ctx, roomID)
}

func (s *chatService) Subscribe(ctx context.Context, callerID, roomID string, handler realtime.Handler) (func(), error) {
	if _, err := s.store.participantRoom(ctx, roomID, callerID); err != nil {
		return nil, err
	}
	return s.notifier.Subscribe(roomID, handler), nil
}

func (s *chatService) ListRooms(ctx context.Context, accountID string) ([]*models.RoomSummary, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account id is required", common.ErrInvalidArgument)
	}
	return s.lister.ListRooms(ctx, accountID)
}

func (s *chatService) MarkRead(ctx context.Context, roomID, readerID string) (int64, error) {
	return s.store.MarkRead(ctx, roomID, readerID)
}

func (s *chatService) EnsureParticipant(ctx context.Context, roomID, accountID string) (*models.Room, error) {
	return s.store.participantRoom(ctx, roomID, accountID)
}

func (s *chatService) Block(ctx context.Context, blockerID, targetRef string) error {
	targetID, err := s.blockTarget(ctx, blockerID, targetRef)
	if err != nil {
		return err
	}
	if err := s.blocks.Block(ctx, blockerID, targetID); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"blocker_id": blockerID, "blocked_id": targetID}).Info("account blocked")
	return nil
}

func (s *chatService) Unblock(ctx context.Context, blockerID, targetRef string) error {
	targetID, err := s.blockTarget(ctx, blockerID, targetRef)
	if err != nil {
		return err
	}
	return s.blocks.Unblock(ctx, blockerID, targetID)
}

func (s *chatService) blockTarget(ctx context.Context, blockerID, targetRef string) (string, error) {
	if blockerID == "" {
		return "", fmt.Errorf("%w: blocker id is required", common.ErrInvalidArgument)
	}
	targetID, err := s.resolver.Resolve(ctx, targetRef)
	if err != nil {
		return "", err
	}
	if targetID == blockerID {
		return "", fmt.Errorf("%w: cannot block yourself", common.ErrInvalidArgument)
	}
	return targetID, nil
}
