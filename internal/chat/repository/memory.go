package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gotravel/internal/chat/models"
	"gotravel/internal/common"
)

// MemoryStore keeps rooms, messages, directory records and blocks in process.
// It enforces the same pair uniqueness as the MySQL index and backs
// STORE_DRIVER=memory as well as tests.
type MemoryStore struct {
	mu       sync.RWMutex
	rooms    map[string]*models.Room
	pairs    map[[2]string]string
	messages map[string][]*models.Message
	accounts map[string]*models.Account
	profiles map[string]*models.GuideProfile
	blocks   map[[2]string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:    make(map[string]*models.Room),
		pairs:    make(map[[2]string]string),
		messages: make(map[string][]*models.Message),
		accounts: make(map[string]*models.Account),
		profiles: make(map[string]*models.GuideProfile),
		blocks:   make(map[[2]string]struct{}),
	}
}

var (
	_ RoomRepository      = memoryRooms{}
	_ MessageRepository   = memoryMessages{}
	_ DirectoryRepository = (*MemoryStore)(nil)
	_ BlockRepository     = (*MemoryStore)(nil)
)

// Rooms exposes the store as a RoomRepository.
func (s *MemoryStore) Rooms() RoomRepository { return memoryRooms{s} }

// Messages exposes the store as a MessageRepository.
func (s *MemoryStore) Messages() MessageRepository { return memoryMessages{s} }

// PutAccount seeds the directory.
func (s *MemoryStore) PutAccount(account *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *account
	s.accounts[account.ID] = &cp
}

// PutGuideProfile seeds the directory.
func (s *MemoryStore) PutGuideProfile(profile *models.GuideProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *profile
	s.profiles[profile.ID] = &cp
}

// RoomCount is the number of stored rooms.
func (s *MemoryStore) RoomCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

func (s *MemoryStore) FindByPair(ctx context.Context, low, high string) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.pairs[[2]string{low, high}]
	if !ok {
		return nil, fmt.Errorf("find room by pair: %w", common.ErrNotFound)
	}
	return copyRoom(s.rooms[id]), nil
}

func (s *MemoryStore) createRoom(room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]string{room.ParticipantLow, room.ParticipantHigh}
	if _, ok := s.pairs[key]; ok {
		return fmt.Errorf("create room: %w", common.ErrRoomCreateConflict)
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}
	s.pairs[key] = room.ID
	s.rooms[room.ID] = copyRoom(room)
	return nil
}

func (s *MemoryStore) GetByID(ctx context.Context, roomID string) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("get room %s: %w", roomID, common.ErrNotFound)
	}
	return copyRoom(room), nil
}

func (s *MemoryStore) ListByParticipant(ctx context.Context, accountID string) ([]*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var rooms []*models.Room
	for _, room := range s.rooms {
		if room.HasParticipant(accountID) {
			rooms = append(rooms, copyRoom(room))
		}
	}
	return rooms, nil
}

func (s *MemoryStore) UpdateLastMessage(ctx context.Context, roomID, body string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return fmt.Errorf("update last message: %w", common.ErrNotFound)
	}
	if room.LastMessageAt != nil && room.LastMessageAt.After(at) {
		return nil
	}
	room.LastMessage = body
	room.LastMessageAt = &at
	return nil
}

type memoryRooms struct{ *MemoryStore }

func (r memoryRooms) Create(ctx context.Context, room *models.Room) error {
	return r.createRoom(room)
}

type memoryMessages struct{ *MemoryStore }

func (m memoryMessages) Create(ctx context.Context, msg *models.Message) error {
	return m.createMessage(msg)
}

func (s *MemoryStore) createMessage(msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[msg.RoomID]; !ok {
		return fmt.Errorf("create message: room %s: %w", msg.RoomID, common.ErrNotFound)
	}
	cp := *msg
	s.messages[msg.RoomID] = append(s.messages[msg.RoomID], &cp)
	return nil
}

func (s *MemoryStore) ListByRoom(ctx context.Context, roomID string) ([]*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.messages[roomID]
	messages := make([]*models.Message, 0, len(stored))
	for _, msg := range stored {
		cp := *msg
		messages = append(messages, &cp)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (s *MemoryStore) MarkRead(ctx context.Context, roomID, readerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var updated int64
	for _, msg := range s.messages[roomID] {
		if msg.SenderID != readerID && !msg.IsRead {
			msg.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (s *MemoryStore) CountUnread(ctx context.Context, accountID string, roomIDs []string) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int64, len(roomIDs))
	for _, roomID := range roomIDs {
		for _, msg := range s.messages[roomID] {
			if msg.SenderID != accountID && !msg.IsRead {
				counts[roomID]++
			}
		}
	}
	return counts, nil
}

func (s *MemoryStore) GuideProfileByID(ctx context.Context, profileID string) (*models.GuideProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("guide profile %s: %w", profileID, common.ErrNotFound)
	}
	cp := *profile
	return &cp, nil
}

func (s *MemoryStore) AccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, common.ErrNotFound)
	}
	cp := *account
	return &cp, nil
}

func (s *MemoryStore) AccountsByIDs(ctx context.Context, accountIDs []string) ([]*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var accounts []*models.Account
	for _, id := range accountIDs {
		if account, ok := s.accounts[id]; ok {
			cp := *account
			accounts = append(accounts, &cp)
		}
	}
	return accounts, nil
}

func (s *MemoryStore) IsBlocked(ctx context.Context, a, b string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ab := s.blocks[[2]string{a, b}]
	_, ba := s.blocks[[2]string{b, a}]
	return ab || ba, nil
}

func (s *MemoryStore) Block(ctx context.Context, blockerID, blockedID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[[2]string{blockerID, blockedID}] = struct{}{}
	return nil
}

func (s *MemoryStore) Unblock(ctx context.Context, blockerID, blockedID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blocks, [2]string{blockerID, blockedID})
	return nil
}

func copyRoom(room *models.Room) *models.Room {
	cp := *room
	if room.LastMessageAt != nil {
		at := *room.LastMessageAt
		cp.LastMessageAt = &at
	}
	return &cp
}
