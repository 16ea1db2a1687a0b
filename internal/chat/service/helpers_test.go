package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/identity"
	"gotravel/internal/chat/models"
	"gotravel/internal/chat/realtime"
	"gotravel/internal/chat/repository"
)

const testMaxBody = 200

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type testEnv struct {
	store    *repository.MemoryStore
	broker   *realtime.Broker
	registry *RoomRegistry
	messages *MessageStore
	lister   *RoomLister
	service  ChatService
}

// newTestEnv wires the service over the in-memory store with a small
// directory: guide profile g7 belongs to account u9.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := quietLogger()
	store := repository.NewMemoryStore()
	store.PutAccount(&models.Account{ID: "u1", Role: models.RoleTraveler, DisplayName: "Ana"})
	store.PutAccount(&models.Account{ID: "u2", Role: models.RoleTraveler, DisplayName: "Bao"})
	store.PutAccount(&models.Account{ID: "u3", Role: models.RoleTraveler, DisplayName: "Chi"})
	store.PutAccount(&models.Account{ID: "u9", Role: models.RoleGuide, DisplayName: "Guide Minh"})
	store.PutGuideProfile(&models.GuideProfile{ID: "g7", AccountID: "u9"})

	broker := realtime.NewBroker(16, log)
	t.Cleanup(func() { broker.Close() })

	registry := NewRoomRegistry(store.Rooms(), store, log)
	messages := NewMessageStore(store.Messages(), store.Rooms(), store, broker, testMaxBody, log)
	lister := NewRoomLister(store.Rooms(), store.Messages(), store, log)
	resolver := identity.NewResolver(store, false, log)

	return &testEnv{
		store:    store,
		broker:   broker,
		registry: registry,
		messages: messages,
		lister:   lister,
		service:  NewChatService(resolver, registry, messages, lister, store, broker, log),
	}
}
