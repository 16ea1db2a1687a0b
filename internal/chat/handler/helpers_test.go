package handler

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/identity"
	"gotravel/internal/chat/models"
	"gotravel/internal/chat/realtime"
	"gotravel/internal/chat/repository"
	"gotravel/internal/chat/service"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type liveService struct {
	store   *repository.MemoryStore
	broker  *realtime.Broker
	service service.ChatService
}

// newLiveService wires the real chat service over the in-memory store.
func newLiveService(t *testing.T) *liveService {
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

	svc := service.NewChatService(
		identity.NewResolver(store, false, log),
		service.NewRoomRegistry(store.Rooms(), store, log),
		service.NewMessageStore(store.Messages(), store.Rooms(), store, broker, 200, log),
		service.NewRoomLister(store.Rooms(), store.Messages(), store, log),
		store,
		broker,
		log,
	)
	return &liveService{store: store, broker: broker, service: svc}
}
