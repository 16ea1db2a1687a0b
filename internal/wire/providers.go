// Package wire assembles the chat service from configuration.
package wire

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/handler"
	"gotravel/internal/chat/identity"
	"gotravel/internal/chat/realtime"
	"gotravel/internal/chat/repository"
	"gotravel/internal/chat/service"
	"gotravel/internal/common"
	"gotravel/internal/config"
	"gotravel/internal/dbmongo"
	"gotravel/internal/dbmysql"
)

// App is everything cmd/chat-svc needs to serve.
type App struct {
	Config  *config.Config
	Log     *logrus.Logger
	Auth    *common.Authenticator
	Handler *handler.ChatHandler
	HTTP    *handler.HTTPServer
}

// Stores groups the repositories of one storage backend.
type Stores struct {
	Rooms     repository.RoomRepository
	Messages  repository.MessageRepository
	Directory repository.DirectoryRepository
	Blocks    repository.BlockRepository
}

// ProvideStores opens the backend named by STORE_DRIVER.
func ProvideStores(cfg *config.Config, log *logrus.Logger) (*Stores, func(), error) {
	switch strings.ToLower(cfg.Database.Driver) {
	case "memory":
		log.Warn("using in-memory store, data is lost on restart")
		store := repository.NewMemoryStore()
		return &Stores{
			Rooms:     store.Rooms(),
			Messages:  store.Messages(),
			Directory: store,
			Blocks:    store,
		}, func() {}, nil
	case "mysql":
		db, err := dbmysql.NewMySQL(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := dbmysql.Close(db); err != nil {
				log.WithError(err).Warn("failed to close MySQL")
			}
		}
		return &Stores{
			Rooms:     repository.NewRoomRepository(db),
			Messages:  repository.NewMessageRepository(db),
			Directory: repository.NewDirectoryRepository(db),
			Blocks:    repository.NewBlockRepository(db),
		}, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Database.Driver)
	}
}

// ProvideNotifier picks in-process fan-out or the Redis relay.
func ProvideNotifier(cfg *config.Config, log *logrus.Logger) (realtime.Notifier, func(), error) {
	broker := realtime.NewBroker(cfg.Realtime.BufferSize, log)

	switch strings.ToLower(cfg.Realtime.Driver) {
	case "memory":
		return broker, func() { _ = broker.Close() }, nil
	case "redis":
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			_ = broker.Close()
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		relay, err := realtime.NewRedisRelay(ctx, client, broker, log)
		if err != nil {
			_ = client.Close()
			_ = broker.Close()
			return nil, nil, err
		}
		log.WithField("addr", opts.Addr).Info("Realtime relay connected to Redis")

		cleanup := func() {
			if err := relay.Close(); err != nil {
				log.WithError(err).Warn("failed to close realtime relay")
			}
			_ = client.Close()
		}
		return relay, cleanup, nil
	default:
		_ = broker.Close()
		return nil, nil, fmt.Errorf("unknown realtime driver %q", cfg.Realtime.Driver)
	}
}

// ProvideAttachments connects GridFS, or returns nil when attachments are
// switched off.
func ProvideAttachments(cfg *config.Config, log *logrus.Logger) (handler.AttachmentStore, func(), error) {
	if !cfg.Chat.AttachmentsEnabled {
		return nil, func() {}, nil
	}
	mongoClient, err := dbmongo.NewMongoConnection(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Close(ctx); err != nil {
			log.WithError(err).Warn("failed to close MongoDB")
		}
	}
	return dbmongo.NewAttachmentStorage(mongoClient), cleanup, nil
}

func ProvideResolver(cfg *config.Config, stores *Stores, log *logrus.Logger) *identity.Resolver {
	return identity.NewResolver(stores.Directory, cfg.Chat.StrictResolution, log)
}

func ProvideMessageStore(cfg *config.Config, stores *Stores, notifier realtime.Notifier, log *logrus.Logger) *service.MessageStore {
	return service.NewMessageStore(stores.Messages, stores.Rooms, stores.Blocks, notifier, cfg.Chat.MaxBodyLength, log)
}

// ProvideAuthenticator refuses to start with auth on and no secret.
func ProvideAuthenticator(cfg *config.Config, log *logrus.Logger) (*common.Authenticator, error) {
	if !cfg.Auth.Enabled {
		log.Warn("authentication disabled, callers are trusted by the X-User-ID header")
		return common.NewAuthenticator(nil, false), nil
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required when AUTH_ENABLED is true")
	}
	return common.NewAuthenticator(common.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), true), nil
}

func ProvideHTTPServer(cfg *config.Config, chatService service.ChatService, notifier realtime.Notifier, attachments handler.AttachmentStore, log *logrus.Logger) *handler.HTTPServer {
	return handler.NewHTTPServer(chatService, notifier, attachments, int64(cfg.Chat.MaxAttachmentBytes), log)
}
