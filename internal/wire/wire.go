//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/handler"
	"gotravel/internal/chat/identity"
	"gotravel/internal/chat/service"
	"gotravel/internal/config"
)

func InitializeChatService(cfg *config.Config, log *logrus.Logger) (*App, func(), error) {
	wire.Build(
		ProvideStores,
		wire.FieldsOf(new(*Stores), "Rooms", "Messages", "Directory", "Blocks"),
		ProvideNotifier,
		ProvideAttachments,
		ProvideResolver,
		wire.Bind(new(service.Resolver), new(*identity.Resolver)),
		service.NewRoomRegistry,
		ProvideMessageStore,
		service.NewRoomLister,
		service.NewChatService,
		ProvideAuthenticator,
		handler.NewChatHandler,
		ProvideHTTPServer,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
