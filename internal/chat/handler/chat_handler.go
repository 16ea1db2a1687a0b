// Package handler exposes the chat service over gRPC and HTTP.
package handler

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "gotravel/api/v1/chat"
	"gotravel/internal/chat/models"
	"gotravel/internal/chat/service"
	"gotravel/internal/common"
)

// streamBuffer bounds the messages waiting to be written to one Subscribe
// stream. Overflow is dropped; the client reconciles with ListMessages.
const streamBuffer = 32

type ChatHandler struct {
	pb.UnimplementedChatServiceServer
	chatService service.ChatService
	log         *logrus.Logger
}

func NewChatHandler(chatService service.ChatService, log *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		log:         log,
	}
}

func caller(ctx context.Context) (string, error) {
	accountID, ok := common.AccountIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "caller identity missing")
	}
	return accountID, nil
}

func (h *ChatHandler) OpenRoom(ctx context.Context, req *pb.OpenRoomRequest) (*pb.OpenRoomResponse, error) {
	accountID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	handle, err := h.chatService.ResolveAndOpenRoom(ctx, accountID, req.TargetRef)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &pb.OpenRoomResponse{Room: toPBRoom(handle.Room), CounterpartId: handle.CounterpartID}, nil
}

func (h *ChatHandler) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	accountID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	msgType, ok := common.ParseMessageType(req.Type)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported message type %q", req.Type)
	}
	msg, err := h.chatService.SendMessage(ctx, req.RoomId, accountID, req.Body, msgType)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &pb.SendMessageResponse{Message: toPBMessage(msg)}, nil
}

func (h *ChatHandler) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	accountID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := h.chatService.ListMessages(ctx, accountID, req.RoomId)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &pb.ListMessagesResponse{Messages: toPBMessages(messages)}, nil
}

func (h *ChatHandler) ListRooms(ctx context.Context, _ *pb.ListRoomsRequest) (*pb.ListRoomsResponse, error) {
	accountID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	summaries, err := h.chatService.ListRooms(ctx, accountID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &pb.ListRoomsResponse{Rooms: toPBSummaries(summaries)}, nil
}

func (h *ChatHandler) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*pb.MarkReadResponse, error) {
	accountID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := h.chatService.MarkRead(ctx, req.RoomId, accountID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &pb.MarkReadResponse{Updated: updated}, nil
}

// Subscribe relays the room's new messages until the client goes away.
func (h *ChatHandler) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.Message]) error {
	ctx := stream.Context()
	accountID, err := caller(ctx)
	if err != nil {
		return err
	}

	logger := h.log.WithFields(logrus.Fields{"room_id": req.RoomId, "account_id": accountID})
	pending := make(chan *models.Message, streamBuffer)
	unsubscribe, err := h.chatService.Subscribe(ctx, accountID, req.RoomId, func(msg *models.Message) {
		select {
		case pending <- msg:
		default:
			logger.WithField("message_id", msg.ID).Warn("stream buffer full, dropping message")
		}
	})
	if err != nil {
		return common.GRPCStatus(err)
	}
	defer unsubscribe()

	logger.Debug("stream subscribed")
	for {
		select {
		case <-ctx.Done():
			logger.Debug("stream closed")
			return ctx.Err()
		case msg := <-pending:
			if err := stream.Send(toPBMessage(msg)); err != nil {
				logger.WithError(err).Warn("failed to send to stream")
				return err
			}
		}
	}
}
