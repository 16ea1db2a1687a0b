package handler

import (
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "gotravel/api/v1/chat"
	"gotravel/internal/chat/models"
)

func toPBRoom(room *models.Room) *pb.Room {
	if room == nil {
		return nil
	}
	out := &pb.Room{
		Id:              room.ID,
		ParticipantLow:  room.ParticipantLow,
		ParticipantHigh: room.ParticipantHigh,
		LastMessage:     room.LastMessage,
		CreatedAt:       timestamppb.New(room.CreatedAt),
	}
	if room.LastMessageAt != nil {
		out.LastMessageAt = timestamppb.New(*room.LastMessageAt)
	}
	return out
}

func toPBMessage(msg *models.Message) *pb.Message {
	return &pb.Message{
		Id:        msg.ID,
		RoomId:    msg.RoomID,
		SenderId:  msg.SenderID,
		Body:      msg.Body,
		Type:      msg.Type.String(),
		IsRead:    msg.IsRead,
		CreatedAt: timestamppb.New(msg.CreatedAt),
	}
}

func toPBMessages(messages []*models.Message) []*pb.Message {
	return lo.Map(messages, func(msg *models.Message, _ int) *pb.Message { return toPBMessage(msg) })
}

func toPBSummaries(summaries []*models.RoomSummary) []*pb.RoomSummary {
	return lo.Map(summaries, func(s *models.RoomSummary, _ int) *pb.RoomSummary {
		out := &pb.RoomSummary{Room: toPBRoom(s.Room), UnreadCount: s.UnreadCount}
		if s.Counterpart != nil {
			out.Counterpart = &pb.Account{
				Id:          s.Counterpart.ID,
				Role:        string(s.Counterpart.Role),
				DisplayName: s.Counterpart.DisplayName,
				AvatarUrl:   s.Counterpart.AvatarURL,
			}
		}
		return out
	})
}
