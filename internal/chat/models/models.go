// Package models holds the chat domain types shared by the repositories,
// the service layer and the transports.
package models

import (
	"time"

	"gotravel/internal/common"
)

type AccountRole string

const (
	RoleTraveler AccountRole = "traveler"
	RoleGuide    AccountRole = "guide"
	RoleOther    AccountRole = "other"
)

// Account is owned by the account directory; chat only reads it.
type Account struct {
	ID          string      `json:"id"`
	Role        AccountRole `json:"role"`
	DisplayName string      `json:"display_name"`
	AvatarURL   string      `json:"avatar_url,omitempty"`
}

// GuideProfile points back at the account that owns it. The link is a
// lookup relation only.
type GuideProfile struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
}

// Room is the single conversation between two accounts.
// ParticipantLow < ParticipantHigh always holds.
type Room struct {
	ID              string     `json:"id"`
	ParticipantLow  string     `json:"participant_low"`
	ParticipantHigh string     `json:"participant_high"`
	LastMessage     string     `json:"last_message,omitempty"`
	LastMessageAt   *time.Time `json:"last_message_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// HasParticipant reports whether accountID is one of the two members.
func (r *Room) HasParticipant(accountID string) bool {
	return accountID != "" && (r.ParticipantLow == accountID || r.ParticipantHigh == accountID)
}

// Counterpart returns the member that is not accountID.
func (r *Room) Counterpart(accountID string) string {
	if r.ParticipantLow == accountID {
		return r.ParticipantHigh
	}
	return r.ParticipantLow
}

// Message is immutable once stored, except for IsRead.
type Message struct {
	ID        string             `json:"id"`
	RoomID    string             `json:"room_id"`
	SenderID  string             `json:"sender_id"`
	Body      string             `json:"body"`
	Type      common.MessageType `json:"type"`
	IsRead    bool               `json:"is_read"`
	CreatedAt time.Time          `json:"created_at"`
}

// RoomHandle is what opening a room hands back to the caller.
type RoomHandle struct {
	Room          *Room  `json:"room"`
	CounterpartID string `json:"counterpart_id"`
}

// RoomSummary is one row of an account's room list.
type RoomSummary struct {
	Room        *Room    `json:"room"`
	Counterpart *Account `json:"counterpart"`
	UnreadCount int64    `json:"unread_count"`
}
