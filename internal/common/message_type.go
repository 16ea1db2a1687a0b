package common

import "strings"

// MessageType is the payload kind of a chat message.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeFile     MessageType = "file"
	MessageTypeLocation MessageType = "location"
)

// String returns the string representation
func (mt MessageType) String() string {
	return string(mt)
}

// IsValid checks if the message type is one of the supported kinds
func (mt MessageType) IsValid() bool {
	switch mt {
	case MessageTypeText, MessageTypeImage, MessageTypeFile, MessageTypeLocation:
		return true
	}
	return false
}

// ParseMessageType normalizes raw input. Empty input means text.
func ParseMessageType(raw string) (MessageType, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return MessageTypeText, true
	}
	mt := MessageType(raw)
	return mt, mt.IsValid()
}

// AttachmentType picks image or file for an uploaded attachment.
func AttachmentType(mimeType string) MessageType {
	if strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return MessageTypeImage
	}
	return MessageTypeFile
}
