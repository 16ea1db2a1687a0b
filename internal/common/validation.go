package common

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SendMessageInput is the validated form of a send request.
type SendMessageInput struct {
	RoomID   string `validate:"required"`
	SenderID string `validate:"required"`
	Body     string `validate:"required"`
	Type     MessageType
}

// ValidateSendMessage checks required fields, the body length limit and the type.
// Body must contain something other than whitespace.
func ValidateSendMessage(in SendMessageInput, maxBodyLength int) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if strings.TrimSpace(in.Body) == "" {
		return fmt.Errorf("%w: message body cannot be blank", ErrInvalidArgument)
	}
	if maxBodyLength > 0 {
		if err := validate.Var(in.Body, fmt.Sprintf("max=%d", maxBodyLength)); err != nil {
			return fmt.Errorf("%w: message body exceeds %d characters", ErrInvalidArgument, maxBodyLength)
		}
	}
	if !in.Type.IsValid() {
		return fmt.Errorf("%w: unsupported message type %q", ErrInvalidArgument, in.Type)
	}
	return nil
}
