package common

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrResolutionFailure means a target reference could not be mapped to an account.
	ErrResolutionFailure = errors.New("resolution failure")
	// ErrRoomCreateConflict is a lost race on the room pair key. The registry
	// recovers from it and it never leaves the chat service.
	ErrRoomCreateConflict = errors.New("room create conflict")
	// ErrStoreUnavailable is retryable.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// GRPCStatus converts a chat error into a gRPC status error.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(grpcCode(err), err.Error())
}

func grpcCode(err error) codes.Code {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return codes.InvalidArgument
	case errors.Is(err, ErrResolutionFailure):
		return codes.FailedPrecondition
	case errors.Is(err, ErrPermissionDenied):
		return codes.PermissionDenied
	case errors.Is(err, ErrNotFound):
		return codes.NotFound
	case errors.Is(err, ErrStoreUnavailable):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// HTTPStatus returns the response code for a chat error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrResolutionFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
