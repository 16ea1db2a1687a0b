package common

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// DevUserHeader names the caller when authentication is disabled.
const DevUserHeader = "X-User-ID"

var publicMethods = map[string]bool{
	"/grpc.health.v1.Health/Check":                                   true,
	"/grpc.health.v1.Health/Watch":                                   true,
	"/grpc.reflection.v1.ServerReflection/ServerReflectionInfo":      true,
	"/grpc.reflection.v1alpha.ServerReflection/ServerReflectionInfo": true,
}

func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// AccountIDFromContext returns the authenticated caller, if any.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok && id != ""
}

// Authenticator extracts the calling account from a bearer token, or from
// the X-User-ID header when authentication is disabled.
type Authenticator struct {
	jwt     *JWTManager
	enabled bool
}

func NewAuthenticator(jwt *JWTManager, enabled bool) *Authenticator {
	return &Authenticator{jwt: jwt, enabled: enabled}
}

func (a *Authenticator) authenticate(authorization, devUser string) (string, error) {
	if !a.enabled {
		if devUser == "" {
			return "", status.Error(codes.Unauthenticated, "x-user-id required")
		}
		return devUser, nil
	}

	if authorization == "" {
		return "", status.Error(codes.Unauthenticated, "authorization required")
	}
	// authorization = Bearer <token>
	parts := strings.Fields(authorization)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", status.Error(codes.Unauthenticated, "invalid auth header")
	}

	claims, err := a.jwt.ValidToken(parts[1])
	if err != nil {
		return "", status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return claims.AccountID, nil
}

func (a *Authenticator) fromMetadata(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}
	accountID, err := a.authenticate(first(md["authorization"]), first(md[strings.ToLower(DevUserHeader)]))
	if err != nil {
		return nil, err
	}
	return WithAccountID(ctx, accountID), nil
}

// UnaryInterceptor injects the caller identity into the request context.
func (a *Authenticator) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		ctx, err := a.fromMetadata(ctx)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func (a *Authenticator) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if publicMethods[info.FullMethod] {
			return handler(srv, ss)
		}
		ctx, err := a.fromMetadata(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &authedStream{ServerStream: ss, ctx: ctx})
	}
}

// Middleware is the HTTP counterpart of UnaryInterceptor. Browsers cannot
// set headers on WebSocket upgrades, so a token query parameter is accepted too.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if authorization == "" && r.URL.Query().Get("access_token") != "" {
			authorization = "Bearer " + r.URL.Query().Get("access_token")
		}
		accountID, err := a.authenticate(authorization, r.Header.Get(DevUserHeader))
		if err != nil {
			writeAuthError(w, status.Convert(err).Message())
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), accountID)))
	})
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authedStream) Context() context.Context {
	return s.ctx
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
