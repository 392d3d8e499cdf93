package serializer

import (
	"sync"

	"go.uber.org/zap"
)

// ErrorResponse is the minimal error envelope every non-2xx response uses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// TokenResponse is the login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewTokenResponse(token string) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer"}
}

var (
	logMu sync.RWMutex
	log   *zap.Logger
)

// SetLogger wires the package logger used for server-side error detail.
func SetLogger(l *zap.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	log = l
}

// Err builds an error envelope with the given client-facing detail.
func Err(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// ParamErr builds a validation-error envelope carrying the binding error.
func ParamErr(err error) ErrorResponse {
	if err == nil {
		return ErrorResponse{Detail: "invalid request"}
	}
	return ErrorResponse{Detail: err.Error()}
}

// AuthErr is the 401 envelope.
func AuthErr() ErrorResponse {
	return ErrorResponse{Detail: "Not authenticated"}
}

// ForbiddenErr is the 403 envelope.
func ForbiddenErr() ErrorResponse {
	return ErrorResponse{Detail: "Not enough permissions"}
}

// InternalErr logs the real error server-side and returns an opaque 500
// envelope; internals never reach the client.
func InternalErr(err error) ErrorResponse {
	logMu.RLock()
	l := log
	logMu.RUnlock()
	if l != nil && err != nil {
		l.Error("internal error", zap.Error(err))
	}
	return ErrorResponse{Detail: "Internal server error"}
}
