// internal/services/session_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/javajoker/cleantheory-backend/internal/utils"
)

// SessionService issues anonymous cart session tokens.
type SessionService struct {
	tokenTTL time.Duration
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewSessionService(tokenTTL time.Duration) *SessionService {
	return &SessionService{tokenTTL: tokenTTL}
}

func (s *SessionService) CreateSession() (*SessionResponse, error) {
	id := uuid.New()
	token, expiresAt, err := utils.GenerateSessionToken(id, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &SessionResponse{
		SessionID: id.String(),
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	}, nil
}
