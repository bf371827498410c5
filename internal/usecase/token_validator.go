package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/jwt"
)

// SessionTokens issues and validates the bearer tokens that identify a wizard session.
type SessionTokens interface {
	IssueToken(sessionID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (uuid.UUID, error)
	TokenDuration() time.Duration
}

type sessionTokensImpl struct {
	jwtService *jwt.Service
}

func NewSessionTokens(jwtService *jwt.Service) SessionTokens {
	return &sessionTokensImpl{
		jwtService: jwtService,
	}
}

func (t *sessionTokensImpl) IssueToken(sessionID uuid.UUID) (string, error) {
	return t.jwtService.GenerateSessionToken(sessionID)
}

func (t *sessionTokensImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	return t.jwtService.ValidateSessionToken(tokenString)
}

func (t *sessionTokensImpl) TokenDuration() time.Duration {
	return t.jwtService.TokenDuration()
}
