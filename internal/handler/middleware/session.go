package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/handler/httperr"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/cookie"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase"
)

const ctxSessionIDKey = "wizard_session_id"

type SessionMiddleware struct {
	tokens usecase.SessionTokens
}

func NewSessionMiddleware(tokens usecase.SessionTokens) *SessionMiddleware {
	return &SessionMiddleware{
		tokens: tokens,
	}
}

// RequireSession resolves the wizard session from the session cookie or a
// bearer token, in that order.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Wizard session token required", nil)
			return
		}

		sessionID, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Session token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session token", nil)
			return
		}

		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
