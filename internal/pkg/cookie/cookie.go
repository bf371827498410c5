package cookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

const (
	WizardSessionCookieName = "wizard_session"
	// the cookie only travels with wizard requests
	wizardCookiePath = "/api/wizard"
)

var sameSiteModes = map[string]http.SameSite{
	"Strict": http.SameSiteStrictMode,
	"Lax":    http.SameSiteLaxMode,
	"None":   http.SameSiteNoneMode,
}

// SetSessionCookie stores the wizard session token for expiry, rounded down
// to whole seconds.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	write(c, cfg, token, int(expiry/time.Second))
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

func GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(WizardSessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	mode, ok := sameSiteModes[cfg.SameSite]
	if !ok {
		mode = http.SameSiteLaxMode
	}
	// SameSite=None is only honoured on secure cookies
	secure := cfg.Secure || mode == http.SameSiteNoneMode

	c.SetSameSite(mode)
	c.SetCookie(WizardSessionCookieName, value, maxAge, wizardCookiePath, cfg.Domain, secure, true)
}
