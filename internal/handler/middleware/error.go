package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KostasTheodoro/GArts-Edu/internal/handler/httperr"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

const (
	msgInternalError = "Internal server error"
	stackLogLines    = 12
)

// ErrorHandler writes the envelope of the latest public error when the
// handler recorded one without responding, and turns leftover private errors
// into a 500. Server-side failures are logged with their stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			if e.IsType(gin.ErrorTypePublic) {
				resp, ok := e.Meta.(httperr.Response)
				if ok && resp.Status < http.StatusInternalServerError {
					continue
				}
			}
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"error", e.Err.Error(),
				"stack", errs.ExtractStackLines(e.Err, stackLogLines))
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			e := c.Errors[i]
			if !e.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := e.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.Response{Error: msgInternalError})
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := errs.Newf("panic: %v", r)
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"error", err.Error(),
					"stack", errs.ExtractStackLines(err, stackLogLines))

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{Error: msgInternalError})
			}
		}()
		c.Next()
	}
}
