package httperr

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope of every endpoint.
type Response struct {
	Status        int      `json:"-"`
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields,omitempty"`
	Details       any      `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details any) {
	AbortWithResponse(c, err, Response{Status: status, Error: msg, Details: details})
}

func AbortWithResponse(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWithResponse: err cannot be nil")
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// UpstreamDetails mirrors a provider error body: parsed when it is JSON,
// verbatim otherwise, omitted when empty.
func UpstreamDetails(body string) any {
	if body == "" {
		return nil
	}
	if json.Valid([]byte(body)) {
		return json.RawMessage(body)
	}
	return body
}
