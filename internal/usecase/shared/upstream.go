package shared

import (
	"net/http"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

const MsgUnexpectedFormat = "Unexpected response format from Cal.com"

// UpstreamFailure converts a provider error into the status and body mirrored
// to callers: the upstream status when the provider answered, 500 for a
// malformed answer, and fallbackStatus when it could not be reached.
func UpstreamFailure(err error, msg string, fallbackStatus int) error {
	gwErr, ok := infra.AsGatewayError(err)
	if !ok {
		return errs.NewUpstreamError(err, fallbackStatus, msg, "")
	}
	switch gwErr.Kind {
	case infra.KindUpstreamStatus:
		return errs.NewUpstreamError(err, gwErr.Status, msg, gwErr.Body)
	case infra.KindUnexpectedFormat, infra.KindDecode:
		return errs.NewUpstreamError(err, http.StatusInternalServerError, MsgUnexpectedFormat, "")
	default:
		return errs.NewUpstreamError(err, fallbackStatus, msg, "")
	}
}
