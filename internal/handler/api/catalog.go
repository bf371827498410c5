package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/response"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List bookable offerings
// @Description Returns every event type of the configured Cal.com account
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.EventTypesResponse
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/event-types [get]
func (h *CatalogHandler) ListEventTypes(c *gin.Context) {
	catalog, err := h.catalogQueries.ListOfferings(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	offerings, err := resdto.FromCatalog(catalog)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.EventTypesResponse{EventTypes: offerings})
}
