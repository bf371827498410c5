package readstore

import (
	"context"
	"log/slog"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/calcom"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/converter"
)

type EventTypeAPI interface {
	ListEventTypes(ctx context.Context) ([]calcom.EventType, error)
	GetEventType(ctx context.Context, id int) (*calcom.EventType, error)
}

type CatalogReadStore struct {
	api    EventTypeAPI
	logger *slog.Logger
}

func NewCatalogReadStore(api EventTypeAPI, logger *slog.Logger) *CatalogReadStore {
	return &CatalogReadStore{
		api:    api,
		logger: logger,
	}
}

// FindAll returns every event type, bookable or not.
func (r *CatalogReadStore) FindAll(ctx context.Context) (booking.Catalog, error) {
	types, err := r.api.ListEventTypes(ctx)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("event types fetched", slog.Int("count", len(types)))
	return converter.CatalogFromEventTypes(types), nil
}

// SeatsPerTimeSlot reads the seat capacity of one event type; nil when it is not seat-managed.
func (r *CatalogReadStore) SeatsPerTimeSlot(ctx context.Context, eventTypeID int) (*int, error) {
	et, err := r.api.GetEventType(ctx, eventTypeID)
	if err != nil {
		return nil, err
	}
	return converter.OfferingFromEventType(*et).SeatsPerTimeSlot, nil
}
