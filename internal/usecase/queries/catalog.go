package queries

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/shared"
)

const MsgCatalogFetchFailed = "Failed to fetch event types from Cal.com"

type CatalogQueries interface {
	ListOfferings(ctx context.Context) (booking.Catalog, error)
}

// OfferingSource reads every event type the provider publishes.
type OfferingSource interface {
	FindAll(ctx context.Context) (booking.Catalog, error)
}

// CatalogCache keeps the filtered catalog between requests. A miss is (nil, false, nil).
type CatalogCache interface {
	Get(ctx context.Context) (booking.Catalog, bool, error)
	Set(ctx context.Context, catalog booking.Catalog) error
}

type catalogQueriesImpl struct {
	source OfferingSource
	cache  CatalogCache
	logger *slog.Logger
}

func NewCatalogQueries(source OfferingSource, cache CatalogCache, logger *slog.Logger) CatalogQueries {
	return &catalogQueriesImpl{source: source, cache: cache, logger: logger}
}

// ListOfferings returns the bookable offerings. Cache failures are logged and
// bypassed; provider failures are marked ErrCatalogUnavailable.
func (q *catalogQueriesImpl) ListOfferings(ctx context.Context) (booking.Catalog, error) {
	if cached, ok, err := q.cache.Get(ctx); err != nil {
		q.logger.Warn("catalog cache read failed", slog.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}

	all, err := q.source.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(
			shared.UpstreamFailure(err, MsgCatalogFetchFailed, http.StatusBadGateway),
			errs.ErrCatalogUnavailable)
	}

	catalog := make(booking.Catalog, 0, len(all))
	for _, o := range all {
		if booking.IsBookableSlug(o.Slug) {
			catalog = append(catalog, o)
		}
	}

	if err := q.cache.Set(ctx, catalog); err != nil {
		q.logger.Warn("catalog cache write failed", slog.String("error", err.Error()))
	}
	return catalog, nil
}
