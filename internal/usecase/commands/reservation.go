package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/clock"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/shared"
)

const (
	MsgDuplicateRequest  = "Duplicate booking request with different parameters"
	MsgRequestInProgress = "A booking request with this Idempotency-Key is still being processed"
)

var ErrIdempotencyCheckFailed = errs.New("idempotency check failed")

type CreateReservationResult struct {
	Booking    json.RawMessage
	IsReplayed bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req booking.ReservationRequest, idempotencyKey *uuid.UUID) (*CreateReservationResult, error)
}

type reservationUseCaseImpl struct {
	writer      ReservationWriter
	eventTypes  EventTypeReader
	bookings    queries.BookingSource
	slots       queries.SlotSource
	idempotency shared.IdempotencyStore
	clock       clock.Clock
	provider    config.ProviderConfig
	loc         *time.Location
	idemTTL     time.Duration
	claimTTL    time.Duration
	logger      *slog.Logger
}

func NewReservationUseCase(
	writer ReservationWriter,
	eventTypes EventTypeReader,
	bookings queries.BookingSource,
	slots queries.SlotSource,
	idempotency shared.IdempotencyStore,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		writer:      writer,
		eventTypes:  eventTypes,
		bookings:    bookings,
		slots:       slots,
		idempotency: idempotency,
		clock:       clock,
		provider:    cfg.Provider,
		loc:         cfg.Provider.Location(),
		idemTTL:     cfg.Redis.IdempotencyTTL,
		claimTTL:    cfg.Redis.ClaimTTL,
		logger:      logger,
	}
}

// CreateReservation books one session. With an idempotency key the key is
// claimed before any provider call, so only one of several concurrent
// requests reaches the provider; the others replay its result or are told
// it is still in progress.
func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	req booking.ReservationRequest,
	idempotencyKey *uuid.UUID,
) (*CreateReservationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	requestHash := r.calculateRequestHash(req)
	if idempotencyKey != nil {
		replayed, err := r.handleIdempotency(ctx, *idempotencyKey, requestHash)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &CreateReservationResult{Booking: replayed, IsReplayed: true}, nil
		}
	}

	created, err := r.reserve(ctx, req)
	if err != nil {
		if idempotencyKey != nil {
			r.releaseKey(ctx, *idempotencyKey)
		}
		return nil, err
	}

	if idempotencyKey != nil {
		rec := shared.IdempotencyRecord{
			Key:         *idempotencyKey,
			RequestHash: requestHash,
			Booking:     created,
			CreatedAt:   r.clock.Now(),
		}
		if err := r.idempotency.Complete(context.WithoutCancel(ctx), rec, r.idemTTL); err != nil {
			r.logger.Warn("failed to store idempotency record",
				slog.String("key", idempotencyKey.String()),
				slog.String("error", err.Error()))
		}
	}

	return &CreateReservationResult{Booking: created}, nil
}

func (r *reservationUseCaseImpl) reserve(ctx context.Context, req booking.ReservationRequest) (json.RawMessage, error) {
	start, err := r.resolveStart(ctx, req)
	if err != nil {
		return nil, err
	}
	created, err := r.writer.Create(ctx, r.toPayload(req, start))
	if err != nil {
		return nil, r.translateWriteError(err)
	}
	return created, nil
}

// handleIdempotency claims the key for this request. A nil result with no
// error means the caller owns the key and must complete or release it.
func (r *reservationUseCaseImpl) handleIdempotency(ctx context.Context, key uuid.UUID, requestHash string) (json.RawMessage, error) {
	claimed, err := r.idempotency.Claim(ctx, shared.IdempotencyRecord{
		Key:         key,
		RequestHash: requestHash,
		Status:      shared.IdempotencyProcessing,
		CreatedAt:   r.clock.Now(),
	}, r.claimTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := r.idempotency.Get(ctx, key)
	if err != nil {
		// the holder released the key between the two calls
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.New(MsgRequestInProgress), errs.ErrIdempotencyInProgress)
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, errs.Mark(errs.New(MsgDuplicateRequest), errs.ErrDuplicateReservation)
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		return existing.Booking, nil
	case shared.IdempotencyProcessing:
		return nil, errs.Mark(errs.New(MsgRequestInProgress), errs.ErrIdempotencyInProgress)
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency status %q", existing.Status), ErrIdempotencyCheckFailed)
	}
}

func (r *reservationUseCaseImpl) releaseKey(ctx context.Context, key uuid.UUID) {
	if err := r.idempotency.Release(context.WithoutCancel(ctx), key); err != nil {
		r.logger.Warn("failed to release idempotency key",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
	}
}

// resolveStart picks the start instant. Individual bookings use the chosen
// local date and time; group bookings join an existing seated booking or
// take the earliest open slot within the horizon.
func (r *reservationUseCaseImpl) resolveStart(ctx context.Context, req booking.ReservationRequest) (time.Time, error) {
	if !req.IsGroup() {
		return req.IndividualStart(r.loc)
	}

	seats, err := r.eventTypes.SeatsPerTimeSlot(ctx, req.EventTypeID)
	if err != nil {
		r.logger.Warn("event type lookup failed, treating as unseated",
			slog.Int("event_type_id", req.EventTypeID),
			slog.String("error", err.Error()))
		seats = nil
	}

	if seats != nil && *seats > 1 {
		existing, err := r.bookings.FindByEventType(ctx, req.EventTypeID)
		if err != nil {
			r.logger.Warn("existing group bookings lookup failed",
				slog.Int("event_type_id", req.EventTypeID),
				slog.String("error", err.Error()))
		} else if start, ok := booking.FirstActiveStart(existing, req.EventTypeID); ok {
			r.logger.Info("joining existing group booking",
				slog.Int("event_type_id", req.EventTypeID),
				slog.Time("start", start))
			return start, nil
		}
	}

	return r.earliestGroupSlot(ctx, req)
}

func (r *reservationUseCaseImpl) earliestGroupSlot(ctx context.Context, req booking.ReservationRequest) (time.Time, error) {
	now := r.clock.Now()
	window := queries.SlotWindow{
		EventTypeID:     req.EventTypeID,
		Start:           now,
		End:             now.AddDate(0, 0, r.provider.GroupHorizonDays),
		TimeZone:        r.loc.String(),
		DurationMinutes: req.Duration.Minutes(),
	}

	noSlots := errs.Mark(errs.New(booking.MsgNoGroupSlots), errs.ErrNoSlotsAvailable)

	set, err := r.slots.FindSlots(ctx, window)
	if err != nil {
		r.logger.Warn("group slot lookup failed",
			slog.Int("event_type_id", req.EventTypeID),
			slog.String("error", err.Error()))
		return time.Time{}, noSlots
	}

	start, ok := booking.EarliestSlot(set.Grouped(r.loc))
	if !ok {
		return time.Time{}, noSlots
	}
	return start, nil
}

func (r *reservationUseCaseImpl) toPayload(req booking.ReservationRequest, start time.Time) ReservationPayload {
	return ReservationPayload{
		EventTypeID:     req.EventTypeID,
		Start:           start,
		AttendeeName:    req.AttendeeName(),
		Email:           req.Email,
		Location:        req.Location,
		Phone:           req.Phone,
		Notes:           req.Notes,
		DurationMinutes: req.Duration.Minutes(),
		TimeZone:        r.loc.String(),
		Language:        r.provider.BookingLanguage,
	}
}

// translateWriteError maps provider rejections to the booker-facing message
// and keeps the upstream status and body.
func (r *reservationUseCaseImpl) translateWriteError(err error) error {
	gwErr, ok := infra.AsGatewayError(err)
	if ok && gwErr.Kind == infra.KindUpstreamStatus {
		providerMsg, _ := gwErr.ProviderMessage()
		return errs.Mark(
			errs.NewUpstreamError(err, gwErr.Status, booking.RejectionMessage(providerMsg), gwErr.Body),
			errs.ErrReservationRejected)
	}
	return errs.Mark(
		errs.NewUpstreamError(err, http.StatusBadGateway, booking.MsgTransportFailed, ""),
		errs.ErrReservationTransportFailed)
}

func (r *reservationUseCaseImpl) calculateRequestHash(req booking.ReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
