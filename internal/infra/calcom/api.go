package calcom

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
)

const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// ListEventTypes fetches every event type of the account. A body whose
// event_types is not an array is an UNEXPECTED_FORMAT error.
func (c *Client) ListEventTypes(ctx context.Context) ([]EventType, error) {
	resp, err := c.get(ctx, "/event-types", nil)
	if err != nil {
		return nil, err
	}
	if err := c.expectOK(resp, "failed to fetch event types"); err != nil {
		return nil, err
	}

	var env eventTypesEnvelope
	if err := c.decode(resp, &env, "failed to decode event types"); err != nil {
		return nil, err
	}
	raw := bytes.TrimSpace(env.EventTypes)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindUnexpectedFormat,
			"event_types is not an array", resp.status, string(resp.body), nil)
	}

	var types []EventType
	if err := json.Unmarshal(raw, &types); err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecode,
			"failed to decode event types", resp.status, string(resp.body), err)
	}
	return types, nil
}

func (c *Client) GetEventType(ctx context.Context, id int) (*EventType, error) {
	resp, err := c.get(ctx, "/event-types/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	if err := c.expectOK(resp, "failed to fetch event type"); err != nil {
		return nil, err
	}

	var env eventTypeEnvelope
	if err := c.decode(resp, &env, "failed to decode event type"); err != nil {
		return nil, err
	}
	if env.EventType == nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindUnexpectedFormat,
			"event_type missing", resp.status, string(resp.body), nil)
	}
	return env.EventType, nil
}

// ListSlots queries open slots. usernameList is added when an account
// username is configured.
func (c *Client) ListSlots(ctx context.Context, q SlotQuery) (Slots, error) {
	query := url.Values{}
	query.Set("eventTypeId", strconv.Itoa(q.EventTypeID))
	query.Set("startTime", q.Start.UTC().Format(ISOMillis))
	query.Set("endTime", q.End.UTC().Format(ISOMillis))
	query.Set("timeZone", q.TimeZone)
	if q.DurationMinutes > 0 {
		query.Set("duration", strconv.Itoa(q.DurationMinutes))
	}
	if c.username != "" {
		query.Set("usernameList", c.username)
	}

	resp, err := c.get(ctx, "/slots", query)
	if err != nil {
		return Slots{}, err
	}
	if err := c.expectOK(resp, "failed to fetch slots"); err != nil {
		return Slots{}, err
	}

	var env slotsEnvelope
	if err := c.decode(resp, &env, "failed to decode slots"); err != nil {
		return Slots{}, err
	}
	return env.Slots, nil
}

func (c *Client) ListBookings(ctx context.Context, eventTypeID int) ([]Booking, error) {
	query := url.Values{}
	query.Set("eventTypeId", strconv.Itoa(eventTypeID))

	resp, err := c.get(ctx, "/bookings", query)
	if err != nil {
		return nil, err
	}
	if err := c.expectOK(resp, "failed to fetch bookings"); err != nil {
		return nil, err
	}

	var env bookingsEnvelope
	if err := c.decode(resp, &env, "failed to decode bookings"); err != nil {
		return nil, err
	}
	return env.Bookings, nil
}

// CreateBooking posts a booking and returns the provider's JSON verbatim.
// A rejection is an UPSTREAM_STATUS error carrying the raw body.
func (c *Client) CreateBooking(ctx context.Context, payload CreateBookingPayload) (json.RawMessage, error) {
	resp, err := c.post(ctx, "/bookings", nil, payload)
	if err != nil {
		return nil, err
	}
	if err := c.expectOK(resp, "booking rejected"); err != nil {
		return nil, err
	}
	if !json.Valid(resp.body) {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecode,
			"booking response is not JSON", resp.status, string(resp.body), nil)
	}
	return json.RawMessage(resp.body), nil
}
