package shared

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyRecord is the state of one Idempotency-Key. Booking is set once
// the record is completed.
type IdempotencyRecord struct {
	Key         uuid.UUID         `json:"key"`
	RequestHash string            `json:"requestHash"`
	Status      IdempotencyStatus `json:"status"`
	Booking     json.RawMessage   `json:"booking,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}
