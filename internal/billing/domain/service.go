package domain

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type CheckoutSessionRequest struct {
	UserID         uuid.UUID
	LocationID     string
	PriceLookupKey string
	CustomerEmail  string
}

type PortalSessionRequest struct {
	UserID     uuid.UUID
	LocationID string
}

// WebhookService ingests provider webhook deliveries. A nil return
// means the delivery is acknowledged; only pre-verification failures
// surface as errors.
type WebhookService interface {
	Ingest(ctx context.Context, payload []byte, headers http.Header) error
}

type Service interface {
	// Status reports the validity boolean for an owned location.
	Status(ctx context.Context, userID uuid.UUID, locationID string) (bool, error)
	// Details returns the mirrored record for an owned location.
	Details(ctx context.Context, userID uuid.UUID, locationID string) (SubscriptionRecord, error)
	// LocationSubscribed is the unauthenticated validity check used by
	// the public listing.
	LocationSubscribed(ctx context.Context, locationID uuid.UUID) (bool, error)

	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (string, error)
	CreatePortalSession(ctx context.Context, req PortalSessionRequest) (string, error)
}
