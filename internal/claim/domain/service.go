package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type SubmitClaimRequest struct {
	LocationID   string
	ItemID       string
	FirstName    string
	LastName     string
	Email        string
	ClaimDetails string
}

type UpdateClaimRequest struct {
	UserID       uuid.UUID
	LocationID   string
	ID           string
	Status       string
	DenialReason string
}

type Service interface {
	Submit(ctx context.Context, req SubmitClaimRequest) (Claim, error)
	List(ctx context.Context, userID uuid.UUID, locationID string) ([]Claim, error)
	UpdateStatus(ctx context.Context, req UpdateClaimRequest) (Claim, error)
}

var (
	ErrInvalidID            = errors.New("invalid_claim_id")
	ErrInvalidLocationID    = errors.New("invalid_claim_location_id")
	ErrInvalidStatus        = errors.New("invalid_claim_status")
	ErrDenialReasonRequired = errors.New("denial_reason_required")
	ErrNotFound             = errors.New("claim_not_found")
	ErrItemNotClaimable     = errors.New("item_not_claimable")
)
