package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	UserID           uuid.UUID
	LocationID       string
	Title            string
	Category         string
	FoundAt          string
	DateFound        time.Time
	BriefDescription string
	StaffDetails     string
	Status           string
	IsPublic         bool
}

type UpdateItemRequest struct {
	UserID           uuid.UUID
	LocationID       string
	ID               string
	Title            string
	Category         string
	FoundAt          string
	DateFound        time.Time
	BriefDescription string
	StaffDetails     string
	Status           string
	IsPublic         bool
}

type GetItemRequest struct {
	UserID     uuid.UUID
	LocationID string
	ID         string
}

type SetVisibilityRequest struct {
	UserID     uuid.UUID
	LocationID string
	ID         string
	IsPublic   bool
}

type Service interface {
	Create(ctx context.Context, req CreateItemRequest) (Item, error)
	List(ctx context.Context, userID uuid.UUID, locationID string) ([]Item, error)
	GetByID(ctx context.Context, req GetItemRequest) (Item, error)
	Update(ctx context.Context, req UpdateItemRequest) (Item, error)
	SetVisibility(ctx context.Context, req SetVisibilityRequest) (Item, error)
	Delete(ctx context.Context, req GetItemRequest) error

	ListPublished(ctx context.Context, locationID string) ([]PublicItem, error)
	GetPublished(ctx context.Context, locationID, id string) (PublicItem, error)
}

var (
	ErrInvalidID         = errors.New("invalid_item_id")
	ErrInvalidLocationID = errors.New("invalid_item_location_id")
	ErrNotFound          = errors.New("item_not_found")
)
