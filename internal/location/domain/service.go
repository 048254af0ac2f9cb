package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	UserID     uuid.UUID
	Name       string
	Address    string
	City       string
	State      string
	PostalCode string
}

type UpdateLocationRequest struct {
	UserID     uuid.UUID
	ID         string
	Name       string
	Address    string
	City       string
	State      string
	PostalCode string
}

type GetLocationRequest struct {
	UserID uuid.UUID
	ID     string
}

type Service interface {
	Create(ctx context.Context, req CreateLocationRequest) (Location, error)
	List(ctx context.Context, userID uuid.UUID) ([]Location, error)
	GetByID(ctx context.Context, req GetLocationRequest) (Location, error)
	Update(ctx context.Context, req UpdateLocationRequest) (Location, error)
	Delete(ctx context.Context, req GetLocationRequest) error
	Exists(ctx context.Context, id string) (bool, error)
}

var (
	ErrInvalidID = errors.New("invalid_location_id")
	ErrNotFound  = errors.New("location_not_found")
)
