package domain

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, location *Location) error
	FindByID(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (*Location, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*Location, error)
	Update(ctx context.Context, db *gorm.DB, userID uuid.UUID, location *Location) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (int64, error)
	Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
}
