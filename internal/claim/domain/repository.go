package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, claim *Claim) error
	ListOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID) ([]*Claim, error)
	FindOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID) (*Claim, error)
	UpdateStatusOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, claim *Claim) (int64, error)
}
