package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Item) error

	// Owner-scoped reads and writes match on the item, its location and the
	// owning user in one statement. Zero rows means absent or not owned.
	FindOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID) (*Item, error)
	ListOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID) ([]*Item, error)
	UpdateOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, item *Item) (int64, error)
	SetVisibilityOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID, isPublic bool) (int64, error)
	DeleteOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID) (int64, error)

	FindPublished(ctx context.Context, db *gorm.DB, locationID uuid.UUID, id snowflake.ID) (*Item, error)
	ListPublished(ctx context.Context, db *gorm.DB, locationID uuid.UUID) ([]*Item, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Item, error)

	DeleteByAddedUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}
