package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/location/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, location *domain.Location) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO locations (id, user_id, name, address, city, state, postal_code, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		location.ID,
		location.UserID,
		location.Name,
		location.Address,
		location.City,
		location.State,
		location.PostalCode,
		location.CreatedAt,
		location.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (*domain.Location, error) {
	var location domain.Location
	err := db.WithContext(ctx).Raw(
		`SELECT id, user_id, name, address, city, state, postal_code, created_at, updated_at
		 FROM locations WHERE user_id = ? AND id = ?`,
		userID,
		id,
	).Scan(&location).Error
	if err != nil {
		return nil, err
	}
	if location.ID == uuid.Nil {
		return nil, nil
	}
	return &location, nil
}

func (r *repo) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*domain.Location, error) {
	var locations []*domain.Location
	err := db.WithContext(ctx).
		Model(&domain.Location{}).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, userID uuid.UUID, location *domain.Location) (int64, error) {
	tx := db.WithContext(ctx).Exec(
		`UPDATE locations
		 SET name = ?, address = ?, city = ?, state = ?, postal_code = ?, updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		location.Name,
		location.Address,
		location.City,
		location.State,
		location.PostalCode,
		location.UpdatedAt,
		userID,
		location.ID,
	)
	return tx.RowsAffected, tx.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (int64, error) {
	tx := db.WithContext(ctx).Exec(
		`DELETE FROM locations WHERE user_id = ? AND id = ?`,
		userID,
		id,
	)
	return tx.RowsAffected, tx.Error
}

func (r *repo) Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Location{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
