package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/item/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const ownedItemColumns = `items.id, items.location_id, items.added_by_user_id, items.title,
	items.category, items.found_at, items.date_found, items.brief_description,
	items.staff_details, items.status, items.is_public, items.created_at, items.updated_at`

func (r *repo) Insert(ctx context.Context, db *gorm.DB, item *domain.Item) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO items (id, location_id, added_by_user_id, title, category, found_at, date_found,
		 brief_description, staff_details, status, is_public, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.LocationID,
		item.AddedByUserID,
		item.Title,
		item.Category,
		item.FoundAt,
		item.DateFound,
		item.BriefDescription,
		item.StaffDetails,
		item.Status,
		item.IsPublic,
		item.CreatedAt,
		item.UpdatedAt,
	).Error
}

func (r *repo) FindOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID) (*domain.Item, error) {
	var item domain.Item
	err := db.WithContext(ctx).Raw(
		`SELECT `+ownedItemColumns+`
		 FROM items
		 JOIN locations ON locations.id = items.location_id
		 WHERE items.id = ? AND items.location_id = ? AND locations.user_id = ?`,
		id,
		locationID,
		userID,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) ListOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID) ([]*domain.Item, error) {
	var items []*domain.Item
	err := db.WithContext(ctx).Raw(
		`SELECT `+ownedItemColumns+`
		 FROM items
		 JOIN locations ON locations.id = items.location_id
		 WHERE items.location_id = ? AND locations.user_id = ?
		 ORDER BY items.created_at DESC, items.id DESC`,
		locationID,
		userID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, item *domain.Item) (int64, error) {
	tx := db.WithContext(ctx).Exec(
		`UPDATE items
		 SET title = ?, category = ?, found_at = ?, date_found = ?, brief_description = ?,
		     staff_details = ?, status = ?, is_public = ?, updated_at = ?
		 WHERE id = ? AND location_id = ?
		   AND location_id IN (SELECT id FROM locations WHERE user_id = ?)`,
		item.Title,
		item.Category,
		item.FoundAt,
		item.DateFound,
		item.BriefDescription,
		item.StaffDetails,
		item.Status,
		item.IsPublic,
		item.UpdatedAt,
		item.ID,
		item.LocationID,
		userID,
	)
	return tx.RowsAffected, tx.Error
}

func (r *repo) SetVisibilityOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID, isPublic bool) (int64, error) {
	tx := db.WithContext(ctx).Exec(
		`UPDATE items
		 SET is_public = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND location_id = ?
		   AND location_id IN (SELECT id FROM locations WHERE user_id = ?)`,
		isPublic,
		id,
		locationID,
		userID,
	)
	return tx.RowsAffected, tx.Error
}

func (r *repo) DeleteOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID) (int64, error) {
	tx := db.WithContext(ctx).Exec(
		`DELETE FROM items
		 WHERE id = ? AND location_id = ?
		   AND location_id IN (SELECT id FROM locations WHERE user_id = ?)`,
		id,
		locationID,
		userID,
	)
	return tx.RowsAffected, tx.Error
}

func (r *repo) FindPublished(ctx context.Context, db *gorm.DB, locationID uuid.UUID, id snowflake.ID) (*domain.Item, error) {
	var item domain.Item
	err := db.WithContext(ctx).Raw(
		`SELECT `+ownedItemColumns+`
		 FROM items
		 WHERE items.id = ? AND items.location_id = ? AND items.is_public = ?`,
		id,
		locationID,
		true,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) ListPublished(ctx context.Context, db *gorm.DB, locationID uuid.UUID) ([]*domain.Item, error) {
	var items []*domain.Item
	err := db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("location_id = ? AND is_public = ?", locationID, true).
		Order("created_at desc, id desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Item, error) {
	var item domain.Item
	err := db.WithContext(ctx).Raw(
		`SELECT `+ownedItemColumns+` FROM items WHERE items.id = ?`,
		id,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) DeleteByAddedUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	tx := db.WithContext(ctx).Exec(
		`DELETE FROM items WHERE added_by_user_id = ?`,
		userID,
	)
	return tx.RowsAffected, tx.Error
}
