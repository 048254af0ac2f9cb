package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/claim/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const claimColumns = `item_claims.id, item_claims.item_id, item_claims.location_id,
	item_claims.first_name, item_claims.last_name, item_claims.email,
	item_claims.claim_details, item_claims.status, item_claims.denial_reason,
	item_claims.pickup_code, item_claims.created_at, item_claims.updated_at`

func (r *repo) Insert(ctx context.Context, db *gorm.DB, claim *domain.Claim) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO item_claims (id, item_id, location_id, first_name, last_name, email,
		 claim_details, status, denial_reason, pickup_code, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		claim.ID,
		claim.ItemID,
		claim.LocationID,
		claim.FirstName,
		claim.LastName,
		claim.Email,
		claim.ClaimDetails,
		claim.Status,
		claim.DenialReason,
		claim.PickupCode,
		claim.CreatedAt,
		claim.UpdatedAt,
	).Error
}

func (r *repo) ListOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID) ([]*domain.Claim, error) {
	var claims []*domain.Claim
	err := db.WithContext(ctx).Raw(
		`SELECT `+claimColumns+`
		 FROM item_claims
		 JOIN locations ON locations.id = item_claims.location_id
		 WHERE item_claims.location_id = ? AND locations.user_id = ?
		 ORDER BY item_claims.created_at DESC, item_claims.id DESC`,
		locationID,
		userID,
	).Scan(&claims).Error
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *repo) FindOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID) (*domain.Claim, error) {
	var claim domain.Claim
	err := db.WithContext(ctx).Raw(
		`SELECT `+claimColumns+`
		 FROM item_claims
		 JOIN locations ON locations.id = item_claims.location_id
		 WHERE item_claims.id = ? AND item_claims.location_id = ? AND locations.user_id = ?`,
		id,
		locationID,
		userID,
	).Scan(&claim).Error
	if err != nil {
		return nil, err
	}
	if claim.ID == 0 {
		return nil, nil
	}
	return &claim, nil
}

func (r *repo) UpdateStatusOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, claim *domain.Claim) (int64, error) {
	tx := db.WithContext(ctx).Exec(
		`UPDATE item_claims
		 SET status = ?, denial_reason = ?, pickup_code = ?, updated_at = ?
		 WHERE id = ? AND location_id = ?
		   AND location_id IN (SELECT id FROM locations WHERE user_id = ?)`,
		claim.Status,
		claim.DenialReason,
		claim.PickupCode,
		claim.UpdatedAt,
		claim.ID,
		claim.LocationID,
		userID,
	)
	return tx.RowsAffected, tx.Error
}
