package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/billing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const subscriptionColumns = `subscriptions.id, subscriptions.location_id,
	subscriptions.stripe_customer_id, subscriptions.stripe_subscription_id,
	subscriptions.stripe_price_id, subscriptions.current_period_start,
	subscriptions.current_period_end, subscriptions.canceled_at,
	subscriptions.last_event, subscriptions.created_at, subscriptions.updated_at`

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, record *domain.SubscriptionRecord) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO subscriptions (
			id, location_id, stripe_customer_id, stripe_subscription_id, stripe_price_id,
			current_period_start, current_period_end, canceled_at, last_event, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (location_id) DO UPDATE SET
			stripe_customer_id = excluded.stripe_customer_id,
			stripe_subscription_id = excluded.stripe_subscription_id,
			stripe_price_id = excluded.stripe_price_id,
			current_period_start = excluded.current_period_start,
			current_period_end = excluded.current_period_end,
			canceled_at = excluded.canceled_at,
			last_event = excluded.last_event,
			updated_at = excluded.updated_at`,
		record.ID,
		record.LocationID,
		record.StripeCustomerID,
		record.StripeSubscriptionID,
		record.StripePriceID,
		record.CurrentPeriodStart,
		record.CurrentPeriodEnd,
		record.CanceledAt,
		record.LastEvent,
		record.CreatedAt,
		record.UpdatedAt,
	).Error
}

func (r *repo) FindByLocation(ctx context.Context, db *gorm.DB, locationID uuid.UUID) (*domain.SubscriptionRecord, error) {
	var record domain.SubscriptionRecord
	err := db.WithContext(ctx).Raw(
		`SELECT `+subscriptionColumns+`
		 FROM subscriptions WHERE location_id = ?`,
		locationID,
	).Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, nil
	}
	return &record, nil
}

func (r *repo) FindOwnedByLocation(ctx context.Context, db *gorm.DB, userID, locationID uuid.UUID) (*domain.SubscriptionRecord, error) {
	var record domain.SubscriptionRecord
	err := db.WithContext(ctx).Raw(
		`SELECT `+subscriptionColumns+`
		 FROM subscriptions
		 JOIN locations ON locations.id = subscriptions.location_id
		 WHERE subscriptions.location_id = ? AND locations.user_id = ?`,
		locationID,
		userID,
	).Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, nil
	}
	return &record, nil
}
