package repository

import (
	"context"

	"github.com/reclaimhq/reclaim/internal/interest/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, party *domain.InterestedParty) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO interested_parties (id, email_address, created_at) VALUES (?, ?, ?)`,
		party.ID,
		party.EmailAddress,
		party.CreatedAt,
	).Error
}
