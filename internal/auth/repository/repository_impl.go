package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/auth/domain"
	pkgdb "github.com/reclaimhq/reclaim/pkg/db"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) (domain.Repository, domain.SessionRepository, domain.ConfirmationRepository) {
	r := &repo{db: db}
	return r, r, r
}

func (r *repo) Create(ctx context.Context, user *domain.User) error {
	// Two signups can race past the service-level FindByEmail check;
	// the unique index on email decides the loser here.
	err := r.db.WithContext(ctx).Create(user).Error
	if pkgdb.IsDuplicateKeyErr(err) {
		return domain.ErrUserExists
	}
	return err
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *repo) CreateSession(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repo) GetSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	var session domain.Session
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repo) UpdateLastSeen(ctx context.Context, sessionID snowflake.ID, lastSeen time.Time) error {
	tx := r.db.WithContext(ctx).Model(&domain.Session{}).Where("id = ?", sessionID).Update("last_seen_at", lastSeen)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *repo) RevokeSession(ctx context.Context, sessionID snowflake.ID, revokedAt time.Time) error {
	tx := r.db.WithContext(ctx).Model(&domain.Session{}).Where("id = ?", sessionID).Update("revoked_at", revokedAt)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *repo) CreateConfirmation(ctx context.Context, confirmation *domain.EmailConfirmation) error {
	return r.db.WithContext(ctx).Create(confirmation).Error
}

func (r *repo) GetConfirmationByTokenHash(ctx context.Context, tokenHash string) (*domain.EmailConfirmation, error) {
	var confirmation domain.EmailConfirmation
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&confirmation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrConfirmationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func (r *repo) ConsumeConfirmation(ctx context.Context, confirmationID snowflake.ID, consumedAt time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.EmailConfirmation{}).
		Where("id = ? AND consumed_at IS NULL", confirmationID).
		Update("consumed_at", consumedAt)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrConfirmationNotFound
	}
	return nil
}
