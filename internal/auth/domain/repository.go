package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	UpdateLastSeen(ctx context.Context, sessionID snowflake.ID, lastSeen time.Time) error
	RevokeSession(ctx context.Context, sessionID snowflake.ID, revokedAt time.Time) error
}

type ConfirmationRepository interface {
	CreateConfirmation(ctx context.Context, confirmation *EmailConfirmation) error
	GetConfirmationByTokenHash(ctx context.Context, tokenHash string) (*EmailConfirmation, error)
	ConsumeConfirmation(ctx context.Context, confirmationID snowflake.ID, consumedAt time.Time) error
}
