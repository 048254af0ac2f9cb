package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

type SignUpRequest struct {
	Email    string
	Password string
}

// SignUpResult carries the created user and the raw confirmation token.
// The token is surfaced once for delivery and only its hash is stored.
type SignUpResult struct {
	User             *User
	ConfirmationLink string
	RawToken         string
	ExpiresAt        time.Time
}

type LoginRequest struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

type LoginResult struct {
	User      *User
	RawToken  string
	ExpiresAt time.Time
	SessionID snowflake.ID
}

type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (*SignUpResult, error)
	ConfirmEmail(ctx context.Context, rawToken string) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*Session, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	StartTestDrive(ctx context.Context, userAgent, ipAddress string) (*LoginResult, error)
}
