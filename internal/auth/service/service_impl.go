package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/auth/domain"
	"github.com/reclaimhq/reclaim/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16

	sessionTokenBytes = 32
	sessionTTL        = 7 * 24 * time.Hour

	confirmationTokenBytes = 32
	confirmationTTL        = 48 * time.Hour

	minPasswordLength = 8
)

type Params struct {
	fx.In

	Config           config.Config
	Log              *zap.Logger
	GenID            *snowflake.Node
	Repo             domain.Repository
	SessionRepo      domain.SessionRepository
	ConfirmationRepo domain.ConfirmationRepository
}

type Service struct {
	cfg              config.Config
	log              *zap.Logger
	genID            *snowflake.Node
	repo             domain.Repository
	sessionRepo      domain.SessionRepository
	confirmationRepo domain.ConfirmationRepository
}

func New(p Params) domain.Service {
	return &Service{
		cfg:              p.Config,
		log:              p.Log.Named("auth.service"),
		genID:            p.GenID,
		repo:             p.Repo,
		sessionRepo:      p.SessionRepo,
		confirmationRepo: p.ConfirmationRepo,
	}
}

func (s *Service) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.SignUpResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	rawToken, err := newToken(confirmationTokenBytes)
	if err != nil {
		return nil, err
	}
	confirmation := &domain.EmailConfirmation{
		ID:        s.genID.Generate(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: now.Add(confirmationTTL),
		CreatedAt: now,
	}
	if err := s.confirmationRepo.CreateConfirmation(ctx, confirmation); err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/auth/confirm?token=%s", s.cfg.AppDomain, rawToken)
	// Mail delivery is not wired yet; the caller gets the link and the
	// raw token stays out of the logs.
	s.log.Info("confirmation issued",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.Time("expires_at", confirmation.ExpiresAt),
	)

	return &domain.SignUpResult{
		User:             user,
		ConfirmationLink: link,
		RawToken:         rawToken,
		ExpiresAt:        confirmation.ExpiresAt,
	}, nil
}

func (s *Service) ConfirmEmail(ctx context.Context, rawToken string) (*domain.User, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, domain.ErrConfirmationNotFound
	}

	confirmation, err := s.confirmationRepo.GetConfirmationByTokenHash(ctx, hashToken(token))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if confirmation.ConsumedAt != nil {
		return nil, domain.ErrConfirmationNotFound
	}
	if now.After(confirmation.ExpiresAt) {
		return nil, domain.ErrConfirmationExpired
	}

	if err := s.confirmationRepo.ConsumeConfirmation(ctx, confirmation.ID, now); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFields(ctx, confirmation.UserID, map[string]any{
		"confirmed_at": now,
		"updated_at":   now,
	}); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, confirmation.UserID)
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if user.ConfirmedAt == nil {
		return nil, domain.ErrEmailNotConfirmed
	}

	return s.issueSession(ctx, user, req.UserAgent, req.IPAddress)
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return domain.ErrInvalidSession
	}

	session, err := s.sessionRepo.GetSessionByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.ErrInvalidSession
		}
		return err
	}

	now := time.Now().UTC()
	return s.sessionRepo.RevokeSession(ctx, session.ID, now)
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.Session, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.sessionRepo.GetSessionByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}

	now := time.Now().UTC()
	if session.RevokedAt != nil {
		return nil, domain.ErrSessionRevoked
	}
	if now.After(session.ExpiresAt) {
		return nil, domain.ErrSessionExpired
	}

	if err := s.sessionRepo.UpdateLastSeen(ctx, session.ID, now); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) StartTestDrive(ctx context.Context, userAgent, ipAddress string) (*domain.LoginResult, error) {
	email := strings.TrimSpace(s.cfg.TestDriveUserEmail)
	if email == "" {
		return nil, domain.ErrTestDriveUnavailable
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn("test drive user missing", zap.String("email", email))
			return nil, domain.ErrTestDriveUnavailable
		}
		return nil, err
	}

	return s.issueSession(ctx, user, userAgent, ipAddress)
}

func (s *Service) issueSession(ctx context.Context, user *domain.User, userAgent, ipAddress string) (*domain.LoginResult, error) {
	rawToken, err := newToken(sessionTokenBytes)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:         s.genID.Generate(),
		UserID:     user.ID,
		TokenHash:  hashToken(rawToken),
		UserAgent:  strings.TrimSpace(userAgent),
		IPAddress:  strings.TrimSpace(ipAddress),
		ExpiresAt:  now.Add(sessionTTL),
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		User:      user,
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
		SessionID: session.ID,
	}, nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(addr.Address)), nil
}

func newToken(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	saltB64 := base64.RawStdEncoding.EncodeToString(salt)
	hashB64 := base64.RawStdEncoding.EncodeToString(hash)
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s", argonMemory, argonTime, argonThreads, saltB64, hashB64), nil
}

func verifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return false
	}

	var memory uint32
	var timeCost uint32
	var threads uint8
	{
		params := strings.Split(parts[3], ",")
		if len(params) != 3 {
			return false
		}

		m, ok := strings.CutPrefix(params[0], "m=")
		if !ok {
			return false
		}
		t, ok := strings.CutPrefix(params[1], "t=")
		if !ok {
			return false
		}
		p, ok := strings.CutPrefix(params[2], "p=")
		if !ok {
			return false
		}

		m64, err := strconv.ParseUint(m, 10, 32)
		if err != nil {
			return false
		}
		t64, err := strconv.ParseUint(t, 10, 32)
		if err != nil {
			return false
		}
		p64, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return false
		}

		memory = uint32(m64)
		timeCost = uint32(t64)
		threads = uint8(p64)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	check := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, check) == 1
}
