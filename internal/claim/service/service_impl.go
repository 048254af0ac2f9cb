package service

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/claim/domain"
	itemdomain "github.com/reclaimhq/reclaim/internal/item/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pickupCodeLength = 8

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	ItemRepo itemdomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	itemRepo itemdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("claim.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		itemRepo: p.ItemRepo,
	}
}

func (s *Service) Submit(ctx context.Context, req domain.SubmitClaimRequest) (domain.Claim, error) {
	locationID, itemID, err := parseIDs(req.LocationID, req.ItemID)
	if err != nil {
		return domain.Claim{}, err
	}

	// Claims are only accepted against items the location has published.
	item, err := s.itemRepo.FindPublished(ctx, s.db, locationID, itemID)
	if err != nil {
		return domain.Claim{}, err
	}
	if item == nil {
		return domain.Claim{}, domain.ErrItemNotClaimable
	}

	now := time.Now().UTC()
	claim := domain.Claim{
		ID:           s.genID.Generate(),
		ItemID:       itemID,
		LocationID:   locationID,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		ClaimDetails: strings.TrimSpace(req.ClaimDetails),
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &claim); err != nil {
		return domain.Claim{}, err
	}

	return claim, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, rawLocationID string) ([]domain.Claim, error) {
	locationID, err := parseLocationID(rawLocationID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListOwned(ctx, s.db, userID, locationID)
	if err != nil {
		return nil, err
	}

	claims := make([]domain.Claim, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		claims = append(claims, *row)
	}
	return claims, nil
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateClaimRequest) (domain.Claim, error) {
	locationID, id, err := parseIDs(req.LocationID, req.ID)
	if err != nil {
		return domain.Claim{}, err
	}

	status := strings.TrimSpace(req.Status)
	if !domain.IsValidStatus(status) {
		return domain.Claim{}, domain.ErrInvalidStatus
	}

	denialReason := strings.TrimSpace(req.DenialReason)
	if status == domain.StatusDenied && denialReason == "" {
		return domain.Claim{}, domain.ErrDenialReasonRequired
	}

	existing, err := s.repo.FindOwned(ctx, s.db, req.UserID, locationID, id)
	if err != nil {
		return domain.Claim{}, err
	}
	if existing == nil {
		return domain.Claim{}, domain.ErrNotFound
	}

	claim := *existing
	claim.Status = status
	claim.UpdatedAt = time.Now().UTC()

	switch status {
	case domain.StatusApproved:
		if claim.PickupCode == nil {
			code, err := newPickupCode()
			if err != nil {
				return domain.Claim{}, err
			}
			claim.PickupCode = &code
		}
		claim.DenialReason = nil
	case domain.StatusDenied:
		claim.DenialReason = &denialReason
		claim.PickupCode = nil
	default:
		claim.DenialReason = nil
	}

	affected, err := s.repo.UpdateStatusOwned(ctx, s.db, req.UserID, &claim)
	if err != nil {
		return domain.Claim{}, err
	}
	if affected == 0 {
		return domain.Claim{}, domain.ErrNotFound
	}

	return claim, nil
}

// Ambiguity with 0/O and 1/I is excluded from pickup codes.
const pickupCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newPickupCode() (string, error) {
	buf := make([]byte, pickupCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = pickupCodeAlphabet[int(b)%len(pickupCodeAlphabet)]
	}
	return string(buf), nil
}

func parseLocationID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domain.ErrInvalidLocationID
	}
	return id, nil
}

func parseIDs(rawLocationID, rawID string) (uuid.UUID, snowflake.ID, error) {
	locationID, err := parseLocationID(rawLocationID)
	if err != nil {
		return uuid.Nil, 0, err
	}
	id, err := snowflake.ParseString(strings.TrimSpace(rawID))
	if err != nil || id == 0 {
		return uuid.Nil, 0, domain.ErrInvalidID
	}
	return locationID, id, nil
}
