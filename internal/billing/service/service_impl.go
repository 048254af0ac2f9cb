package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/billing/domain"
	"github.com/reclaimhq/reclaim/internal/billing/stripe"
	"github.com/reclaimhq/reclaim/internal/config"
	locationdomain "github.com/reclaimhq/reclaim/internal/location/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Cfg          config.Config
	Repo         domain.Repository
	LocationRepo locationdomain.Repository
	Stripe       *stripe.Client
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	cfg          config.Config
	repo         domain.Repository
	locationRepo locationdomain.Repository
	stripe       *stripe.Client
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("billing.service"),
		cfg:          p.Cfg,
		repo:         p.Repo,
		locationRepo: p.LocationRepo,
		stripe:       p.Stripe,
	}
}

func (s *Service) Status(ctx context.Context, userID uuid.UUID, rawLocationID string) (bool, error) {
	locationID, err := s.ownedLocation(ctx, userID, rawLocationID)
	if err != nil {
		return false, err
	}

	record, err := s.repo.FindByLocation(ctx, s.db, locationID)
	if err != nil {
		return false, err
	}
	return record.ValidAt(time.Now().UTC()), nil
}

func (s *Service) Details(ctx context.Context, userID uuid.UUID, rawLocationID string) (domain.SubscriptionRecord, error) {
	locationID, err := parseLocationID(rawLocationID)
	if err != nil {
		return domain.SubscriptionRecord{}, err
	}

	// The owner join makes a foreign location's subscription read
	// identical to a missing one.
	record, err := s.repo.FindOwnedByLocation(ctx, s.db, userID, locationID)
	if err != nil {
		return domain.SubscriptionRecord{}, err
	}
	if record == nil {
		return domain.SubscriptionRecord{}, domain.ErrNotFound
	}
	return *record, nil
}

func (s *Service) LocationSubscribed(ctx context.Context, locationID uuid.UUID) (bool, error) {
	record, err := s.repo.FindByLocation(ctx, s.db, locationID)
	if err != nil {
		return false, err
	}
	return record.ValidAt(time.Now().UTC()), nil
}

func (s *Service) CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionRequest) (string, error) {
	locationID, err := s.ownedLocation(ctx, req.UserID, req.LocationID)
	if err != nil {
		return "", err
	}

	priceID, err := s.stripe.ResolvePrice(ctx, strings.TrimSpace(req.PriceLookupKey))
	if err != nil {
		return "", err
	}

	successURL := fmt.Sprintf("%s/locations/%s?checkout=success", s.cfg.AppDomain, locationID)
	cancelURL := fmt.Sprintf("%s/locations/%s?checkout=cancel", s.cfg.AppDomain, locationID)

	return s.stripe.CreateCheckoutSession(ctx, priceID, locationID.String(), strings.TrimSpace(req.CustomerEmail), successURL, cancelURL)
}

func (s *Service) CreatePortalSession(ctx context.Context, req domain.PortalSessionRequest) (string, error) {
	locationID, err := parseLocationID(req.LocationID)
	if err != nil {
		return "", err
	}

	record, err := s.repo.FindOwnedByLocation(ctx, s.db, req.UserID, locationID)
	if err != nil {
		return "", err
	}
	if record == nil || record.StripeCustomerID == "" {
		return "", domain.ErrNotFound
	}

	returnURL := fmt.Sprintf("%s/locations/%s", s.cfg.AppDomain, locationID)
	return s.stripe.CreatePortalSession(ctx, record.StripeCustomerID, returnURL)
}

// ownedLocation resolves the path id and confirms the caller owns the
// location. Absent and not-owned both come back as not found.
func (s *Service) ownedLocation(ctx context.Context, userID uuid.UUID, rawLocationID string) (uuid.UUID, error) {
	locationID, err := parseLocationID(rawLocationID)
	if err != nil {
		return uuid.Nil, err
	}

	location, err := s.locationRepo.FindByID(ctx, s.db, userID, locationID)
	if err != nil {
		return uuid.Nil, err
	}
	if location == nil {
		return uuid.Nil, locationdomain.ErrNotFound
	}
	return locationID, nil
}

func parseLocationID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domain.ErrInvalidLocationID
	}
	return id, nil
}
