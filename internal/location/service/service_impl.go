package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/location/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("location.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateLocationRequest) (domain.Location, error) {
	now := time.Now().UTC()
	location := domain.Location{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Name:       strings.TrimSpace(req.Name),
		Address:    strings.TrimSpace(req.Address),
		City:       strings.TrimSpace(req.City),
		State:      strings.ToUpper(strings.TrimSpace(req.State)),
		PostalCode: strings.TrimSpace(req.PostalCode),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &location); err != nil {
		return domain.Location{}, err
	}

	return location, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.Location, error) {
	items, err := s.repo.ListByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	locations := make([]domain.Location, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		locations = append(locations, *item)
	}
	return locations, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetLocationRequest) (domain.Location, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Location{}, err
	}

	location, err := s.repo.FindByID(ctx, s.db, req.UserID, id)
	if err != nil {
		return domain.Location{}, err
	}
	if location == nil {
		return domain.Location{}, domain.ErrNotFound
	}

	return *location, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateLocationRequest) (domain.Location, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Location{}, err
	}

	location := domain.Location{
		ID:         id,
		UserID:     req.UserID,
		Name:       strings.TrimSpace(req.Name),
		Address:    strings.TrimSpace(req.Address),
		City:       strings.TrimSpace(req.City),
		State:      strings.ToUpper(strings.TrimSpace(req.State)),
		PostalCode: strings.TrimSpace(req.PostalCode),
		UpdatedAt:  time.Now().UTC(),
	}

	affected, err := s.repo.Update(ctx, s.db, req.UserID, &location)
	if err != nil {
		return domain.Location{}, err
	}
	if affected == 0 {
		return domain.Location{}, domain.ErrNotFound
	}

	updated, err := s.repo.FindByID(ctx, s.db, req.UserID, id)
	if err != nil {
		return domain.Location{}, err
	}
	if updated == nil {
		return domain.Location{}, domain.ErrNotFound
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, req domain.GetLocationRequest) error {
	id, err := parseID(req.ID)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, s.db, req.UserID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Exists(ctx context.Context, rawID string) (bool, error) {
	id, err := parseID(rawID)
	if err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, s.db, id)
}

func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domain.ErrInvalidID
	}
	return id, nil
}
