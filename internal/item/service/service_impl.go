package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/item/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("item.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error) {
	locationID, err := parseLocationID(req.LocationID)
	if err != nil {
		return domain.Item{}, err
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusPending
	}

	now := time.Now().UTC()
	item := domain.Item{
		ID:               s.genID.Generate(),
		LocationID:       locationID,
		AddedByUserID:    req.UserID,
		Title:            strings.TrimSpace(req.Title),
		Category:         req.Category,
		FoundAt:          strings.TrimSpace(req.FoundAt),
		DateFound:        req.DateFound,
		BriefDescription: strings.TrimSpace(req.BriefDescription),
		StaffDetails:     strings.TrimSpace(req.StaffDetails),
		Status:           status,
		IsPublic:         req.IsPublic,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, s.db, &item); err != nil {
		return domain.Item{}, err
	}

	return item, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, rawLocationID string) ([]domain.Item, error) {
	locationID, err := parseLocationID(rawLocationID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListOwned(ctx, s.db, userID, locationID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		items = append(items, *row)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetItemRequest) (domain.Item, error) {
	locationID, id, err := parseIDs(req.LocationID, req.ID)
	if err != nil {
		return domain.Item{}, err
	}

	item, err := s.repo.FindOwned(ctx, s.db, req.UserID, locationID, id)
	if err != nil {
		return domain.Item{}, err
	}
	if item == nil {
		return domain.Item{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateItemRequest) (domain.Item, error) {
	locationID, id, err := parseIDs(req.LocationID, req.ID)
	if err != nil {
		return domain.Item{}, err
	}

	item := domain.Item{
		ID:               id,
		LocationID:       locationID,
		Title:            strings.TrimSpace(req.Title),
		Category:         req.Category,
		FoundAt:          strings.TrimSpace(req.FoundAt),
		DateFound:        req.DateFound,
		BriefDescription: strings.TrimSpace(req.BriefDescription),
		StaffDetails:     strings.TrimSpace(req.StaffDetails),
		Status:           req.Status,
		IsPublic:         req.IsPublic,
		UpdatedAt:        time.Now().UTC(),
	}

	affected, err := s.repo.UpdateOwned(ctx, s.db, req.UserID, &item)
	if err != nil {
		return domain.Item{}, err
	}
	if affected == 0 {
		return domain.Item{}, domain.ErrNotFound
	}

	updated, err := s.repo.FindOwned(ctx, s.db, req.UserID, locationID, id)
	if err != nil {
		return domain.Item{}, err
	}
	if updated == nil {
		return domain.Item{}, domain.ErrNotFound
	}
	return *updated, nil
}

func (s *Service) SetVisibility(ctx context.Context, req domain.SetVisibilityRequest) (domain.Item, error) {
	locationID, id, err := parseIDs(req.LocationID, req.ID)
	if err != nil {
		return domain.Item{}, err
	}

	affected, err := s.repo.SetVisibilityOwned(ctx, s.db, req.UserID, locationID, id, req.IsPublic)
	if err != nil {
		return domain.Item{}, err
	}
	if affected == 0 {
		return domain.Item{}, domain.ErrNotFound
	}

	updated, err := s.repo.FindOwned(ctx, s.db, req.UserID, locationID, id)
	if err != nil {
		return domain.Item{}, err
	}
	if updated == nil {
		return domain.Item{}, domain.ErrNotFound
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, req domain.GetItemRequest) error {
	locationID, id, err := parseIDs(req.LocationID, req.ID)
	if err != nil {
		return err
	}

	affected, err := s.repo.DeleteOwned(ctx, s.db, req.UserID, locationID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) ListPublished(ctx context.Context, rawLocationID string) ([]domain.PublicItem, error) {
	locationID, err := parseLocationID(rawLocationID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListPublished(ctx, s.db, locationID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.PublicItem, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		items = append(items, row.Public())
	}
	return items, nil
}

func (s *Service) GetPublished(ctx context.Context, rawLocationID, rawID string) (domain.PublicItem, error) {
	locationID, id, err := parseIDs(rawLocationID, rawID)
	if err != nil {
		return domain.PublicItem{}, err
	}

	item, err := s.repo.FindPublished(ctx, s.db, locationID, id)
	if err != nil {
		return domain.PublicItem{}, err
	}
	if item == nil {
		return domain.PublicItem{}, domain.ErrNotFound
	}
	return item.Public(), nil
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
