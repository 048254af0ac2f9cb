package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/reclaimhq/reclaim/internal/interest/domain"
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
		log:   p.Log.Named("interest.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Register(ctx context.Context, email string) (domain.InterestedParty, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return domain.InterestedParty{}, domain.ErrInvalidEmail
	}

	party := domain.InterestedParty{
		ID:           s.genID.Generate(),
		EmailAddress: strings.ToLower(addr.Address),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &party); err != nil {
		return domain.InterestedParty{}, err
	}

	return party, nil
}
