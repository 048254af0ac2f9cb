// Package testdrive periodically wipes the shared demo account's items
// so every prospect starts from a clean desk.
package testdrive

import (
	"context"
	"errors"
	"time"

	authdomain "github.com/reclaimhq/reclaim/internal/auth/domain"
	"github.com/reclaimhq/reclaim/internal/config"
	itemdomain "github.com/reclaimhq/reclaim/internal/item/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Cfg      config.Config
	UserRepo authdomain.Repository
	ItemRepo itemdomain.Repository
	Config   Config `optional:"true"`
}

type Worker struct {
	db       *gorm.DB
	log      *zap.Logger
	email    string
	userRepo authdomain.Repository
	itemRepo itemdomain.Repository
	cfg      Config
}

func NewWorker(p Params) *Worker {
	return &Worker{
		db:       p.DB,
		log:      p.Log.Named("testdrive.reset"),
		email:    p.Cfg.TestDriveUserEmail,
		userRepo: p.UserRepo,
		itemRepo: p.ItemRepo,
		cfg:      p.Config.withDefaults(),
	}
}

func (w *Worker) RunForever(ctx context.Context) {
	if w.email == "" {
		w.log.Info("test drive reset disabled, no demo user configured")
		return
	}

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := w.RunOnce(ctx); err != nil {
			w.log.Warn("test drive reset failed", zap.Error(err))
		}
	}
}

// RunOnce deletes every item the demo user registered. The same
// operation backs the cron endpoint.
func (w *Worker) RunOnce(parentCtx context.Context) error {
	if w.email == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(parentCtx, w.cfg.RunTimeout)
	defer cancel()

	user, err := w.userRepo.FindByEmail(ctx, w.email)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			w.log.Warn("test drive user missing", zap.String("email", w.email))
			return nil
		}
		return err
	}

	deleted, err := w.itemRepo.DeleteByAddedUser(ctx, w.db, user.ID)
	if err != nil {
		return err
	}

	w.log.Info("test drive items reset", zap.Int64("deleted", deleted))
	return nil
}
