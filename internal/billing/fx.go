package billing

import (
	"github.com/reclaimhq/reclaim/internal/billing/repository"
	"github.com/reclaimhq/reclaim/internal/billing/service"
	"github.com/reclaimhq/reclaim/internal/billing/stripe"
	"github.com/reclaimhq/reclaim/internal/billing/webhook"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	fx.Provide(repository.Provide),
	fx.Provide(stripe.NewClient),
	fx.Provide(service.New),
	fx.Provide(webhook.NewService),
)
