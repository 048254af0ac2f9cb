package auth

import (
	"github.com/reclaimhq/reclaim/internal/auth/repository"
	"github.com/reclaimhq/reclaim/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
