package interest

import (
	"github.com/reclaimhq/reclaim/internal/interest/repository"
	"github.com/reclaimhq/reclaim/internal/interest/service"
	"go.uber.org/fx"
)

var Module = fx.Module("interest.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
