package location

import (
	"github.com/reclaimhq/reclaim/internal/location/repository"
	"github.com/reclaimhq/reclaim/internal/location/service"
	"go.uber.org/fx"
)

var Module = fx.Module("location.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
