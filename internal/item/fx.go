package item

import (
	"github.com/reclaimhq/reclaim/internal/item/repository"
	"github.com/reclaimhq/reclaim/internal/item/service"
	"go.uber.org/fx"
)

var Module = fx.Module("item.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
