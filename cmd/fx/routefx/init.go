package routefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripline/internal/repositories"
	"tripline/internal/services"
)

var Module = fx.Provide(provideRouteLegRepo, provideRouteService)

func provideRouteLegRepo(db *gorm.DB) repositories.RouteLegRepository {
	return repositories.NewRouteLegRepository(db)
}

func provideRouteService(
	legRepo repositories.RouteLegRepository,
	dirRepo repositories.DirectoryRepository,
	travelRepo repositories.TravelRepository,
	logger *zap.Logger,
) services.RouteServiceInterface {
	return services.NewRouteService(legRepo, dirRepo, travelRepo, logger)
}
