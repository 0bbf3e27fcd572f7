package travelfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripline/internal/repositories"
	"tripline/internal/services"
)

var Module = fx.Provide(provideTravelRepo, provideTravelService)

func provideTravelRepo(db *gorm.DB) repositories.TravelRepository {
	return repositories.NewTravelRepository(db)
}

func provideTravelService(
	travelRepo repositories.TravelRepository,
	legRepo repositories.RouteLegRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) services.TravelServiceInterface {
	return services.NewTravelService(travelRepo, legRepo, userRepo, logger)
}
