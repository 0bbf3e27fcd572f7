package cityfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripline/internal/repositories"
	"tripline/internal/services"
)

var Module = fx.Provide(provideCityRepo, provideCityService)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideCityService(cityRepo repositories.CityRepository, logger *zap.Logger) services.CityServiceInterface {
	return services.NewCityService(cityRepo, logger)
}
