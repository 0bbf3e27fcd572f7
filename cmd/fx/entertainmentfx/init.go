package entertainmentfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripline/internal/repositories"
	"tripline/internal/services"
)

var Module = fx.Provide(provideEntertainmentRepo, provideEntertainmentService)

func provideEntertainmentRepo(db *gorm.DB) repositories.EntertainmentRepository {
	return repositories.NewEntertainmentRepository(db)
}

func provideEntertainmentService(
	entRepo repositories.EntertainmentRepository,
	cityRepo repositories.CityRepository,
) services.EntertainmentServiceInterface {
	return services.NewEntertainmentService(entRepo, cityRepo)
}
