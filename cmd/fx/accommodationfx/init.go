package accommodationfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripline/internal/repositories"
	"tripline/internal/services"
)

var Module = fx.Provide(provideAccommodationRepo, provideAccommodationService)

func provideAccommodationRepo(db *gorm.DB) repositories.AccommodationRepository {
	return repositories.NewAccommodationRepository(db)
}

func provideAccommodationService(
	accRepo repositories.AccommodationRepository,
	cityRepo repositories.CityRepository,
) services.AccommodationServiceInterface {
	return services.NewAccommodationService(accRepo, cityRepo)
}
