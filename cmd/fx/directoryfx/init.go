package directoryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripline/internal/repositories"
	"tripline/internal/services"
)

var Module = fx.Provide(provideDirectoryRepo, provideDirectoryService)

func provideDirectoryRepo(db *gorm.DB) repositories.DirectoryRepository {
	return repositories.NewDirectoryRepository(db)
}

func provideDirectoryService(dirRepo repositories.DirectoryRepository) services.DirectoryServiceInterface {
	return services.NewDirectoryService(dirRepo)
}
