package controllersfx

import (
	"go.uber.org/fx"

	"tripline/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCityController),
	fx.Provide(controllers.NewDirectoryController),
	fx.Provide(controllers.NewRouteController),
	fx.Provide(controllers.NewTravelController),
	fx.Provide(controllers.NewEntertainmentController),
	fx.Provide(controllers.NewAccommodationController),
	fx.Provide(controllers.NewUserController))
