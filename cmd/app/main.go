package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tripline/cmd/fx/accommodationfx"
	"tripline/cmd/fx/cityfx"
	"tripline/cmd/fx/controllersfx"
	"tripline/cmd/fx/dbfx"
	"tripline/cmd/fx/directoryfx"
	"tripline/cmd/fx/entertainmentfx"
	"tripline/cmd/fx/logfx"
	"tripline/cmd/fx/routefx"
	"tripline/cmd/fx/travelfx"
	"tripline/cmd/fx/userfx"
	"tripline/internal/api/controllers"
	"tripline/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		logfx.Module,
		dbfx.Module,
		cityfx.Module,
		directoryfx.Module,
		routefx.Module,
		travelfx.Module,
		entertainmentfx.Module,
		accommodationfx.Module,
		userfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cityController *controllers.CityController,
	directoryController *controllers.DirectoryController,
	routeController *controllers.RouteController,
	travelController *controllers.TravelController,
	entertainmentController *controllers.EntertainmentController,
	accommodationController *controllers.AccommodationController,
	userController *controllers.UserController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		cityController,
		directoryController,
		routeController,
		travelController,
		entertainmentController,
		accommodationController,
		userController,
	)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cityController *controllers.CityController,
	directoryController *controllers.DirectoryController,
	routeController *controllers.RouteController,
	travelController *controllers.TravelController,
	entertainmentController *controllers.EntertainmentController,
	accommodationController *controllers.AccommodationController,
	userController *controllers.UserController,
) {

	users := r.Group("/users")
	users.POST("/signup", userController.SignUp)
	users.POST("/login", userController.Login)
	users.GET("/me", middleware.JWTAuthMiddleware(), userController.GetProfile)
	users.GET("", middleware.JWTAuthMiddleware(), userController.GetUsers)
	users.GET("/:userId", middleware.JWTAuthMiddleware(), userController.GetUserByID)

	cities := r.Group("/cities")
	cities.GET("", cityController.GetCities)
	cities.GET("/:cityId", cityController.GetCityByID)
	cities.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), cityController.CreateCity)
	cities.PUT("/:cityId", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), cityController.UpdateCity)
	cities.DELETE("/:cityId", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), cityController.DeleteCity)

	directory := r.Group("/directory")
	directory.GET("", directoryController.GetDirectoryLegs)
	directory.GET("/lookup", directoryController.LookupDirectoryLeg)
	directory.GET("/:legId", directoryController.GetDirectoryLegByID)
	directory.PUT("/:legId/change-transport", directoryController.ChangeTransport)
	directory.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), directoryController.CreateDirectoryLeg)
	directory.PUT("/:legId", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), directoryController.UpdateDirectoryLeg)
	directory.DELETE("/:legId", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), directoryController.DeleteDirectoryLeg)

	routes := r.Group("/routes", middleware.JWTAuthMiddleware())
	routes.GET("", routeController.GetLegs)
	routes.GET("/my", routeController.GetLegsForUser)
	routes.GET("/category/:category", routeController.GetLegsByCategory)
	routes.GET("/travel/:travelId", routeController.GetOrderedPath)
	routes.GET("/:legId", routeController.GetLegByID)
	routes.POST("", routeController.CreateLeg)
	routes.POST("/insert-city", routeController.InsertCity)
	routes.POST("/delete-city", routeController.DeleteCity)
	routes.PUT("/:legId/change-transport", routeController.ChangeTransport)
	routes.PUT("/:legId/extend", routeController.ExtendLeg)
	routes.DELETE("/:legId", routeController.DeleteLeg)

	travels := r.Group("/travels", middleware.JWTAuthMiddleware())
	travels.GET("", travelController.GetTravels)
	travels.GET("/my", travelController.GetMyTravels)
	travels.GET("/search", travelController.SearchTravels)
	travels.GET("/by-leg/:legId", travelController.GetTravelByRouteLeg)
	travels.GET("/:travelId", travelController.GetTravelByID)
	travels.POST("", travelController.CreateTravel)
	travels.POST("/join/:legId", travelController.JoinTravel)
	travels.PUT("/:travelId/complete", travelController.CompleteTravel)
	travels.PUT("/:travelId/cancel", travelController.CancelTravel)
	travels.PUT("/:travelId/users", travelController.LinkUsers)
	travels.PUT("/:travelId/entertainments", travelController.LinkEntertainments)
	travels.PUT("/:travelId/accommodations", travelController.LinkAccommodations)
	travels.GET("/:travelId/users", travelController.GetTravelUsers)
	travels.GET("/:travelId/entertainments", travelController.GetTravelEntertainments)
	travels.GET("/:travelId/accommodations", travelController.GetTravelAccommodations)
	travels.DELETE("/:travelId", travelController.DeleteTravel)

	entertainments := r.Group("/entertainments")
	entertainments.GET("", entertainmentController.GetEntertainments)
	entertainments.GET("/:entertainmentId", entertainmentController.GetEntertainmentByID)
	entertainments.POST("", middleware.JWTAuthMiddleware(), entertainmentController.CreateEntertainment)
	entertainments.PUT("/:entertainmentId", middleware.JWTAuthMiddleware(), entertainmentController.UpdateEntertainment)
	entertainments.DELETE("/:entertainmentId", middleware.JWTAuthMiddleware(), entertainmentController.DeleteEntertainment)

	accommodations := r.Group("/accommodations")
	accommodations.GET("", accommodationController.GetAccommodations)
	accommodations.GET("/:accommodationId", accommodationController.GetAccommodationByID)
	accommodations.POST("", middleware.JWTAuthMiddleware(), accommodationController.CreateAccommodation)
	accommodations.PUT("/:accommodationId", middleware.JWTAuthMiddleware(), accommodationController.UpdateAccommodation)
	accommodations.DELETE("/:accommodationId", middleware.JWTAuthMiddleware(), accommodationController.DeleteAccommodation)
}
