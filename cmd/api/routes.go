package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	catalogDelivery "github.com/minhtran/phimhub/internal/domain/catalog/delivery"
	peopleDelivery "github.com/minhtran/phimhub/internal/domain/people/delivery"
	reelDelivery "github.com/minhtran/phimhub/internal/domain/reels/delivery"
	userDelivery "github.com/minhtran/phimhub/internal/domain/users/delivery"
	"github.com/minhtran/phimhub/pkg/jwt"
	appMiddleware "github.com/minhtran/phimhub/pkg/middleware"
	"github.com/minhtran/phimhub/pkg/response"
)

func setupRoutes(e *echo.Echo, userHandler *userDelivery.UserHandler, catalogHandler *catalogDelivery.CatalogHandler, actorHandler *peopleDelivery.ActorHandler, reelHandler *reelDelivery.ReelHandler, jwtService *jwt.JWTService) {
	// Middleware
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(appMiddleware.RequestID())

	// Custom error handler
	e.HTTPErrorHandler = response.CustomErrorHandler

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status": "ok",
		})
	})

	// API v1 routes
	v1 := e.Group("/api/v1")

	// User routes
	users := v1.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/logout", userHandler.Logout)
		users.POST("/refresh", userHandler.Refresh)

		// Protected routes (require JWT)
		users.GET("/me", userHandler.GetMe, jwtService.JWTMiddleware())
	}

	// Catalog routes (Public)
	movies := v1.Group("/movies")
	{
		movies.GET("", catalogHandler.ListMovies)           // GET /api/v1/movies?page=1&keyword=&category=&country=&year=
		movies.GET("/:slug", catalogHandler.GetMovieDetail) // GET /api/v1/movies/:slug
	}

	v1.GET("/home", catalogHandler.GetHomeRows)
	v1.GET("/genres", catalogHandler.GetCategories)
	v1.GET("/countries", catalogHandler.GetCountries)

	// Actor routes (Public)
	actors := v1.Group("/actors")
	{
		actors.GET("/image", actorHandler.GetActorImage) // GET /api/v1/actors/image?name=
		actors.GET("/:name", actorHandler.GetActor)      // GET /api/v1/actors/:name
	}

	// Reel routes (Public)
	v1.GET("/reels", reelHandler.ListReels)
}
