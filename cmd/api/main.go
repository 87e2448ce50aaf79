package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	catalogDelivery "github.com/minhtran/phimhub/internal/domain/catalog/delivery"
	catalogRepository "github.com/minhtran/phimhub/internal/domain/catalog/repository"
	catalogUsecase "github.com/minhtran/phimhub/internal/domain/catalog/usecase"
	peopleDelivery "github.com/minhtran/phimhub/internal/domain/people/delivery"
	peopleRepository "github.com/minhtran/phimhub/internal/domain/people/repository"
	peopleUsecase "github.com/minhtran/phimhub/internal/domain/people/usecase"
	"github.com/minhtran/phimhub/internal/domain/reels"
	reelDelivery "github.com/minhtran/phimhub/internal/domain/reels/delivery"
	reelUsecase "github.com/minhtran/phimhub/internal/domain/reels/usecase"
	"github.com/minhtran/phimhub/internal/domain/users"
	userDelivery "github.com/minhtran/phimhub/internal/domain/users/delivery"
	userRepository "github.com/minhtran/phimhub/internal/domain/users/repository"
	userUsecase "github.com/minhtran/phimhub/internal/domain/users/usecase"
	"github.com/minhtran/phimhub/internal/platform/cache"
	"github.com/minhtran/phimhub/internal/platform/config"
	"github.com/minhtran/phimhub/internal/platform/database"
	"github.com/minhtran/phimhub/internal/platform/storage"
	"github.com/minhtran/phimhub/pkg/jwt"
	customValidator "github.com/minhtran/phimhub/pkg/validator"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const clipURLPrefix = "/videos"

func main() {
	// Setup zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	zlog.Info().Msg("Starting phimhub API server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitMySQL(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&users.User{}, &users.RefreshToken{}); err != nil {
		log.Fatalf("Failed to migrate user tables: %v", err)
	}

	ctx := context.Background()

	// Page cache: in-memory unless Redis is configured as the backend.
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	var pageCache catalogUsecase.PageCache
	if cfg.Cache.Backend == "redis" {
		redisClient, err := cache.InitRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		pageCache = cache.NewRedisPageCache(redisClient, ttl)
		zlog.Info().Msg("Redis page cache initialized")
	} else {
		pageCache = cache.NewMemoryPageCache(ttl)
	}

	// Clip store for the reels feature: local directory or MinIO bucket.
	var clipStore reelUsecase.ClipStore
	if cfg.Reels.Source == "minio" {
		minioClient, err := storage.InitMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
		clipStore = storage.NewMinIOClipStore(minioClient, cfg.MinIO.BucketClips)
		zlog.Info().Msg("MinIO clip store initialized")
	} else {
		clipStore = storage.NewLocalClipStore(cfg.Reels.Dir, clipURLPrefix)
	}

	// Upstream clients
	ophimClient := catalogRepository.NewOphimClient(
		cfg.Upstream.BaseURL,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
	)
	tmdbClient := peopleRepository.NewTMDBClient(
		cfg.TMDB.BaseURL,
		cfg.TMDB.ImageBaseURL,
		cfg.TMDB.APIKey,
		cfg.TMDB.Language,
		time.Duration(cfg.TMDB.TimeoutSeconds)*time.Second,
	)

	jwtService := jwt.NewJWTService(cfg.JWT.SecretKey)

	// Repositories and use cases
	userRepo := userRepository.NewUserRepository(db)
	userUC := userUsecase.NewUserUsecase(userRepo, jwtService)
	catalogUC := catalogUsecase.NewCatalogUsecase(ophimClient, pageCache)
	peopleUC := peopleUsecase.NewPeopleUsecase(tmdbClient)
	reelUC := reelUsecase.NewReelUsecase(clipStore, peopleUC, catalogUC, clipTable(cfg.Reels.Clips))

	// Initialize Echo
	e := echo.New()
	e.HideBanner = false
	e.Validator = customValidator.New()

	// Handlers
	userHandler := userDelivery.NewUserHandler(ctx, userUC)
	catalogHandler := catalogDelivery.NewCatalogHandler(ctx, catalogUC)
	actorHandler := peopleDelivery.NewActorHandler(ctx, peopleUC)
	reelHandler := reelDelivery.NewReelHandler(ctx, reelUC)

	setupRoutes(e, userHandler, catalogHandler, actorHandler, reelHandler, jwtService)

	if cfg.Reels.Source != "minio" {
		e.Static(clipURLPrefix, cfg.Reels.Dir)
	}

	go func() {
		port := cfg.Server.Port
		if port == "" {
			port = "8080"
		}

		zlog.Info().Str("port", port).Msg("Starting HTTP server")
		if err := e.Start(":" + port); err != nil {
			zlog.Info().Err(err).Msg("Server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zlog.Info().Msg("Server exited successfully")
}

// clipTable converts the configured clip list into the lookup table the
// reel usecase consumes.
func clipTable(clips []config.ReelClipConfig) map[string]reels.ClipInfo {
	table := make(map[string]reels.ClipInfo, len(clips))
	for _, clip := range clips {
		table[clip.File] = reels.ClipInfo{
			ActorName: clip.ActorName,
			MovieName: clip.MovieName,
			MovieSlug: clip.MovieSlug,
		}
	}
	return table
}
