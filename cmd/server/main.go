package main

import (
	"context"
	"log"
	"log/slog"

	"anime_calendar/internal/app/router"
	animeadapters "anime_calendar/internal/feature/animes/adapters"
	animehandler "anime_calendar/internal/feature/animes/transport/handler"
	animeusecase "anime_calendar/internal/feature/animes/usecase"
	authadapters "anime_calendar/internal/feature/auth/adapters"
	authhandler "anime_calendar/internal/feature/auth/transport/handler"
	authusecase "anime_calendar/internal/feature/auth/usecase"
	favoriteadapters "anime_calendar/internal/feature/favorites/adapters"
	favoritehandler "anime_calendar/internal/feature/favorites/transport/handler"
	favoriteusecase "anime_calendar/internal/feature/favorites/usecase"
	"anime_calendar/internal/platform/config"
	"anime_calendar/internal/platform/db"
	jwtmw "anime_calendar/internal/platform/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Database: one pooled handle, shared for the process lifetime.
	gormDB, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(gormDB)
	animeRepo := animeadapters.NewAnimeRepository(gormDB)
	favoriteRepo := favoriteadapters.NewFavoriteRepository(gormDB)

	// Usecases
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	animeUC := animeusecase.NewAnimeUsecase(animeRepo)
	favoriteUC := favoriteusecase.NewFavoriteUsecase(favoriteRepo, animeRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	animeH := animehandler.NewAnimeHandler(animeUC)
	favoriteH := favoritehandler.NewFavoriteHandler(favoriteUC)

	ping := func(ctx context.Context) error { return db.Ping(ctx, gormDB) }
	r := router.NewRouter(authH, animeH, favoriteH, cfg.JWTSecret, ping)

	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal(err)
	}
}
