// Package router assembles the Gin engine and its route table.
package router

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	animehandler "anime_calendar/internal/feature/animes/transport/handler"
	authhandler "anime_calendar/internal/feature/auth/transport/handler"
	favoritehandler "anime_calendar/internal/feature/favorites/transport/handler"
	jwtmw "anime_calendar/internal/platform/jwt"
	platformhandler "anime_calendar/internal/platform/http/handler"
)

// NewRouter wires all handlers into a Gin engine. Routes fall into three
// tiers: public, authenticated (bearer token), and admin (token + ADMIN
// role).
func NewRouter(auth *authhandler.AuthHandler, animes *animehandler.AnimeHandler,
	favorites *favoritehandler.FavoriteHandler, jwtSecret string,
	ping func(context.Context) error) *gin.Engine {
	r := gin.Default()

	// The calendar frontend is served from another origin.
	r.Use(cors.Default())

	// Health probe, backed by a store ping.
	r.GET("/healthz", platformhandler.Health(ping))

	// Public routes.
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	r.GET("/animes", animes.List)
	r.GET("/animes/:id", animes.Get)

	// Routes that require a valid bearer token.
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired(jwtSecret))
	{
		authed.GET("/auth/me", auth.Me)
		authed.PATCH("/auth/password", auth.UpdatePassword)

		authed.POST("/favorites", favorites.Create)
		authed.GET("/favorites", favorites.List)
		authed.GET("/favorites/check/:animeId", favorites.Check)
		authed.GET("/favorites/anime/:animeId", favorites.GetByAnime)
		authed.GET("/favorites/:id", favorites.Get)
		authed.DELETE("/favorites/anime/:animeId", favorites.RemoveByAnime)
		authed.DELETE("/favorites/:id", favorites.Remove)
	}

	// Catalog writes are restricted to admins.
	admin := r.Group("/animes")
	admin.Use(jwtmw.AuthRequired(jwtSecret), jwtmw.AdminRequired())
	{
		admin.POST("", animes.Create)
		admin.PATCH("/:id", animes.Update)
		admin.DELETE("/:id", animes.Delete)
	}

	return r
}
