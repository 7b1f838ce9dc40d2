// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vinyl/internal/delivery/http/middleware"
	"vinyl/internal/delivery/http/router/handler"
	"vinyl/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler and middleware the router registers.
type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	AlbumHandler  *handler.AlbumHandler
	ReviewHandler *handler.ReviewHandler

	AuthMiddleware *middleware.AuthMiddleware
	SessionGuard   *middleware.SessionGuard
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Logout reads its credentials directly, so it stays
	// outside the guarded groups and succeeds even with stale ones.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	// Public catalog reads.
	e.GET("/artists", r.params.AlbumHandler.ListArtists)
	e.GET("/artists/:artistID", r.params.AlbumHandler.GetArtist)
	e.GET("/artists/:artistID/albums", r.params.AlbumHandler.ListAlbumsByArtist)
	e.GET("/albums", r.params.AlbumHandler.ListAlbums)
	e.GET("/albums/:albumID", r.params.AlbumHandler.GetAlbum)
	e.GET("/albums/:albumID/reviews", r.params.ReviewHandler.ListByAlbum)
	e.GET("/users/:username", r.params.UserHandler.GetUserByUsername)

	// The browser surface authenticates with the bound session cookie,
	// the API surface with a bearer token. Same routes, same handlers.
	webGroup := e.Group("", r.params.SessionGuard.Authenticate)
	r.registerProtected(webGroup)

	apiGroup := e.Group("/api/v1", r.params.AuthMiddleware.Authenticate)
	r.registerProtected(apiGroup)
}

// registerProtected mounts the routes that require an authenticated caller.
func (r *router) registerProtected(g *echo.Group) {
	g.GET("/me", r.params.UserHandler.GetProfile)
	g.PUT("/me", r.params.UserHandler.UpdateProfile)
	g.DELETE("/me", r.params.UserHandler.DeleteAccount)
	g.GET("/me/favorites", r.params.AlbumHandler.ListFavorites)

	g.POST("/users/:userID/follow", r.params.UserHandler.ToggleFollow)
	g.DELETE("/users/:userID/follow", r.params.UserHandler.Unfollow)
	g.GET("/users/:userID/follow", r.params.UserHandler.GetFollowState)

	g.PUT("/albums/:albumID/favorite", r.params.AlbumHandler.AddFavorite)
	g.DELETE("/albums/:albumID/favorite", r.params.AlbumHandler.RemoveFavorite)

	g.POST("/albums/:albumID/reviews", r.params.ReviewHandler.Create)
	g.PUT("/reviews/:reviewID", r.params.ReviewHandler.Update)
	g.DELETE("/reviews/:reviewID", r.params.ReviewHandler.Delete)

	g.DELETE("/admin/users/:userID",
		r.params.UserHandler.DeleteUser,
		r.params.AuthMiddleware.RequireRole(string(entity.RoleAdmin)))
}
