// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodies/internal/delivery/http/middleware"
	"foodies/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	RecipeHandler  *handler.RecipeHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth        *handler.AuthHandler
	users       *handler.UserHandler
	recipes     *handler.RecipeHandler
	catalog     *handler.CatalogHandler
	authn       *middleware.AuthMiddleware
	rateLimiter *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:        params.AuthHandler,
		users:       params.UserHandler,
		recipes:     params.RecipeHandler,
		catalog:     params.CatalogHandler,
		authn:       params.AuthMiddleware,
		rateLimiter: params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth", r.rateLimiter.Limit)
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/refresh-token", r.auth.RefreshToken)
		authGroup.POST("/logout", r.auth.Logout)
	}

	userGroup := api.Group("/users", r.authn.Authenticate)
	{
		userGroup.GET("/me", r.users.Me, r.rateLimiter.Limit)
		userGroup.PATCH("/me", r.users.UpdateMe)
		userGroup.PATCH("/me/avatar", r.users.UpdateAvatar)
		userGroup.GET("/me/following", r.users.MyFollowing)
		userGroup.GET("/me/followers", r.users.MyFollowers)
		userGroup.GET("/:id", r.users.GetByID)
		userGroup.GET("/:id/following", r.users.Following)
		userGroup.GET("/:id/followers", r.users.Followers)
		userGroup.POST("/:id/follow", r.users.Follow)
		userGroup.DELETE("/:id/follow", r.users.Unfollow)
		userGroup.DELETE("/:id/unfollow", r.users.Unfollow)
	}

	recipeGroup := api.Group("/recipes")
	{
		// Static segments are registered before /:id so they win the match.
		recipeGroup.GET("/search", r.recipes.Search)
		recipeGroup.GET("/popular", r.recipes.Popular)
		recipeGroup.GET("/own", r.recipes.Own, r.authn.Authenticate)
		recipeGroup.GET("/favorites", r.recipes.Favorites, r.authn.Authenticate)
		recipeGroup.GET("/:id", r.recipes.GetByID)
		recipeGroup.POST("", r.recipes.Create, r.authn.Authenticate)
		recipeGroup.DELETE("/:id", r.recipes.Delete, r.authn.Authenticate)
		recipeGroup.POST("/:id/favorite", r.recipes.AddFavorite, r.authn.Authenticate)
		recipeGroup.DELETE("/:id/favorite", r.recipes.RemoveFavorite, r.authn.Authenticate)
	}

	api.GET("/areas", r.catalog.Areas)
	api.GET("/categories", r.catalog.Categories)
	api.GET("/ingredients", r.catalog.Ingredients)
	api.GET("/testimonials", r.catalog.Testimonials)
}
