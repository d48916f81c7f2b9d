// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"machone/internal/delivery/http/middleware"
	"machone/internal/delivery/http/router/handler"
	"machone/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CatalogHandler    *handler.CatalogHandler
	UserHandler       *handler.UserHandler
	GarageHandler     *handler.GarageHandler
	CollectionHandler *handler.CollectionHandler
	WishlistHandler   *handler.WishlistHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	userHandler       *handler.UserHandler
	garageHandler     *handler.GarageHandler
	collectionHandler *handler.CollectionHandler
	wishlistHandler   *handler.WishlistHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		catalogHandler:    params.CatalogHandler,
		userHandler:       params.UserHandler,
		garageHandler:     params.GarageHandler,
		collectionHandler: params.CollectionHandler,
		wishlistHandler:   params.WishlistHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Catalog routes are public, browsing does not require an account.
	// Adding to the catalog is restricted to administrators.
	catalogGroup := e.Group("/diecasts")
	{
		catalogGroup.GET("/search", r.catalogHandler.Search)
		catalogGroup.GET("/:id", r.catalogHandler.GetByID)
		catalogGroup.POST("", r.catalogHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Collection routes: reading a collection is public, everything else
	// requires authentication
	e.GET("/collections/:id", r.collectionHandler.Get)

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/:id", r.userHandler.GetProfile)
		userGroup.PATCH("/me", r.userHandler.UpdateProfile)
	}

	// Garage routes
	garageGroup := e.Group("/garage")
	garageGroup.Use(r.authMiddleware.Authenticate)
	{
		garageGroup.POST("", r.garageHandler.Add)
		garageGroup.GET("", r.garageHandler.List)
		garageGroup.GET("/cards", r.garageHandler.ListCards)
		garageGroup.GET("/:diecastID", r.garageHandler.Get)
		garageGroup.PATCH("/:diecastID", r.garageHandler.Update)
		garageGroup.DELETE("/:diecastID", r.garageHandler.Remove)
	}

	// Wishlist routes
	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.POST("", r.wishlistHandler.Add)
		wishlistGroup.GET("", r.wishlistHandler.List)
		wishlistGroup.GET("/:diecastID", r.wishlistHandler.Contains)
		wishlistGroup.DELETE("/:diecastID", r.wishlistHandler.Remove)
	}

	// Collection management routes
	collectionGroup := e.Group("/collections")
	collectionGroup.Use(r.authMiddleware.Authenticate)
	{
		collectionGroup.POST("", r.collectionHandler.Create)
		collectionGroup.GET("", r.collectionHandler.ListMine)
		collectionGroup.PATCH("/:id", r.collectionHandler.Update)
		collectionGroup.DELETE("/:id", r.collectionHandler.Delete)
		collectionGroup.POST("/:id/items", r.collectionHandler.AddItem)
		collectionGroup.DELETE("/:id/items/:itemID", r.collectionHandler.RemoveItem)
	}
}
