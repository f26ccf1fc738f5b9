// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"displaygram/internal/delivery/http/middleware"
	"displaygram/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ShareHandler   *handler.ShareHandler
	SignupHandler  *handler.SignupHandler
	APIKeyHandler  *handler.APIKeyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	shareHandler   *handler.ShareHandler
	signupHandler  *handler.SignupHandler
	apiKeyHandler  *handler.APIKeyHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		shareHandler:   params.ShareHandler,
		signupHandler:  params.SignupHandler,
		apiKeyHandler:  params.APIKeyHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public share routes, the token is the credential
	postsGroup := api.Group("/share/posts")
	{
		postsGroup.POST("/token", r.shareHandler.IssuePostToken)
		postsGroup.POST("/validate", r.shareHandler.ValidatePostToken)
		postsGroup.GET("/:postId/qrcode", r.shareHandler.PostQRCode)
	}

	collectionsGroup := api.Group("/share/collections")
	{
		collectionsGroup.POST("/token", r.shareHandler.IssueCollectionToken)
		collectionsGroup.POST("/validate", r.shareHandler.ValidateCollectionToken)
		collectionsGroup.POST("/access", r.shareHandler.ValidateCollectionAccess)
		collectionsGroup.GET("/:collectionId/qrcode", r.shareHandler.CollectionQRCode)
	}

	// Public signup routes
	signupGroup := api.Group("/signup")
	{
		signupGroup.POST("/company", r.signupHandler.CreateCompany)
		signupGroup.POST("/request", r.signupHandler.SubmitRequest)
	}

	api.POST("/users/exists", r.userHandler.CheckUserExists)

	// Integration routes that require a signed-in caller
	integrationsGroup := api.Group("/integrations")
	integrationsGroup.Use(r.authMiddleware.Authenticate)
	{
		integrationsGroup.GET("/keys", r.apiKeyHandler.GetKeys)
		integrationsGroup.POST("/keys", r.apiKeyHandler.StoreKey)
		integrationsGroup.DELETE("/keys", r.apiKeyHandler.DeleteKey)
	}
}
