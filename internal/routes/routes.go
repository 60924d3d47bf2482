package routes

import (
	"net/http"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/handlers"
	"chirpynosh_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route. The identity middlewares are
// built here, once, from the token codec and handed to the handlers.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, codec *auth.TokenCodec) {
	authn := &handlers.AuthChain{
		Required: middleware.AuthMiddleware(codec),
		Optional: middleware.OptionalAuthMiddleware(codec),
	}

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	ginRouter.GET("/health", health)

	api := ginRouter.Group("/api/v1")
	{
		api.GET("/health", health)
		appHandlers.Auth.RegisterRoutes(api, authn)
		appHandlers.Partner.RegisterRoutes(api, authn)
		appHandlers.Recipient.RegisterRoutes(api, authn)
		appHandlers.Listing.RegisterRoutes(api, authn)
		appHandlers.Claim.RegisterRoutes(api, authn)
		appHandlers.Notification.RegisterRoutes(api, authn)
		appHandlers.Expiration.RegisterRoutes(api, authn)
	}
}
