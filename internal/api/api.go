// Package api exposes the HTTP surface: auth, household roster, product
// lookup and ingredient analysis.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fam-nudger/backend/internal/middleware"
	"github.com/fam-nudger/backend/internal/service"
)

// Services bundles the collaborators the HTTP layer needs.
type Services struct {
	Auth     service.IAuthService
	Members  service.IMemberService
	Products service.IProductService
	Analysis service.IAnalysisService
	Images   service.IImageService
	Redis    *redis.Client
}

// SetupAPI registers all routes under /api/v1.
func SetupAPI(router *gin.Engine, svcs Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "ok",
			"taxonomy_version": svcs.Analysis.Engine().TaxonomyVersion(),
		})
	})

	v1 := router.Group("/api/v1")

	authHandler := NewAuthHandler(svcs.Auth)
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(svcs.Auth))
	{
		NewMemberHandler(svcs.Members).RegisterRoutes(protected)
		NewProductHandler(svcs.Products).RegisterRoutes(protected)
		NewImageHandler(svcs.Images).RegisterRoutes(protected)

		analysisHandler := NewAnalysisHandler(svcs.Analysis, svcs.Products)
		limiter := middleware.NewAnalysisRateLimiter(svcs.Redis)
		scored := protected.Group("")
		scored.Use(limiter.RateLimitMiddleware())
		analysisHandler.RegisterRoutes(scored, protected)
	}
}
