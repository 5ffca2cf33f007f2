// internal/router/router.go
package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/javajoker/cleantheory-backend/internal/cart"
	"github.com/javajoker/cleantheory-backend/internal/catalog"
	"github.com/javajoker/cleantheory-backend/internal/config"
	"github.com/javajoker/cleantheory-backend/internal/handlers"
	"github.com/javajoker/cleantheory-backend/internal/middleware"
	"github.com/javajoker/cleantheory-backend/internal/openapi"
	"github.com/javajoker/cleantheory-backend/internal/services"
	"github.com/javajoker/cleantheory-backend/internal/utils"
)

const Version = "1.0.0"

type Dependencies struct {
	Catalog *catalog.Store
	Carts   *cart.Store
	Gateway services.PaymentGateway
}

// Router is the HTTP engine plus the rate limiters whose cleanup loops the
// caller runs for the life of the server.
type Router struct {
	Engine   *gin.Engine
	Limiters []*middleware.RateLimiter
}

func Initialize(cfg *config.Config, deps Dependencies) (*Router, error) {
	policy := cart.Policy{
		TaxRate:  decimal.NewFromFloat(cfg.Checkout.TaxRate),
		Shipping: decimal.NewFromFloat(cfg.Checkout.Shipping),
	}

	// Initialize services
	notificationService := services.NewNotificationService(cfg.Email)
	productService := services.NewProductService(deps.Catalog)
	sessionService := services.NewSessionService(cfg.Session.TokenTTL)
	cartService := services.NewCartService(deps.Carts, deps.Catalog, policy)
	checkoutService := services.NewCheckoutService(deps.Carts, deps.Gateway, policy, notificationService)
	feedbackService := services.NewFeedbackService(cfg.Checkout.FeedbackDelay, notificationService)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	utils.SetJWTSecret(cfg.Session.Secret)

	generalLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	limiters := []*middleware.RateLimiter{generalLimiter}

	checkoutLimit := []gin.HandlerFunc{middleware.SessionRequired()}
	if n := cfg.RateLimit.CheckoutPerMinute; n > 0 {
		checkoutLimiter := middleware.NewRateLimiter(rate.Every(time.Minute/time.Duration(n)), n)
		limiters = append(limiters, checkoutLimiter)
		checkoutLimit = append(checkoutLimit, checkoutLimiter.Middleware())
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	r.Use(generalLimiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  Version,
			"products": deps.Catalog.Len(),
		})
	})

	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/popular", productHandler.GetPopularProducts)
			products.GET("/sale", productHandler.GetSaleProducts)
			products.GET("/:slug", productHandler.GetProduct)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", productHandler.GetCategories)
			categories.GET("/:category/products", productHandler.GetCategoryProducts)
		}

		v1.GET("/search/options", productHandler.GetSearchOptions)

		v1.POST("/sessions", sessionHandler.CreateSession)

		cartGroup := v1.Group("/cart")
		cartGroup.Use(middleware.SessionRequired())
		{
			cartGroup.GET("", cartHandler.GetCart)
			cartGroup.DELETE("", cartHandler.ClearCart)
			cartGroup.GET("/summary", cartHandler.GetSummary)
			cartGroup.POST("/items", cartHandler.AddItem)
			cartGroup.PUT("/items/:product_id", cartHandler.UpdateItem)
			cartGroup.DELETE("/items/:product_id", cartHandler.RemoveItem)
			cartGroup.POST("/open", cartHandler.OpenCart)
			cartGroup.POST("/close", cartHandler.CloseCart)
			cartGroup.POST("/toggle", cartHandler.ToggleCart)
		}

		v1.POST("/checkout", append(checkoutLimit, checkoutHandler.PlaceOrder)...)

		feedback := v1.Group("/feedback")
		feedback.Use(middleware.OptionalSession())
		{
			feedback.GET("/options", feedbackHandler.GetOptions)
			feedback.POST("", feedbackHandler.SubmitFeedback)
		}
	}

	if cfg.Server.ExposeDocs {
		spec, err := openapi.NewGenerator(openapi.Info{
			Title:       "Clean Theory API",
			Version:     Version,
			Description: "Skincare catalog, cart sessions and checkout",
		}).Generate(r.Routes(), apiDocs)
		if err != nil {
			return nil, fmt.Errorf("failed to generate API docs: %w", err)
		}

		docs, err := openapi.NewDocsHandler(spec)
		if err != nil {
			return nil, err
		}
		r.GET("/openapi.json", docs.JSON)
		r.GET("/openapi.yaml", docs.YAML)
	}

	return &Router{Engine: r, Limiters: limiters}, nil
}
