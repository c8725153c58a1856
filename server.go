package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/config"
	"bitbucket.org/mmdatafocus/pos_backend/models"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultPort = "8080"

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// correlationMiddleware tags every request with an id for log correlation,
// echoing one the client sent when present.
func correlationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationId := c.GetHeader("X-Correlation-Id")
		if correlationId == "" {
			correlationId = uuid.NewString()
		}
		ctx := utils.SetCorrelationIdInContext(c.Request.Context(), correlationId)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Correlation-Id", correlationId)
		c.Next()
	}
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(correlationMiddleware())

	corsConfig := cors.DefaultConfig()
	// Require an explicit allowlist in production via CORS_ALLOWED_ORIGINS
	// (comma-separated); anything else allows all, for local dev.
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") && allowedOrigins != "" {
		corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	api.POST("/login", loginHandler)

	protected := api.Group("")
	protected.Use(authMiddleware())
	{
		protected.POST("/orders", createOrderHandler)
		protected.GET("/orders", listOrdersHandler)
		protected.GET("/orders/:id", getOrderHandler)
		protected.PUT("/orders/:id", updateOrderHandler)
		protected.DELETE("/orders/:id", deleteOrderHandler)

		protected.POST("/products", createProductHandler)
		protected.GET("/products", listProductsHandler)
		protected.GET("/products/:id", getProductHandler)
		protected.PUT("/products/:id", updateProductHandler)
		protected.DELETE("/products/:id", deleteProductHandler)

		protected.POST("/brands", createBrandHandler)
		protected.GET("/brands", listBrandsHandler)
		protected.GET("/brands/:id", getBrandHandler)
		protected.PUT("/brands/:id", updateBrandHandler)
		protected.DELETE("/brands/:id", deleteBrandHandler)

		protected.POST("/categories", createCategoryHandler)
		protected.GET("/categories", listCategoriesHandler)
		protected.GET("/categories/:id", getCategoryHandler)
		protected.PUT("/categories/:id", updateCategoryHandler)
		protected.DELETE("/categories/:id", deleteCategoryHandler)

		protected.POST("/customers", createCustomerHandler)
		protected.GET("/customers", listCustomersHandler)
		protected.GET("/customers/:id", getCustomerHandler)
		protected.GET("/customers/phone/:phone", getCustomerByPhoneHandler)
		protected.PUT("/customers/:id", updateCustomerHandler)
		protected.DELETE("/customers/:id", deleteCustomerHandler)

		protected.POST("/users", createUserHandler)
		protected.GET("/users", listUsersHandler)
		protected.GET("/users/:id", getUserHandler)
		protected.PUT("/users/:id", updateUserHandler)
		protected.DELETE("/users/:id", deleteUserHandler)

		protected.POST("/reports", reportHandler)
		protected.GET("/reports/export", exportReportHandler)
	}

	return r
}

func main() {
	logger := config.GetLogger()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// Start listening before the DB is up, so health probes pass while the
	// connection retries.
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: newRouter(),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	config.ConnectDatabaseWithRetry()
	config.ConnectRedis()

	if strings.EqualFold(os.Getenv("SKIP_MIGRATIONS"), "true") {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Warn("SKIP_MIGRATIONS=true; skipping AutoMigrate on startup")
	} else if err := models.Migrate(config.GetDB()); err != nil {
		config.LogError(logger, "server.go", "main", "models.Migrate", nil, err)
	}

	logger.WithFields(logrus.Fields{"field": "http", "port": port}).Info("server started")

	select {
	case err := <-serverErrCh:
		if err != nil && err != http.ErrServerClosed {
			config.LogError(logger, "server.go", "main", "srv.ListenAndServe", nil, err)
			os.Exit(1)
		}
	case <-sigCtx.Done():
		// graceful shutdown below
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}
}
