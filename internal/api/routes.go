package api

import (
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zoo_api/internal/api/handlers"
	"zoo_api/internal/middleware"
	"zoo_api/internal/models"
	"zoo_api/internal/service"
	"zoo_api/pkg/config"
	"zoo_api/pkg/metrics"
)

// Dependencies 是建立路由需要的元件，Metrics、DB、RateLimiter 可以是 nil
type Dependencies struct {
	Services    *service.Services
	Logger      *zap.Logger
	Metrics     *metrics.Manager
	DB          handlers.Pinger
	RateLimiter *middleware.RateLimiter
}

// NewRouter 建立 gin engine，掛上中間件與所有路由
func NewRouter(cfg config.ServerConfig, deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(ginzap.Ginzap(deps.Logger, "2006-01-02T15:04:05Z07:00", true))
	r.Use(ginzap.RecoveryWithZap(deps.Logger, true))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware())
	}
	r.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	SetupRoutes(r, deps)
	return r
}

func SetupRoutes(r *gin.Engine, deps Dependencies) {
	// 初始化 handlers
	zooHandler := handlers.NewResourceHandler[models.Zoo, models.ZooInput, models.ZooUpdate](
		deps.Services.ZooService, deps.Logger, deps.Metrics)
	bearHandler := handlers.NewResourceHandler[models.Bear, models.BearInput, models.BearUpdate](
		deps.Services.BearService, deps.Logger, deps.Metrics)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404、405 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	api.GET("/health", healthHandler.Health)

	// 兩個資源使用相同的處理邏輯，只有資料表不同
	zooHandler.Register(api.Group("/zoos"))
	bearHandler.Register(api.Group("/bears"))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
}
