package router

import (
	"net/http"
	"slices"
	"sort"
	"time"

	"holonet-go/internal/api/handler"
	"holonet-go/internal/api/middleware"
	"holonet-go/internal/config"
	"holonet-go/internal/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers 业务处理器集合
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Favorite *handler.FavoriteHandler
	User     *handler.UserHandler
	Search   *handler.SearchHandler
}

// New 创建带中间件和基础路由的 Gin 引擎
func New(cfg *config.Config, h *Handlers) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(&cfg.CORS)))

	r.GET("/", sitemapHandler(r))
	r.GET("/healthz", healthCheckHandler(&cfg.App))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	Setup(r, h)
	return r
}

// Setup 注册所有业务路由
func Setup(r *gin.Engine, h *Handlers) {
	r.GET("/user", helloHandler)

	// --- 用户模块 ---
	users := r.Group("/users")
	{
		users.GET("", h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.GET("/:id/favorites", h.Favorite.ListByUser)
	}

	// --- 目录模块 ---
	r.GET("/characters", h.Catalog.ListCharacters)
	r.GET("/characters/:id", h.Catalog.GetCharacter)
	r.GET("/planets", h.Catalog.ListPlanets)
	r.GET("/planets/:id", h.Catalog.GetPlanet)
	r.GET("/vehicles", h.Catalog.ListVehicles)
	r.GET("/vehicles/:id", h.Catalog.GetVehicle)

	// --- 收藏模块 ---
	favorite := r.Group("/favorite")
	for _, kind := range model.Kinds {
		favorite.POST("/"+kind.String()+"/:id", h.Favorite.Add(kind))
		favorite.DELETE("/"+kind.String()+"/:id", h.Favorite.Remove(kind))
	}

	// --- 搜索模块 ---
	r.GET("/search", h.Search.Search)
}

func corsConfig(cfg *config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}
	return c
}

// sitemapHandler 列出全部已注册的路由
func sitemapHandler(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		seen := make(map[string]bool)
		endpoints := make([]string, 0)
		for _, route := range r.Routes() {
			if route.Method != http.MethodGet || seen[route.Path] {
				continue
			}
			seen[route.Path] = true
			endpoints = append(endpoints, route.Path)
		}
		sort.Strings(endpoints)
		c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(app *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   app.Name,
			"version":   app.Version,
		})
	}
}

func helloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Hello, this is your GET /user response "})
}
