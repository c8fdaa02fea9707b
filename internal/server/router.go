package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/graphask-backend/internal/http/handlers"
	"github.com/yungbote/graphask-backend/internal/http/middleware"
	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log        *logger.Logger
	AskHandler *handlers.AskHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("graphask"))
	router.Use(middleware.RequestLogger(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
	}))

	router.GET("/", handlers.Hello)
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/ask", cfg.AskHandler.Ask)
	router.GET("/ask", cfg.AskHandler.AskQuery)

	return router
}
