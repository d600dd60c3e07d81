package routes

import (
	"net/http"

	"github.com/Bipul-Dubey/number-classifier/handlers"
	"github.com/Bipul-Dubey/number-classifier/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRoutes(hm *handlers.HandlerManager, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
	}))

	r.GET("/", hm.WelcomeHandler.Welcome)
	r.GET("/health", hm.WelcomeHandler.Health)

	api := r.Group("/api")
	{
		api.GET("/classify-number", hm.ClassifyHandler.ClassifyNumber)
	}

	return r
}
