package handlers

import (
	"net/http"

	"github.com/Bipul-Dubey/number-classifier/models"
	"github.com/gin-gonic/gin"
)

const (
	WelcomeMessage = "Welcome to DevOps Stage 1"
	ServiceName    = "number-classifier"
)

type WelcomeHandler struct{}

func NewWelcomeHandler() *WelcomeHandler {
	return &WelcomeHandler{}
}

func (h *WelcomeHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

func (h *WelcomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Service: ServiceName,
	})
}
