package routes

import (
	"meridian_moving/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addIntakeRoutes(rg *gin.RouterGroup, intakeHandler *handlers.IntakeHandler, authHandler *handlers.AuthHandler) {
	rg.POST("/quotes", intakeHandler.CreateQuote)
	rg.POST("/contacts", intakeHandler.CreateContact)
	rg.POST("/auth/login", authHandler.Login)
}
