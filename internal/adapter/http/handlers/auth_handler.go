package handlers

import (
	"errors"
	"log"
	request "meridian_moving/internal/adapter/http/dto/request"
	response "meridian_moving/internal/adapter/http/dto/response"
	"meridian_moving/internal/infrastructure/auth"
	"meridian_moving/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues the bearer tokens used by the back-office routes.

type AuthHandler struct {
	tokens *auth.TokenService
}

func NewAuthHandler(tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, expiresAt, err := h.tokens.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			appErr := pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[auth][handler] login failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
