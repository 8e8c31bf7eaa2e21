package handlers

import (
	"errors"
	"log"
	request "meridian_moving/internal/adapter/http/dto/request"
	response "meridian_moving/internal/adapter/http/dto/response"
	"meridian_moving/internal/usecase"
	"meridian_moving/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IntakeHandler handles the public marketing site submissions (quote
// requests and contact messages) and their back-office listings.

type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

func (h *IntakeHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[intake][handler] quote create failed err=%v", err)
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

func (h *IntakeHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *IntakeHandler) CreateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateContact(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[intake][handler] contact create failed err=%v", err)
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContact(created))
}

func (h *IntakeHandler) ListContacts(c *gin.Context) {
	contacts, err := h.usecase.ListContacts(c.Request.Context())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContacts(contacts))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput), errors.Is(err, usecase.ErrInvalidContactInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
