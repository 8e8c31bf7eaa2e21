package handlers

import (
	response "meridian_moving/internal/adapter/http/dto/response"
	"meridian_moving/internal/usecase"
	"meridian_moving/pkg"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the back-office overview figures.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

// GetFinancials returns the month by month revenue report. The year defaults
// to the current one when ?year= is absent or unparseable.
func (h *DashboardHandler) GetFinancials(c *gin.Context) {
	year := time.Now().UTC().Year()
	if v, err := strconv.Atoi(c.Query("year")); err == nil && v > 0 {
		year = v
	}

	months, err := h.usecase.Financials(c.Request.Context(), year)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMonthFinancials(months))
}
