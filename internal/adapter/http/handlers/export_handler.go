package handlers

import (
	"log"
	"meridian_moving/internal/infrastructure/spreadsheet"
	"meridian_moving/internal/usecase"
	"meridian_moving/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams the Excel back-office report.

type ExportHandler struct {
	jobs      usecase.IJobUseCase
	customers usecase.ICustomerUseCase
	exporter  *spreadsheet.Exporter
}

func NewExportHandler(jobs usecase.IJobUseCase, customers usecase.ICustomerUseCase, exporter *spreadsheet.Exporter) *ExportHandler {
	return &ExportHandler{jobs: jobs, customers: customers, exporter: exporter}
}

func (h *ExportHandler) ExportReport(c *gin.Context) {
	ctx := c.Request.Context()

	jobs, err := h.jobs.ListJobs(ctx)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	customers, err := h.customers.ListCustomers(ctx)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	buf, err := h.exporter.Export(jobs, customers)
	if err != nil {
		log.Printf("[export][handler] workbook build failed err=%v", err)
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Could not build report", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := spreadsheet.Filename(time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
