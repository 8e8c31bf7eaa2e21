package routes

import (
	"meridian_moving/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathJobs      = "/jobs"
	PathDashboard = "/dashboard"
)

func addOfficeRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	jobHandler *handlers.JobHandler,
	intakeHandler *handlers.IntakeHandler,
	dashboardHandler *handlers.DashboardHandler,
	exportHandler *handlers.ExportHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PUT("/:id", jobHandler.UpdateJob)
		jobs.PATCH("/:id/status", jobHandler.ChangeStatus)
		jobs.POST("/:id/finalize", jobHandler.FinalizeJob)
		jobs.POST("/:id/profit", jobHandler.ProfitAnalysis)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
	}

	rg.POST("/pricing", jobHandler.CalculatePricing)

	// Intake listings are back office only; submission stays public.
	rg.GET("/quotes", intakeHandler.ListQuotes)
	rg.GET("/contacts", intakeHandler.ListContacts)

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
		dashboard.GET("/financials", dashboardHandler.GetFinancials)
	}

	rg.GET("/export", exportHandler.ExportReport)
}
