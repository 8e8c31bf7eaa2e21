package routes

import (
	"log"
	_ "meridian_moving/docs" // This will be auto-generated
	"meridian_moving/internal/adapter/http/handlers"
	"meridian_moving/internal/adapter/http/middleware"
	"meridian_moving/internal/adapter/persistence/repository"
	"meridian_moving/internal/infrastructure/auth"
	"meridian_moving/internal/infrastructure/database"
	"meridian_moving/internal/infrastructure/spreadsheet"
	"meridian_moving/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	jobRepo := repository.NewJobDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	contactRepo := repository.NewContactDynamoRepository(ddb)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, jobRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, customerRepo)
	intakeUseCase := usecase.NewIntakeUseCase(quoteRepo, contactRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(jobRepo, customerRepo)

	tokens := auth.NewTokenService()

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	intakeHandler := handlers.NewIntakeHandler(intakeUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	exportHandler := handlers.NewExportHandler(jobUseCase, customerUseCase, spreadsheet.NewExporter())
	authHandler := handlers.NewAuthHandler(tokens)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addIntakeRoutes(v1, intakeHandler, authHandler)

	// Back-office routes require a bearer token.
	office := v1.Group("", middleware.RequireAuth(tokens))
	addOfficeRoutes(office, customerHandler, jobHandler, intakeHandler, dashboardHandler, exportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
