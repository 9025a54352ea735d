package routes

import (
	"strconv"

	_ "casa_em_dia/docs" // This will be auto-generated
	"casa_em_dia/internal/adapter/http/handlers"
	repository2 "casa_em_dia/internal/adapter/persistence/repository"
	"casa_em_dia/internal/domain/entities"
	"casa_em_dia/internal/infrastructure/database"
	"casa_em_dia/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
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
		logrus.WithError(err).Fatal("failed to startup the application")
	}
}

// getRoutes is the composition root: one broadcaster, one gateway, and an
// independent record cache per view area. The caches never talk to each
// other; every mutation propagates through the broadcaster's refetch signal.
func getRoutes() {
	ddb := database.ConnectDynamoDB()
	gateway := repository2.NewServiceRecordDynamoRepository(ddb)

	broadcaster := usecase.NewChangeBroadcaster()
	cycles := entities.DefaultCycleTable()

	recordsCache := usecase.NewRecordCache("records-list", gateway, broadcaster, cycles)
	maintenanceCache := usecase.NewRecordCache("maintenance-dashboard", gateway, broadcaster, cycles)

	recordHandler := handlers.NewServiceRecordHandler(recordsCache)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceCache)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRecordRoutes(v1, recordHandler, maintenanceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
