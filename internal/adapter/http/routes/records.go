package routes

import (
	"net/http"

	"casa_em_dia/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceRecords = "/service-records"
	PathMaintenance    = "/maintenance"
)

func addServiceRecordRoutes(rg *gin.RouterGroup, recordHandler *handlers.ServiceRecordHandler, maintenanceHandler *handlers.MaintenanceHandler) {
	records := rg.Group(PathServiceRecords)
	{
		records.GET("", recordHandler.ListServiceRecords)
		records.POST("", recordHandler.CreateServiceRecord)
		records.PUT("/:id", recordHandler.UpdateServiceRecord)
		records.DELETE("/:id", recordHandler.DeleteServiceRecord)
	}

	maintenance := rg.Group(PathMaintenance)
	{
		// Derivado sob demanda; nada aqui é persistido.
		maintenance.GET("", maintenanceHandler.ListMaintenanceStatuses)
		maintenance.GET("/due", maintenanceHandler.ListDueMaintenance)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
