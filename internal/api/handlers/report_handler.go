// server/internal/api/handlers/report_handler.go
package handlers

import (
	"net/http"

	"fleet-maintenance-api-server/internal/fleet"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	Fleet *fleet.Service
	Log   *logrus.Entry
}

func (h *ReportHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.Fleet.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *ReportHandler) GetCostsByTruck(c *gin.Context) {
	rows, err := h.Fleet.CostsByTruck(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
