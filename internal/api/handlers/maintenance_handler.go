// server/internal/api/handlers/maintenance_handler.go
package handlers

import (
	"net/http"

	"fleet-maintenance-api-server/internal/fleet"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MaintenanceHandler struct {
	Fleet *fleet.Service
	Log   *logrus.Entry
}

func (h *MaintenanceHandler) GetAllPrograms(c *gin.Context) {
	programs, err := h.Fleet.ListMaintenance(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, programs)
}

func (h *MaintenanceHandler) CreateProgram(c *gin.Context) {
	var req fleet.MaintenanceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	program, err := h.Fleet.CreateMaintenance(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

func (h *MaintenanceHandler) DeleteProgram(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Fleet.DeleteMaintenance(c.Request.Context(), id); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
