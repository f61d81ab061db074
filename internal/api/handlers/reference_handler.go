// server/internal/api/handlers/reference_handler.go
package handlers

import (
	"net/http"

	"fleet-maintenance-api-server/internal/fleet"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ReferenceHandler struct {
	Fleet *fleet.Service
	Log   *logrus.Entry
}

func (h *ReferenceHandler) GetDrivers(c *gin.Context) {
	drivers, err := h.Fleet.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *ReferenceHandler) GetCatalogs(c *gin.Context) {
	catalogs, err := h.Fleet.Catalogs(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, catalogs)
}
