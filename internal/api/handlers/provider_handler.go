// server/internal/api/handlers/provider_handler.go
package handlers

import (
	"net/http"

	"fleet-maintenance-api-server/internal/fleet"
	"fleet-maintenance-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProviderHandler struct {
	Fleet *fleet.Service
	Log   *logrus.Entry
}

func (h *ProviderHandler) GetAllProviders(c *gin.Context) {
	providers, err := h.Fleet.ListProviders(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var req fleet.ProviderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	provider, err := h.Fleet.CreateProvider(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, provider)
}

func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.ProviderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	provider, err := h.Fleet.UpdateProvider(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Fleet.DeleteProvider(c.Request.Context(), id); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
