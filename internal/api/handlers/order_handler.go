// server/internal/api/handlers/order_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"fleet-maintenance-api-server/internal/fleet"
	"fleet-maintenance-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	Fleet *fleet.Service
	Log   *logrus.Entry
}

func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.Fleet.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.Fleet.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req fleet.OrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	order, err := h.Fleet.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	order, err := h.Fleet.UpdateOrder(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Fleet.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportOrder downloads the order as a CSV attachment.
func (h *OrderHandler) ExportOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	filename, data, err := h.Fleet.ExportOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
