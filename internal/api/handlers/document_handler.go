// server/internal/api/handlers/document_handler.go
package handlers

import (
	"net/http"

	"fleet-maintenance-api-server/internal/fleet"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DocumentHandler struct {
	Fleet *fleet.Service
	Log   *logrus.Entry
}

func (h *DocumentHandler) GetAllDocuments(c *gin.Context) {
	docs, err := h.Fleet.ListDocuments(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Fleet.DeleteDocument(c.Request.Context(), id); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
