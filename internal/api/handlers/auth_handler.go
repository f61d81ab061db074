// server/internal/api/handlers/auth_handler.go
package handlers

import (
	"net/http"

	"fleet-maintenance-api-server/internal/api/middleware"
	"fleet-maintenance-api-server/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Auth *auth.Service
	Log  *logrus.Entry
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, user, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.Auth.Logout(middleware.CurrentToken(c))
	c.Status(http.StatusNoContent)
}
