// server/internal/api/handlers/expense_handler.go
package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"fleet-maintenance-api-server/internal/fleet"
	"fleet-maintenance-api-server/internal/models"
	"fleet-maintenance-api-server/internal/uploads"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	Fleet *fleet.Service
	Log   *logrus.Entry
}

type UpdateBudgetRequest struct {
	Annual models.Number `json:"annual"`
}

func (h *ExpenseHandler) GetAllExpenses(c *gin.Context) {
	list, err := h.Fleet.ListExpenses(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateExpense takes JSON, or a multipart form with an optional receipt file.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req fleet.ExpenseInput
	var receipt *uploads.Upload

	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err)
			return
		}
		header, err := c.FormFile("receipt")
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			badRequest(c, err)
			return
		default:
			files, closeFiles, err := openUploads([]*multipart.FileHeader{header})
			if err != nil {
				badRequest(c, err)
				return
			}
			defer closeFiles()
			receipt = files[0]
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	expense, err := h.Fleet.CreateExpense(c.Request.Context(), req, receipt)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) UpdateBudget(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	budget, err := h.Fleet.SetBudget(c.Request.Context(), req.Annual)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}
