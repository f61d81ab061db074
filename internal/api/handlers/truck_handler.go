// server/internal/api/handlers/truck_handler.go
package handlers

import (
	"net/http"

	"fleet-maintenance-api-server/internal/fleet"
	"fleet-maintenance-api-server/internal/models"
	"fleet-maintenance-api-server/internal/uploads"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TruckHandler struct {
	Fleet *fleet.Service
	Log   *logrus.Entry
}

// CreateTruckRequest is the JSON form of a truck creation. Multipart requests carry the
// same fields as form values plus documentsMeta and documents files.
type CreateTruckRequest struct {
	fleet.TruckInput
	Documents []fleet.DocumentInput `json:"documents"`
}

type UpdateTruckRequest struct {
	models.TruckPatch
	DocumentsRemove []models.Number       `json:"documentsRemove"`
	Documents       []fleet.DocumentInput `json:"documents"`
}

func (h *TruckHandler) GetAllTrucks(c *gin.Context) {
	trucks, err := h.Fleet.ListTrucks(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, trucks)
}

func (h *TruckHandler) CreateTruck(c *gin.Context) {
	var req CreateTruckRequest
	var files []*uploads.Upload

	if isMultipart(c) {
		if err := c.ShouldBind(&req.TruckInput); err != nil {
			badRequest(c, err)
			return
		}
		var closeFiles func()
		var err error
		req.Documents, files, closeFiles, err = multipartDocuments(c)
		if err != nil {
			badRequest(c, err)
			return
		}
		defer closeFiles()
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	truck, err := h.Fleet.CreateTruck(c.Request.Context(), req.TruckInput, attachFiles(req.Documents, files))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, truck)
}

func (h *TruckHandler) UpdateTruck(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTruckRequest
	var files []*uploads.Upload

	if isMultipart(c) {
		if err := c.ShouldBind(&req.TruckPatch); err != nil {
			badRequest(c, err)
			return
		}
		req.DocumentsRemove = parseArrayField[models.Number](c.PostForm("documentsRemove"))
		var closeFiles func()
		var err error
		req.Documents, files, closeFiles, err = multipartDocuments(c)
		if err != nil {
			badRequest(c, err)
			return
		}
		defer closeFiles()
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	truck, err := h.Fleet.UpdateTruck(c.Request.Context(), id, req.TruckPatch, toIDs(req.DocumentsRemove), attachFiles(req.Documents, files))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (h *TruckHandler) DeleteTruck(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Fleet.DeleteTruck(c.Request.Context(), id); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TruckHandler) GetTruckDocuments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	docs, err := h.Fleet.TruckDocuments(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// multipartDocuments reads documentsMeta and the documents files of a multipart request.
func multipartDocuments(c *gin.Context) ([]fleet.DocumentInput, []*uploads.Upload, func(), error) {
	metas := parseArrayField[fleet.DocumentInput](c.PostForm("documentsMeta"))
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, func() {}, err
	}
	files, closeFiles, err := openUploads(form.File["documents"])
	if err != nil {
		return nil, nil, func() {}, err
	}
	return metas, files, closeFiles, nil
}

// attachFiles pairs the i-th document with the i-th file. Files without a document are ignored.
func attachFiles(docs []fleet.DocumentInput, files []*uploads.Upload) []fleet.DocumentInput {
	for i := range docs {
		if i < len(files) {
			docs[i].File = files[i]
		}
	}
	return docs
}
