// server/internal/api/handlers/common.go
package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/models"
	"fleet-maintenance-api-server/internal/uploads"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError writes err with the status it maps to. Unexpected errors are logged
// and reach the client only as a generic message.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseID reads the :id path parameter, answering 400 itself when it is not a number.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id: must be a number"})
		return 0, false
	}
	return id, true
}

func isMultipart(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEMultipartPOSTForm
}

// parseArrayField decodes a JSON array sent as a form value. Anything else is an empty list.
func parseArrayField[T any](value string) []T {
	if value == "" {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil
	}
	return out
}

func toIDs(values []models.Number) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		if id := int64(v); id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// openUploads opens every file header. The returned func closes what was opened.
func openUploads(headers []*multipart.FileHeader) ([]*uploads.Upload, func(), error) {
	var files []multipart.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	out := make([]*uploads.Upload, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, f)
		out = append(out, &uploads.Upload{
			OriginalName: h.Filename,
			ContentType:  h.Header.Get("Content-Type"),
			Size:         h.Size,
			Body:         f,
		})
	}
	return out, closeAll, nil
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
