// server/internal/uploads/uploads.go
package uploads

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"fleet-maintenance-api-server/config"
	"fleet-maintenance-api-server/internal/models"

	"github.com/google/uuid"
)

const (
	FolderDocuments = "documents"
	FolderReceipts  = "receipts"
)

// Store keeps uploaded files and knows the public URL of each one.
type Store interface {
	Save(ctx context.Context, folder string, file Upload) (models.FileMeta, error)
	URL(folder, fileName string) string
}

// Upload is one file received from a client.
type Upload struct {
	OriginalName string
	ContentType  string
	Size         int64
	Body         io.Reader
}

// New builds the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.UploadsConfig) (Store, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.Dir, cfg.BaseURL), nil
	case "s3":
		return NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown uploads driver %q", cfg.Driver)
	}
}

// uniqueName keeps the client's extension and nothing else of its name.
func uniqueName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
}

func contentTypeOrDefault(ct string) string {
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}
