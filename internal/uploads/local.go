// server/internal/uploads/local.go
package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fleet-maintenance-api-server/internal/models"
)

// LocalStore writes files under Dir/<folder>/ and serves them from BaseURL.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *LocalStore) Save(ctx context.Context, folder string, file Upload) (models.FileMeta, error) {
	target := filepath.Join(s.Dir, folder)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return models.FileMeta{}, fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uniqueName(file.OriginalName)
	out, err := os.Create(filepath.Join(target, name))
	if err != nil {
		return models.FileMeta{}, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, file.Body)
	if err != nil {
		return models.FileMeta{}, fmt.Errorf("failed to write upload file: %w", err)
	}

	return models.FileMeta{
		FileName:     name,
		OriginalName: file.OriginalName,
		MimeType:     contentTypeOrDefault(file.ContentType),
		Size:         written,
	}, nil
}

func (s *LocalStore) URL(folder, fileName string) string {
	return s.BaseURL + "/" + folder + "/" + fileName
}
