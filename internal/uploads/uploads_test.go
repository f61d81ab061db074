package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fleet-maintenance-api-server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads/")

	meta, err := store.Save(context.Background(), FolderDocuments, Upload{
		OriginalName: "Permiso Circulación.PDF",
		ContentType:  "application/pdf",
		Body:         strings.NewReader("%PDF-1.4"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Permiso Circulación.PDF", meta.OriginalName)
	assert.Equal(t, "application/pdf", meta.MimeType)
	assert.Equal(t, int64(8), meta.Size)
	assert.True(t, strings.HasSuffix(meta.FileName, ".pdf"))
	assert.NotContains(t, meta.FileName, "Permiso")

	data, err := os.ReadFile(filepath.Join(dir, FolderDocuments, meta.FileName))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	assert.Equal(t, "/uploads/documents/"+meta.FileName, store.URL(FolderDocuments, meta.FileName))
}

func TestLocalStoreNamesAreUnique(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/uploads")
	a, err := store.Save(context.Background(), FolderReceipts, Upload{OriginalName: "r.jpg", Body: strings.NewReader("a")})
	require.NoError(t, err)
	b, err := store.Save(context.Background(), FolderReceipts, Upload{OriginalName: "r.jpg", Body: strings.NewReader("b")})
	require.NoError(t, err)

	assert.NotEqual(t, a.FileName, b.FileName)
	assert.Equal(t, "application/octet-stream", a.MimeType)
}

func TestS3StoreURL(t *testing.T) {
	s := &S3Store{Bucket: "fleet", Region: "sa-east-1"}
	assert.Equal(t, "https://fleet.s3.sa-east-1.amazonaws.com/receipts/x.jpg", s.URL(FolderReceipts, "x.jpg"))

	s.Endpoint = "http://minio:9000"
	assert.Equal(t, "http://minio:9000/fleet/receipts/x.jpg", s.URL(FolderReceipts, "x.jpg"))

	s.CloudFrontDomain = "cdn.example.com"
	assert.Equal(t, "https://cdn.example.com/receipts/x.jpg", s.URL(FolderReceipts, "x.jpg"))
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.UploadsConfig{Driver: "ftp"})
	assert.Error(t, err)

	store, err := New(context.Background(), config.UploadsConfig{Driver: "local", Dir: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)
}
