package fleet

import (
	"context"
	"sync"
	"testing"
	"time"

	"fleet-maintenance-api-server/internal/database"
	"fleet-maintenance-api-server/internal/uploads"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingNotifier) Publish(eventType string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
}

func (r *recordingNotifier) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func newTestService(t *testing.T) (*Service, *database.Repository, *recordingNotifier) {
	t.Helper()
	repo := database.NewMemoryRepository(15000000)
	notifier := &recordingNotifier{}
	logger, _ := test.NewNullLogger()
	svc := NewService(repo, uploads.NewLocalStore(t.TempDir(), "/uploads"), notifier, time.UTC, logrus.NewEntry(logger))
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, notifier
}

func day(offset int) string {
	return fixedNow.AddDate(0, 0, offset).Format("2006-01-02")
}

func ctx() context.Context { return context.Background() }

func strPtr(s string) *string { return &s }
