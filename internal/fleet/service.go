// Package fleet holds the use cases behind the HTTP API: validation, patching,
// enrichment with derived values and report composition.
package fleet

import (
	"strings"
	"time"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/database"
	"fleet-maintenance-api-server/internal/derive"
	"fleet-maintenance-api-server/internal/metrics"
	"fleet-maintenance-api-server/internal/uploads"

	"github.com/sirupsen/logrus"
)

// Notifier receives an event after every successful change.
type Notifier interface {
	Publish(eventType string, payload interface{})
}

type noopNotifier struct{}

func (noopNotifier) Publish(string, interface{}) {}

type Service struct {
	repo     *database.Repository
	files    uploads.Store
	notifier Notifier
	loc      *time.Location
	now      func() time.Time
	log      *logrus.Entry
}

func NewService(repo *database.Repository, files uploads.Store, notifier Notifier, loc *time.Location, log *logrus.Entry) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo:     repo,
		files:    files,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
		log:      log,
	}
}

// today is the calendar date every derived status is computed against.
func (s *Service) today() time.Time {
	return derive.Today(s.now(), s.loc)
}

func (s *Service) todayString() string {
	return derive.FormatDate(s.today())
}

// changed records and announces a successful mutation.
func (s *Service) changed(resource, action string, payload interface{}) {
	metrics.RecordChange(resource, action)
	s.notifier.Publish(resource+"."+action, payload)
	s.log.WithField("resource", resource).Debugf("%s %s", resource, action)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.RequiredError(field)
	}
	return nil
}

// notBlank rejects a patch that would clear a required field.
func notBlank(field string, value *string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return apperr.RequiredError(field)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
