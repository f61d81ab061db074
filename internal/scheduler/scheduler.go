// server/internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"time"

	"fleet-maintenance-api-server/internal/fleet"
	"fleet-maintenance-api-server/internal/metrics"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const EventAlertsDigest = "alerts.digest"

// AlertSource produces the current alert digest.
type AlertSource interface {
	Alerts(ctx context.Context) (fleet.AlertDigest, error)
}

// AlertSweep periodically checks documents and maintenance and announces what needs attention.
type AlertSweep struct {
	cron     *cron.Cron
	source   AlertSource
	notifier fleet.Notifier
	timeout  time.Duration
	log      *logrus.Entry
}

// NewAlertSweep returns nil when schedule is empty, which disables the sweep.
func NewAlertSweep(schedule string, loc *time.Location, source AlertSource, notifier fleet.Notifier, log *logrus.Entry) (*AlertSweep, error) {
	if schedule == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	s := &AlertSweep{
		cron:     cron.New(cron.WithLocation(loc)),
		source:   source,
		notifier: notifier,
		timeout:  30 * time.Second,
		log:      log,
	}
	if _, err := s.cron.AddFunc(schedule, func() { s.Run(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid alert schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *AlertSweep) Start() {
	s.cron.Start()
	s.log.Info("Alert sweep scheduled")
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *AlertSweep) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Run performs one sweep. An empty digest is logged but not published.
func (s *AlertSweep) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	digest, err := s.source.Alerts(ctx)
	if err != nil {
		s.log.WithError(err).Error("Alert sweep failed")
		return
	}
	metrics.RecordAlerts(len(digest.Documents), len(digest.Maintenance))

	entry := s.log.WithFields(logrus.Fields{
		"documents":   len(digest.Documents),
		"maintenance": len(digest.Maintenance),
	})
	if digest.Empty() {
		entry.Info("Alert sweep found nothing to report")
		return
	}
	entry.Warn("Alert sweep found items needing attention")
	if s.notifier != nil {
		s.notifier.Publish(EventAlertsDigest, digest)
	}
}
