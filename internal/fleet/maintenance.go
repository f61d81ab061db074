// server/internal/fleet/maintenance.go
package fleet

import (
	"context"
	"fmt"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/models"
	"fleet-maintenance-api-server/internal/report"
)

type MaintenanceInput struct {
	Plate        string        `json:"plate"`
	Task         string        `json:"task"`
	ControlType  string        `json:"controlType"`
	BaseDate     string        `json:"baseDate"`
	LastOdometer models.Number `json:"lastOdometer"`
	Interval     models.Number `json:"interval"`
}

var controlTypes = []string{models.ControlByDistance, models.ControlByDate}

func (s *Service) ListMaintenance(ctx context.Context) ([]models.MaintenanceView, error) {
	programs, err := s.repo.Maintenance.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance programs: %w", err)
	}
	return report.MaintenanceAlerts(programs, s.today()), nil
}

func (s *Service) CreateMaintenance(ctx context.Context, in MaintenanceInput) (models.MaintenanceView, error) {
	if err := firstError(
		required("plate", in.Plate),
		required("task", in.Task),
		required("controlType", in.ControlType),
		oneOf("controlType", in.ControlType, controlTypes),
	); err != nil {
		return models.MaintenanceView{}, err
	}

	program, err := s.repo.Maintenance.Create(ctx, func(id int64) models.MaintenanceProgram {
		p := models.MaintenanceProgram{
			ID:          id,
			Plate:       in.Plate,
			Task:        in.Task,
			ControlType: in.ControlType,
			BaseDate:    orDefault(in.BaseDate, s.todayString()),
			Interval:    in.Interval.Float(),
		}
		if in.ControlType == models.ControlByDistance {
			p.LastOdometer = in.LastOdometer.Float()
		}
		return p
	})
	if err != nil {
		return models.MaintenanceView{}, fmt.Errorf("failed to create maintenance program: %w", err)
	}
	view := report.MaintenanceAlerts([]models.MaintenanceProgram{program}, s.today())[0]
	s.changed("maintenance", "created", view)
	return view, nil
}

func (s *Service) DeleteMaintenance(ctx context.Context, id int64) error {
	ok, err := s.repo.Maintenance.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance program: %w", err)
	}
	if !ok {
		return apperr.NewNotFoundError("maintenance program", id)
	}
	s.changed("maintenance", "deleted", map[string]int64{"id": id})
	return nil
}
