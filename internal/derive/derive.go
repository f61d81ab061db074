package derive

import (
	"strconv"
	"time"

	"fleet-maintenance-api-server/internal/models"
)

const (
	documentWarningDays    = 30
	maintenanceWarningDays = 15
)

// NoNextDue is shown when a program lacks the data to project its next control.
const NoNextDue = "—"

// OrderTotal sums quantity × unit cost over the parts. Negative values count as 0.
func OrderTotal(parts []models.Part) float64 {
	var total float64
	for _, p := range parts {
		total += nonNegative(p.Quantity) * nonNegative(p.UnitCost)
	}
	return total
}

// DocumentStatus classifies an expiry date against today. days is nil for No-date.
func DocumentStatus(expiry string, today time.Time) (status string, days *int) {
	target, ok := ParseDate(expiry)
	if !ok {
		return models.DocumentNoDate, nil
	}
	d := DaysBetween(today, target)
	switch {
	case d < 0:
		status = models.DocumentExpired
	case d <= documentWarningDays:
		status = models.DocumentExpiringSoon
	default:
		status = models.DocumentValid
	}
	return status, &d
}

// Maintenance projects the next control of a program and its alert status.
// Distance programs never get a day count.
func Maintenance(p models.MaintenanceProgram, today time.Time) (nextDue, status string, days *int) {
	switch p.ControlType {
	case models.ControlByDistance:
		nextDue = NoNextDue
		if p.Interval != 0 && p.LastOdometer != 0 {
			nextDue = strconv.FormatFloat(p.LastOdometer+p.Interval, 'f', -1, 64) + " km"
		}
		return nextDue, models.MaintenanceByDistance, nil
	case models.ControlByDate:
		base, ok := ParseDate(p.BaseDate)
		if !ok || p.Interval == 0 {
			return NoNextDue, models.MaintenanceNoData, nil
		}
		next := Midnight(base).AddDate(0, 0, int(p.Interval))
		d := DaysBetween(today, next)
		switch {
		case d < 0:
			status = models.MaintenanceExpired
		case d <= maintenanceWarningDays:
			status = models.MaintenanceExpiringSoon
		default:
			status = models.MaintenanceScheduled
		}
		return FormatDate(next), status, &d
	default:
		return NoNextDue, models.MaintenanceNoData, nil
	}
}

// Budget totals expense costs against the annual amount. Remaining never goes below 0.
func Budget(annual float64, expenses []models.Expense) models.Budget {
	var spent float64
	for _, e := range expenses {
		spent += e.Cost
	}
	remaining := annual - spent
	if remaining < 0 {
		remaining = 0
	}
	return models.Budget{Annual: annual, Spent: spent, Remaining: remaining}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
