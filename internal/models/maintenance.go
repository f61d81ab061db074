// server/internal/models/maintenance.go
package models

const (
	ControlByDistance = "distance"
	ControlByDate     = "date"

	MaintenanceExpired      = "Expired"
	MaintenanceExpiringSoon = "Expiring-soon"
	MaintenanceScheduled    = "Scheduled"
	MaintenanceByDistance   = "By-distance"
	MaintenanceNoData       = "No-data"
)

// MaintenanceProgram is a preventive schedule driven by odometer or calendar.
// Interval is km for distance programs and days for date programs.
type MaintenanceProgram struct {
	ID           int64   `bson:"_id" json:"id"`
	Plate        string  `bson:"plate" json:"plate"`
	Task         string  `bson:"task" json:"task"`
	ControlType  string  `bson:"controlType" json:"controlType"`
	BaseDate     string  `bson:"baseDate" json:"baseDate"`
	LastOdometer float64 `bson:"lastOdometer" json:"lastOdometer"`
	Interval     float64 `bson:"interval" json:"interval"`
}

type MaintenanceView struct {
	MaintenanceProgram
	NextDue string `json:"nextDue"`
	Status  string `json:"status"`
	Days    *int   `json:"days"`
}
