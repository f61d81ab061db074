// server/internal/models/document.go
package models

const (
	DocumentExpired      = "Expired"
	DocumentExpiringSoon = "Expiring-soon"
	DocumentValid        = "Valid"
	DocumentNoDate       = "No-date"
)

// Document is a compliance paper (permit, inspection, insurance) attached to a truck.
type Document struct {
	ID          int64     `bson:"_id" json:"id"`
	TruckID     *int64    `bson:"truckId" json:"truckId"`
	Plate       string    `bson:"plate" json:"plate"`
	Type        string    `bson:"type" json:"type"`
	Expiry      string    `bson:"expiry" json:"expiry"`
	Responsible string    `bson:"responsible" json:"responsible"`
	File        *FileMeta `bson:"file,omitempty" json:"file"`
}

// DocumentView adds the values derived on read.
type DocumentView struct {
	Document
	FileURL      *string `json:"fileUrl"`
	Status       string  `json:"status"`
	DaysToExpiry *int    `json:"daysToExpiry"`
}
