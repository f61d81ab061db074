// server/internal/models/truck.go
package models

const TruckStatusOperational = "Operational"

type Truck struct {
	ID    int64  `bson:"_id" json:"id"`
	Plate string `bson:"plate" json:"plate"` // the de facto key orders, documents and expenses point at
	Brand string `bson:"brand" json:"brand"`
	Model string `bson:"model" json:"model"`
	// Year is nil when unknown.
	Year      *int    `bson:"year" json:"year"`
	Odometer  float64 `bson:"odometer" json:"odometer"`
	EntryDate string  `bson:"entryDate" json:"entryDate"`
	ExitDate  string  `bson:"exitDate" json:"exitDate"`
	Status    string  `bson:"status" json:"status"`
	Notes     string  `bson:"notes" json:"notes"`
	Driver    string  `bson:"driver" json:"driver"` // assigned driver name
}

// TruckPatch lists the fields a truck update may change. Nil means keep the stored value.
type TruckPatch struct {
	Plate     *string `json:"plate" form:"plate"`
	Brand     *string `json:"brand" form:"brand"`
	Model     *string `json:"model" form:"model"`
	Year      *Number `json:"year" form:"year"`
	Odometer  *Number `json:"odometer" form:"odometer"`
	EntryDate *string `json:"entryDate" form:"entryDate"`
	ExitDate  *string `json:"exitDate" form:"exitDate"`
	Status    *string `json:"status" form:"status"`
	Notes     *string `json:"notes" form:"notes"`
	Driver    *string `json:"driver" form:"driver"`
}

// Apply merges the patch into t.
func (p TruckPatch) Apply(t *Truck) {
	setString(&t.Plate, p.Plate)
	setString(&t.Brand, p.Brand)
	setString(&t.Model, p.Model)
	if p.Year != nil {
		t.Year = YearFrom(*p.Year)
	}
	if p.Odometer != nil {
		t.Odometer = p.Odometer.Float()
	}
	setString(&t.EntryDate, p.EntryDate)
	setString(&t.ExitDate, p.ExitDate)
	setString(&t.Status, p.Status)
	setString(&t.Notes, p.Notes)
	setString(&t.Driver, p.Driver)
}

// YearFrom turns a coerced number into a model year; 0 means unknown.
func YearFrom(n Number) *int {
	y := int(n)
	if y == 0 {
		return nil
	}
	return &y
}

// TruckView is a truck with its documents, as returned by the API.
type TruckView struct {
	Truck
	Documents []DocumentView `json:"documents"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
