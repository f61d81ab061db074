// server/internal/models/driver.go
package models

// Driver is read-only reference data.
type Driver struct {
	ID           int64  `bson:"_id" json:"id"`
	Name         string `bson:"name" json:"name"`
	LicenseClass string `bson:"licenseClass" json:"licenseClass"`
	Phone        string `bson:"phone" json:"phone"`
}

// MonthlySale is one point of the sales series shown on the dashboard.
type MonthlySale struct {
	ID     int64   `bson:"_id" json:"-"`
	Month  string  `bson:"month" json:"month"`
	Amount float64 `bson:"amount" json:"amount"`
}
