// server/internal/models/expense.go
package models

type Expense struct {
	ID      int64     `bson:"_id" json:"id"`
	Plate   string    `bson:"plate" json:"plate"`
	Concept string    `bson:"concept" json:"concept"`
	Cost    float64   `bson:"cost" json:"cost"`
	Date    string    `bson:"date" json:"date"`
	Receipt *FileMeta `bson:"receipt,omitempty" json:"receipt"`
}

type ExpenseView struct {
	Expense
	ReceiptURL *string `json:"receiptUrl"`
}

// Budget is the annual spending plan and how much of it is used.
type Budget struct {
	Annual    float64 `json:"annual"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}
