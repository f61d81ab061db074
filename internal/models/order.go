// server/internal/models/order.go
package models

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	OrderPending    = "Pending"
	OrderInProgress = "In-Progress"
	OrderDone       = "Done"
)

// Part is one line of a work order.
type Part struct {
	ID       int64   `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Quantity float64 `bson:"quantity" json:"quantity"`
	UnitCost float64 `bson:"unitCost" json:"unitCost"`
}

// WorkOrder is a maintenance task on a truck. Plate and ProviderID are not enforced references.
type WorkOrder struct {
	ID          int64  `bson:"_id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Plate       string `bson:"plate" json:"plate"`
	Mechanic    string `bson:"mechanic" json:"mechanic"`
	ProviderID  *int64 `bson:"providerId" json:"providerId"`
	Driver      string `bson:"driver" json:"driver"`
	Priority    string `bson:"priority" json:"priority"`
	Status      string `bson:"status" json:"status"`
	Description string `bson:"description" json:"description"`
	RequestDate string `bson:"requestDate" json:"requestDate"`
	Parts       []Part `bson:"parts" json:"parts"`
}

// PartInput is a part line as clients send it; numbers may arrive as strings.
type PartInput struct {
	ID       Number `json:"id"`
	Name     string `json:"name"`
	Quantity Number `json:"quantity"`
	UnitCost Number `json:"unitCost"`
}

// BuildParts numbers parts by position. With keepIDs, a client-supplied id wins.
func BuildParts(in []PartInput, keepIDs bool) []Part {
	parts := make([]Part, 0, len(in))
	for i, p := range in {
		id := int64(i + 1)
		if keepIDs && int64(p.ID) > 0 {
			id = int64(p.ID)
		}
		parts = append(parts, Part{ID: id, Name: p.Name, Quantity: p.Quantity.Float(), UnitCost: p.UnitCost.Float()})
	}
	return parts
}

type OrderPatch struct {
	Title       *string `json:"title"`
	Plate       *string `json:"plate"`
	Mechanic    *string `json:"mechanic"`
	ProviderID  *Number `json:"providerId"`
	Driver      *string `json:"driver"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	RequestDate *string `json:"requestDate"`
	// Parts replaces the whole list when non-nil.
	Parts *[]PartInput `json:"parts"`
}

func (p OrderPatch) Apply(o *WorkOrder) {
	setString(&o.Title, p.Title)
	setString(&o.Plate, p.Plate)
	setString(&o.Mechanic, p.Mechanic)
	if p.ProviderID != nil {
		o.ProviderID = ProviderIDFrom(*p.ProviderID)
	}
	setString(&o.Driver, p.Driver)
	setString(&o.Priority, p.Priority)
	setString(&o.Status, p.Status)
	setString(&o.Description, p.Description)
	setString(&o.RequestDate, p.RequestDate)
	if p.Parts != nil {
		o.Parts = BuildParts(*p.Parts, true)
	}
}

// ProviderIDFrom turns a coerced number into a provider reference; 0 means none.
func ProviderIDFrom(n Number) *int64 {
	id := int64(n)
	if id == 0 {
		return nil
	}
	return &id
}

// OrderView is a work order with its derived total.
type OrderView struct {
	WorkOrder
	TotalCost float64 `json:"totalCost"`
}
