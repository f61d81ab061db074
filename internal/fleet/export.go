// server/internal/fleet/export.go
package fleet

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"fleet-maintenance-api-server/internal/models"
)

// ExportOrder renders a work order with its parts as a CSV sheet.
func (s *Service) ExportOrder(ctx context.Context, id int64) (filename string, data []byte, err error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return "", nil, err
	}

	var provider string
	if order.ProviderID != nil {
		if p, found, err := s.repo.Providers.Get(ctx, *order.ProviderID); err != nil {
			return "", nil, fmt.Errorf("failed to get provider: %w", err)
		} else if found {
			provider = p.TradeName
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{
		{"Order", strconv.FormatInt(order.ID, 10)},
		{"Title", order.Title},
		{"Plate", order.Plate},
		{"Mechanic", order.Mechanic},
		{"Provider", provider},
		{"Driver", order.Driver},
		{"Priority", order.Priority},
		{"Status", order.Status},
		{"Request date", order.RequestDate},
		{"Description", order.Description},
		{},
		{"Part", "Quantity", "Unit cost", "Subtotal"},
	}
	for _, p := range order.Parts {
		rows = append(rows, []string{p.Name, money(p.Quantity), money(p.UnitCost), money(partSubtotal(p))})
	}
	rows = append(rows, []string{"Total", "", "", money(order.TotalCost)})

	if err := w.WriteAll(rows); err != nil {
		return "", nil, fmt.Errorf("failed to write order csv: %w", err)
	}
	return fmt.Sprintf("order-%d.csv", order.ID), buf.Bytes(), nil
}

func partSubtotal(p models.Part) float64 {
	q, c := p.Quantity, p.UnitCost
	if q < 0 {
		q = 0
	}
	if c < 0 {
		c = 0
	}
	return q * c
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
