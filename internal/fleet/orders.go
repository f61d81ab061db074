// server/internal/fleet/orders.go
package fleet

import (
	"context"
	"fmt"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/derive"
	"fleet-maintenance-api-server/internal/models"
)

type OrderInput struct {
	Title       string             `json:"title"`
	Plate       string             `json:"plate"`
	Mechanic    string             `json:"mechanic"`
	ProviderID  models.Number      `json:"providerId"`
	Driver      string             `json:"driver"`
	Priority    string             `json:"priority"`
	Status      string             `json:"status"`
	Description string             `json:"description"`
	RequestDate string             `json:"requestDate"`
	Parts       []models.PartInput `json:"parts"`
}

var (
	priorities    = []string{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
	orderStatuses = []string{models.OrderPending, models.OrderInProgress, models.OrderDone}
)

func (s *Service) ListOrders(ctx context.Context) ([]models.OrderView, error) {
	orders, err := s.repo.Orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	views := make([]models.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView(o))
	}
	return views, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (models.OrderView, error) {
	order, found, err := s.repo.Orders.Get(ctx, id)
	if err != nil {
		return models.OrderView{}, fmt.Errorf("failed to get order: %w", err)
	}
	if !found {
		return models.OrderView{}, apperr.NewNotFoundError("order", id)
	}
	return orderView(order), nil
}

func (s *Service) CreateOrder(ctx context.Context, in OrderInput) (models.OrderView, error) {
	if err := firstError(
		required("title", in.Title),
		required("plate", in.Plate),
		oneOf("priority", in.Priority, priorities),
		oneOf("status", in.Status, orderStatuses),
	); err != nil {
		return models.OrderView{}, err
	}

	order, err := s.repo.Orders.Create(ctx, func(id int64) models.WorkOrder {
		return models.WorkOrder{
			ID:          id,
			Title:       in.Title,
			Plate:       in.Plate,
			Mechanic:    in.Mechanic,
			ProviderID:  models.ProviderIDFrom(in.ProviderID),
			Driver:      in.Driver,
			Priority:    orDefault(in.Priority, models.PriorityMedium),
			Status:      orDefault(in.Status, models.OrderPending),
			Description: in.Description,
			RequestDate: orDefault(in.RequestDate, s.todayString()),
			Parts:       models.BuildParts(in.Parts, false),
		}
	})
	if err != nil {
		return models.OrderView{}, fmt.Errorf("failed to create order: %w", err)
	}
	view := orderView(order)
	s.changed("order", "created", view)
	return view, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id int64, patch models.OrderPatch) (models.OrderView, error) {
	if err := firstError(
		notBlank("title", patch.Title),
		notBlank("plate", patch.Plate),
		oneOfPtr("priority", patch.Priority, priorities),
		oneOfPtr("status", patch.Status, orderStatuses),
	); err != nil {
		return models.OrderView{}, err
	}

	order, found, err := s.repo.Orders.Update(ctx, id, patch.Apply)
	if err != nil {
		return models.OrderView{}, fmt.Errorf("failed to update order: %w", err)
	}
	if !found {
		return models.OrderView{}, apperr.NewNotFoundError("order", id)
	}
	view := orderView(order)
	s.changed("order", "updated", view)
	return view, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	ok, err := s.repo.Orders.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if !ok {
		return apperr.NewNotFoundError("order", id)
	}
	s.changed("order", "deleted", map[string]int64{"id": id})
	return nil
}

func orderView(o models.WorkOrder) models.OrderView {
	if o.Parts == nil {
		o.Parts = []models.Part{}
	}
	return models.OrderView{WorkOrder: o, TotalCost: derive.OrderTotal(o.Parts)}
}

// oneOf accepts an empty value; defaults are applied later.
func oneOf(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return apperr.NewValidationError(field, fmt.Sprintf("must be one of %v", allowed))
}

func oneOfPtr(field string, value *string, allowed []string) error {
	if value == nil {
		return nil
	}
	if *value == "" {
		return apperr.RequiredError(field)
	}
	return oneOf(field, *value, allowed)
}
