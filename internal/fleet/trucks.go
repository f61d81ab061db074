// server/internal/fleet/trucks.go
package fleet

import (
	"context"
	"fmt"
	"time"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/derive"
	"fleet-maintenance-api-server/internal/models"
	"fleet-maintenance-api-server/internal/uploads"
)

// TruckInput is the body of a truck creation, as JSON or form fields.
type TruckInput struct {
	Plate     string        `json:"plate" form:"plate"`
	Brand     string        `json:"brand" form:"brand"`
	Model     string        `json:"model" form:"model"`
	Year      models.Number `json:"year" form:"year"`
	Odometer  models.Number `json:"odometer" form:"odometer"`
	EntryDate string        `json:"entryDate" form:"entryDate"`
	ExitDate  string        `json:"exitDate" form:"exitDate"`
	Status    string        `json:"status" form:"status"`
	Notes     string        `json:"notes" form:"notes"`
	Driver    string        `json:"driver" form:"driver"`
}

// DocumentInput describes one document attached in a truck request. File is optional.
type DocumentInput struct {
	Type        string          `json:"type"`
	Expiry      string          `json:"expiry"`
	Responsible string          `json:"responsible"`
	File        *uploads.Upload `json:"-"`
}

func (s *Service) ListTrucks(ctx context.Context) ([]models.TruckView, error) {
	trucks, err := s.repo.Trucks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}
	docs, err := s.repo.Documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	today := s.today()
	byTruck := make(map[int64][]models.DocumentView)
	for _, d := range docs {
		if d.TruckID != nil {
			byTruck[*d.TruckID] = append(byTruck[*d.TruckID], s.enrichDocument(d, today))
		}
	}

	views := make([]models.TruckView, 0, len(trucks))
	for _, t := range trucks {
		views = append(views, truckView(t, byTruck[t.ID]))
	}
	return views, nil
}

func (s *Service) GetTruck(ctx context.Context, id int64) (models.TruckView, error) {
	truck, found, err := s.repo.Trucks.Get(ctx, id)
	if err != nil {
		return models.TruckView{}, fmt.Errorf("failed to get truck: %w", err)
	}
	if !found {
		return models.TruckView{}, apperr.NewNotFoundError("truck", id)
	}
	docs, err := s.TruckDocuments(ctx, id)
	if err != nil {
		return models.TruckView{}, err
	}
	return truckView(truck, docs), nil
}

// CreateTruck stores the truck and then each attached document, in that order.
func (s *Service) CreateTruck(ctx context.Context, in TruckInput, docs []DocumentInput) (models.TruckView, error) {
	if err := firstError(
		required("plate", in.Plate),
		required("brand", in.Brand),
		required("model", in.Model),
	); err != nil {
		return models.TruckView{}, err
	}

	files, err := s.saveDocumentFiles(ctx, docs)
	if err != nil {
		return models.TruckView{}, err
	}

	truck, err := s.repo.Trucks.Create(ctx, func(id int64) models.Truck {
		return models.Truck{
			ID:        id,
			Plate:     in.Plate,
			Brand:     in.Brand,
			Model:     in.Model,
			Year:      models.YearFrom(in.Year),
			Odometer:  in.Odometer.Float(),
			EntryDate: in.EntryDate,
			ExitDate:  in.ExitDate,
			Status:    orDefault(in.Status, models.TruckStatusOperational),
			Notes:     in.Notes,
			Driver:    in.Driver,
		}
	})
	if err != nil {
		return models.TruckView{}, fmt.Errorf("failed to create truck: %w", err)
	}

	created, err := s.createTruckDocuments(ctx, truck, docs, files)
	if err != nil {
		return models.TruckView{}, err
	}

	view := truckView(truck, created)
	s.changed("truck", "created", view)
	return view, nil
}

// UpdateTruck applies the patch, removes the listed documents and adds new ones.
func (s *Service) UpdateTruck(ctx context.Context, id int64, patch models.TruckPatch, removeDocs []int64, docs []DocumentInput) (models.TruckView, error) {
	if err := firstError(
		notBlank("plate", patch.Plate),
		notBlank("brand", patch.Brand),
		notBlank("model", patch.Model),
	); err != nil {
		return models.TruckView{}, err
	}

	if _, found, err := s.repo.Trucks.Get(ctx, id); err != nil {
		return models.TruckView{}, fmt.Errorf("failed to get truck: %w", err)
	} else if !found {
		return models.TruckView{}, apperr.NewNotFoundError("truck", id)
	}

	files, err := s.saveDocumentFiles(ctx, docs)
	if err != nil {
		return models.TruckView{}, err
	}

	truck, found, err := s.repo.Trucks.Update(ctx, id, patch.Apply)
	if err != nil {
		return models.TruckView{}, fmt.Errorf("failed to update truck: %w", err)
	}
	if !found {
		return models.TruckView{}, apperr.NewNotFoundError("truck", id)
	}

	for _, docID := range removeDocs {
		if _, err := s.repo.Documents.Delete(ctx, docID); err != nil {
			return models.TruckView{}, fmt.Errorf("failed to remove document %d: %w", docID, err)
		}
	}
	if _, err := s.createTruckDocuments(ctx, truck, docs, files); err != nil {
		return models.TruckView{}, err
	}

	view, err := s.GetTruck(ctx, id)
	if err != nil {
		return models.TruckView{}, err
	}
	s.changed("truck", "updated", view)
	return view, nil
}

// DeleteTruck leaves the truck's documents in place.
func (s *Service) DeleteTruck(ctx context.Context, id int64) error {
	ok, err := s.repo.Trucks.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete truck: %w", err)
	}
	if !ok {
		return apperr.NewNotFoundError("truck", id)
	}
	s.changed("truck", "deleted", map[string]int64{"id": id})
	return nil
}

// TruckDocuments lists the enriched documents linked to an existing truck.
func (s *Service) TruckDocuments(ctx context.Context, id int64) ([]models.DocumentView, error) {
	if _, found, err := s.repo.Trucks.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get truck: %w", err)
	} else if !found {
		return nil, apperr.NewNotFoundError("truck", id)
	}

	docs, err := s.repo.Documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	today := s.today()
	out := []models.DocumentView{}
	for _, d := range docs {
		if d.TruckID != nil && *d.TruckID == id {
			out = append(out, s.enrichDocument(d, today))
		}
	}
	return out, nil
}

// ListDocuments returns every document, orphans included.
func (s *Service) ListDocuments(ctx context.Context) ([]models.DocumentView, error) {
	docs, err := s.repo.Documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	today := s.today()
	out := make([]models.DocumentView, 0, len(docs))
	for _, d := range docs {
		out = append(out, s.enrichDocument(d, today))
	}
	return out, nil
}

func (s *Service) DeleteDocument(ctx context.Context, id int64) error {
	ok, err := s.repo.Documents.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if !ok {
		return apperr.NewNotFoundError("document", id)
	}
	s.changed("document", "deleted", map[string]int64{"id": id})
	return nil
}

// saveDocumentFiles stores every attached file before anything is written to the repository.
func (s *Service) saveDocumentFiles(ctx context.Context, docs []DocumentInput) ([]*models.FileMeta, error) {
	files := make([]*models.FileMeta, len(docs))
	for i, d := range docs {
		if d.File == nil {
			continue
		}
		meta, err := s.files.Save(ctx, uploads.FolderDocuments, *d.File)
		if err != nil {
			return nil, fmt.Errorf("failed to store document file: %w", err)
		}
		files[i] = &meta
	}
	return files, nil
}

func (s *Service) createTruckDocuments(ctx context.Context, truck models.Truck, docs []DocumentInput, files []*models.FileMeta) ([]models.DocumentView, error) {
	today := s.today()
	created := make([]models.DocumentView, 0, len(docs))
	for i, d := range docs {
		truckID := truck.ID
		doc, err := s.repo.Documents.Create(ctx, func(id int64) models.Document {
			return models.Document{
				ID:          id,
				TruckID:     &truckID,
				Plate:       truck.Plate,
				Type:        d.Type,
				Expiry:      d.Expiry,
				Responsible: d.Responsible,
				File:        files[i],
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create document: %w", err)
		}
		created = append(created, s.enrichDocument(doc, today))
	}
	return created, nil
}

func (s *Service) enrichDocument(d models.Document, today time.Time) models.DocumentView {
	status, days := derive.DocumentStatus(d.Expiry, today)
	view := models.DocumentView{Document: d, Status: status, DaysToExpiry: days}
	if d.File != nil && d.File.FileName != "" {
		url := s.files.URL(uploads.FolderDocuments, d.File.FileName)
		view.FileURL = &url
	}
	return view
}

func truckView(t models.Truck, docs []models.DocumentView) models.TruckView {
	if docs == nil {
		docs = []models.DocumentView{}
	}
	return models.TruckView{Truck: t, Documents: docs}
}
