// server/internal/fleet/providers.go
package fleet

import (
	"context"
	"fmt"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/models"
	"fleet-maintenance-api-server/internal/rut"
)

type ProviderInput struct {
	LegalName string `json:"legalName"`
	TradeName string `json:"tradeName"`
	TaxID     string `json:"taxId"`
	Contact   string `json:"contact"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Line      string `json:"line"`
}

func (s *Service) ListProviders(ctx context.Context) ([]models.Provider, error) {
	providers, err := s.repo.Providers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

func (s *Service) CreateProvider(ctx context.Context, in ProviderInput) (models.Provider, error) {
	if err := firstError(
		required("legalName", in.LegalName),
		required("tradeName", in.TradeName),
		required("taxId", in.TaxID),
		required("contact", in.Contact),
		validTaxID(in.TaxID),
	); err != nil {
		return models.Provider{}, err
	}

	provider, err := s.repo.Providers.Create(ctx, func(id int64) models.Provider {
		return models.Provider{
			ID:        id,
			LegalName: in.LegalName,
			TradeName: in.TradeName,
			TaxID:     rut.Sanitize(in.TaxID),
			Contact:   in.Contact,
			Phone:     in.Phone,
			Email:     in.Email,
			Line:      in.Line,
		}
	})
	if err != nil {
		return models.Provider{}, fmt.Errorf("failed to create provider: %w", err)
	}
	s.changed("provider", "created", provider)
	return provider, nil
}

// UpdateProvider re-validates the tax id only when the patch carries one.
func (s *Service) UpdateProvider(ctx context.Context, id int64, patch models.ProviderPatch) (models.Provider, error) {
	if err := firstError(
		notBlank("legalName", patch.LegalName),
		notBlank("tradeName", patch.TradeName),
		notBlank("taxId", patch.TaxID),
		notBlank("contact", patch.Contact),
	); err != nil {
		return models.Provider{}, err
	}
	if patch.TaxID != nil {
		if err := validTaxID(*patch.TaxID); err != nil {
			return models.Provider{}, err
		}
		sanitized := rut.Sanitize(*patch.TaxID)
		patch.TaxID = &sanitized
	}

	provider, found, err := s.repo.Providers.Update(ctx, id, patch.Apply)
	if err != nil {
		return models.Provider{}, fmt.Errorf("failed to update provider: %w", err)
	}
	if !found {
		return models.Provider{}, apperr.NewNotFoundError("provider", id)
	}
	s.changed("provider", "updated", provider)
	return provider, nil
}

func (s *Service) DeleteProvider(ctx context.Context, id int64) error {
	ok, err := s.repo.Providers.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	if !ok {
		return apperr.NewNotFoundError("provider", id)
	}
	s.changed("provider", "deleted", map[string]int64{"id": id})
	return nil
}

func validTaxID(value string) error {
	if value != "" && !rut.Valid(value) {
		return apperr.NewValidationError("taxId", "is not a valid RUT")
	}
	return nil
}
