package fleet

import (
	"testing"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProvider() ProviderInput {
	return ProviderInput{LegalName: "Servicios Diesel Ltda", TradeName: "Servicios Diesel", TaxID: "12.345.678-5", Contact: "Juan"}
}

func TestCreateProviderSanitizesRUT(t *testing.T) {
	svc, _, _ := newTestService(t)

	p, err := svc.CreateProvider(ctx(), validProvider())
	require.NoError(t, err)
	assert.Equal(t, "123456785", p.TaxID)
}

func TestCreateProviderValidation(t *testing.T) {
	svc, repo, _ := newTestService(t)

	in := validProvider()
	in.TaxID = "12.345.678-4"
	_, err := svc.CreateProvider(ctx(), in)
	assert.True(t, apperr.IsValidation(err))

	in = validProvider()
	in.Contact = ""
	_, err = svc.CreateProvider(ctx(), in)
	assert.True(t, apperr.IsValidation(err))

	providers, _ := repo.Providers.List(ctx())
	assert.Empty(t, providers)
}

func TestUpdateProvider(t *testing.T) {
	svc, _, _ := newTestService(t)
	p, _ := svc.CreateProvider(ctx(), validProvider())

	updated, err := svc.UpdateProvider(ctx(), p.ID, models.ProviderPatch{Phone: strPtr("+56 9 1234"), TaxID: strPtr("6-k")})
	require.NoError(t, err)
	assert.Equal(t, "+56 9 1234", updated.Phone)
	assert.Equal(t, "6K", updated.TaxID)
	assert.Equal(t, "Juan", updated.Contact)

	_, err = svc.UpdateProvider(ctx(), p.ID, models.ProviderPatch{TaxID: strPtr("6-1")})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.UpdateProvider(ctx(), 42, models.ProviderPatch{Phone: strPtr("x")})
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteProvider(t *testing.T) {
	svc, _, _ := newTestService(t)
	p, _ := svc.CreateProvider(ctx(), validProvider())

	require.NoError(t, svc.DeleteProvider(ctx(), p.ID))
	assert.True(t, apperr.IsNotFound(svc.DeleteProvider(ctx(), p.ID)))
}
