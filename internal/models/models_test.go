package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberDecodesLeniently(t *testing.T) {
	tests := []struct {
		in   string
		want Number
	}{
		{`12`, 12},
		{`"12.5"`, 12.5},
		{`"abc"`, 0},
		{`null`, 0},
		{`""`, 0},
		{`true`, 1},
		{`{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNumberUnmarshalParam(t *testing.T) {
	var n Number
	require.NoError(t, n.UnmarshalParam("2021"))
	assert.Equal(t, Number(2021), n)
	require.NoError(t, n.UnmarshalParam("n/a"))
	assert.Equal(t, Number(0), n)
}

func TestTruckPatchKeepsUnsetFields(t *testing.T) {
	year := 2019
	truck := Truck{Plate: "AA-BB11", Brand: "Volvo", Year: &year, Odometer: 1000, Notes: "n"}

	var patch TruckPatch
	require.NoError(t, json.Unmarshal([]byte(`{"brand":"Scania","year":"abc","odometer":"1500"}`), &patch))
	patch.Apply(&truck)

	assert.Equal(t, "AA-BB11", truck.Plate)
	assert.Equal(t, "Scania", truck.Brand)
	assert.Nil(t, truck.Year)
	assert.Equal(t, float64(1500), truck.Odometer)
	assert.Equal(t, "n", truck.Notes)
}

func TestOrderPatchReplacesParts(t *testing.T) {
	order := WorkOrder{Title: "t", Parts: []Part{{ID: 1, Name: "old", Quantity: 1, UnitCost: 1}}}

	var patch OrderPatch
	require.NoError(t, json.Unmarshal([]byte(`{"providerId":"0","parts":[{"id":7,"name":"a","quantity":"2","unitCost":10},{"name":"b","quantity":1,"unitCost":"x"}]}`), &patch))
	patch.Apply(&order)

	assert.Equal(t, "t", order.Title)
	assert.Nil(t, order.ProviderID)
	assert.Equal(t, []Part{{ID: 7, Name: "a", Quantity: 2, UnitCost: 10}, {ID: 2, Name: "b", Quantity: 1}}, order.Parts)
}

func TestBuildPartsNumbersByPosition(t *testing.T) {
	parts := BuildParts([]PartInput{{ID: 9, Name: "a"}, {Name: "b"}}, false)
	assert.Equal(t, int64(1), parts[0].ID)
	assert.Equal(t, int64(2), parts[1].ID)
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	data, err := json.Marshal(User{ID: 1, Email: "a@b.c", PasswordHash: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Equal(t, PublicUser{ID: 1, Email: "a@b.c"}, User{ID: 1, Email: "a@b.c", PasswordHash: "x"}.Public())
}
