package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sweets/pkg/directory"
	"github.com/mesh-intelligence/sweets/pkg/types"
)

func TestLoadBobba(t *testing.T) {
	rec, err := Load("testdata/green_milk_tea.yaml")
	require.NoError(t, err)

	bobba, err := rec.Bobba()
	require.NoError(t, err)

	ings := bobba.Ingredients()
	require.Len(t, ings, 2)
	assert.Equal(t, "milk", ings[0].Name)
	require.NotNil(t, ings[1].Quantity)
	assert.Equal(t, 40.0, *ings[1].Quantity)
	assert.Equal(t, types.Packaging{Size: 10, Name: "bubble tea with green tea", Tag: "tea"}, bobba.Packaging())
	assert.Equal(t, "ntd", bobba.PriceInfo().Currency)
	assert.Equal(t, 400.0, bobba.TotalCalories())
}

func TestLoadCake(t *testing.T) {
	rec, err := Load("testdata/queen_cake.yaml")
	require.NoError(t, err)

	cake, err := rec.Cake(directory.NewSeeded())
	require.NoError(t, err)

	assert.Equal(t, "Queen", cake.Pineapple().Name)
	assert.Equal(t, "taipei", cake.Manufacturer().Region)
	require.NotNil(t, cake.Manufacturer().Ranking)
	assert.Equal(t, 7, *cake.Manufacturer().Ranking)

	var names []string
	for _, ing := range cake.Ingredients() {
		names = append(names, ing.Name)
	}
	assert.Equal(t, []string{"Butter", "Egg Yolk", "Flour", "Honey", "Corn Syrup"}, names)

	syrup, ok := cake.IngredientByName("Corn Syrup")
	require.True(t, ok)
	require.NotNil(t, syrup.Quantity)
	assert.Equal(t, 2.0, *syrup.Quantity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("colour: green\n"))
	assert.Error(t, err)
}

func TestEmptyRecipeIsIncomplete(t *testing.T) {
	rec, err := Decode(strings.NewReader(""))
	require.NoError(t, err)

	_, err = rec.Bobba()
	assert.ErrorIs(t, err, types.ErrIncompleteBuild)
}

func TestBobbaWithoutPrice(t *testing.T) {
	rec, err := Decode(strings.NewReader("packaging: {size: 1, name: cup, tag: tea}\n"))
	require.NoError(t, err)

	_, err = rec.Bobba()
	assert.ErrorIs(t, err, types.ErrIncompleteBuild)
	assert.Contains(t, err.Error(), "price info")
}

func TestBobbaRejectsNonFinitePrice(t *testing.T) {
	for _, price := range []string{".inf", "-.inf", ".nan"} {
		t.Run(price, func(t *testing.T) {
			body := "packaging: {size: 1, name: cup, tag: tea}\nprice: {vendor: v, price: " + price + ", currency: ntd}\n"
			rec, err := Decode(strings.NewReader(body))
			require.NoError(t, err)

			_, err = rec.Bobba()
			assert.ErrorIs(t, err, types.ErrInvalidAmount)
		})
	}
}

func TestCakeErrors(t *testing.T) {
	const base = "packaging: {size: 1, name: box, tag: cake}\nprice: {vendor: v, price: 1, currency: ntd}\n"
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "missing pineapple", body: base + "manufacturer: {region: taipei, name: 佳德}\n", wantErr: types.ErrIncompleteBuild},
		{name: "missing manufacturer", body: base + "pineapple: queen\n", wantErr: types.ErrIncompleteBuild},
		{name: "unknown pineapple", body: base + "pineapple: smooth\nmanufacturer: {region: taipei, name: 佳德}\n", wantErr: types.ErrUnknownPineapple},
		{name: "unknown manufacturer", body: base + "pineapple: queen\nmanufacturer: {region: taipei, name: nobody}\n", wantErr: types.ErrNotFound},
		{name: "non-finite price", body: "packaging: {size: 1, name: box, tag: cake}\nprice: {vendor: v, price: .nan, currency: ntd}\npineapple: queen\nmanufacturer: {region: taipei, name: 佳德}\n", wantErr: types.ErrInvalidAmount},
		{name: "unknown basic ingredient", body: base + "pineapple: queen\nmanufacturer: {region: taipei, name: 佳德}\ningredients:\n  - basic: salt\n", wantErr: types.ErrUnknownIngredient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Decode(strings.NewReader(tt.body))
			require.NoError(t, err)
			_, err = rec.Cake(directory.NewSeeded())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIngredientEntryValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "both basic and name", body: "ingredients:\n  - {basic: honey, name: honey}\n"},
		{name: "neither basic nor name", body: "ingredients:\n  - {calories: 10}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Decode(strings.NewReader(tt.body))
			require.NoError(t, err)
			_, err = rec.Bobba()
			assert.ErrorIs(t, err, ErrInvalidIngredient)
		})
	}
}
