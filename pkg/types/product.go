package types

import "encoding/json"

// Converter converts an amount between two currency codes.
type Converter interface {
	Convert(amount float64, from, to string) (float64, error)
}

// Product is an assembled drink or cake. A Product is immutable: it is
// created by a builder and only exposes read accessors.
type Product struct {
	id          string
	ingredients []Ingredient
	packaging   Packaging
	priceInfo   PriceInfo
}

// NewProduct returns a Product holding its own deep copy of ingredients.
func NewProduct(id string, ingredients []Ingredient, packaging Packaging, priceInfo PriceInfo) *Product {
	return &Product{
		id:          id,
		ingredients: cloneIngredients(ingredients),
		packaging:   packaging,
		priceInfo:   priceInfo,
	}
}

// ID returns the product's UUID v7.
func (p *Product) ID() string { return p.id }

// Packaging returns the product's packaging.
func (p *Product) Packaging() Packaging { return p.packaging }

// PriceInfo returns the product's vendor and price.
func (p *Product) PriceInfo() PriceInfo { return p.priceInfo }

// Ingredients returns a deep copy of the ingredient list in insertion order.
// Returns an empty slice (not nil) for a product without ingredients.
func (p *Product) Ingredients() []Ingredient {
	return cloneIngredients(p.ingredients)
}

// IngredientByName returns the first ingredient named name. The boolean is
// false when no ingredient matches.
func (p *Product) IngredientByName(name string) (Ingredient, bool) {
	for _, ing := range p.ingredients {
		if ing.Name == name {
			return ing.clone(), true
		}
	}
	return Ingredient{}, false
}

// MostCaloricIngredient returns the ingredient with the highest calories.
// On ties the earliest ingredient wins. The boolean is false for an empty
// ingredient list; a list of zero-calorie ingredients yields the first one.
func (p *Product) MostCaloricIngredient() (Ingredient, bool) {
	if len(p.ingredients) == 0 {
		return Ingredient{}, false
	}
	best := p.ingredients[0]
	for _, ing := range p.ingredients[1:] {
		if ing.Calories > best.Calories {
			best = ing
		}
	}
	return best.clone(), true
}

// TotalCalories returns the sum of all ingredient calories.
func (p *Product) TotalCalories() float64 {
	var total float64
	for _, ing := range p.ingredients {
		total += ing.Calories
	}
	return total
}

// PriceIn converts the product price from its own currency to target.
func (p *Product) PriceIn(conv Converter, target string) (float64, error) {
	return conv.Convert(p.priceInfo.Price, p.priceInfo.Currency, target)
}

type productJSON struct {
	ID          string       `json:"id"`
	Ingredients []Ingredient `json:"ingredients"`
	Packaging   Packaging    `json:"packaging"`
	PriceInfo   PriceInfo    `json:"price_info"`
}

func (p *Product) toJSON() productJSON {
	return productJSON{
		ID:          p.id,
		Ingredients: p.Ingredients(),
		Packaging:   p.packaging,
		PriceInfo:   p.priceInfo,
	}
}

// MarshalJSON implements json.Marshaler.
func (p *Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toJSON())
}
