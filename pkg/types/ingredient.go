package types

// Ingredient is a named component of a product with its calorie value.
// Quantity is optional; nil means the recipe did not state one.
type Ingredient struct {
	Name     string   `json:"name" yaml:"name"`
	Calories float64  `json:"calories" yaml:"calories"`
	Quantity *float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// WithQuantity returns a copy of the ingredient with Quantity set to q.
func (i Ingredient) WithQuantity(q float64) Ingredient {
	i.Quantity = &q
	return i
}

// clone returns a copy of i that shares no memory with it.
func (i Ingredient) clone() Ingredient {
	if i.Quantity != nil {
		q := *i.Quantity
		i.Quantity = &q
	}
	return i
}

func cloneIngredients(src []Ingredient) []Ingredient {
	out := make([]Ingredient, len(src))
	for n, ing := range src {
		out[n] = ing.clone()
	}
	return out
}
