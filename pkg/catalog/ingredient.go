package catalog

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/sweets/pkg/types"
)

// BasicIngredient identifies one of the built-in cake ingredients.
type BasicIngredient int

// Basic ingredients.
const (
	Butter BasicIngredient = iota
	EggYolk
	Sugar
	Flour
	Honey
	CornSyrup
)

// basicIngredientKeys are the identifiers accepted by ParseBasicIngredient.
var basicIngredientKeys = [...]string{
	Butter:    "butter",
	EggYolk:   "eggyolk",
	Sugar:     "sugar",
	Flour:     "flour",
	Honey:     "honey",
	CornSyrup: "cornsyrup",
}

var basicIngredients = [...]types.Ingredient{
	Butter:    {Name: "Butter", Calories: 1290.0},
	EggYolk:   {Name: "Egg Yolk", Calories: 110.0},
	Sugar:     {Name: "Sugar", Calories: 232.0},
	Flour:     {Name: "Flour", Calories: 915.0},
	Honey:     {Name: "Honey", Calories: 257.75},
	CornSyrup: {Name: "Corn Syrup", Calories: 482.5},
}

// String returns the identifier of the ingredient.
func (b BasicIngredient) String() string {
	if b < 0 || int(b) >= len(basicIngredientKeys) {
		return fmt.Sprintf("BasicIngredient(%d)", int(b))
	}
	return basicIngredientKeys[b]
}

// Ingredient returns the catalog entry for b.
// It panics if b is not one of the declared constants.
func Ingredient(b BasicIngredient) types.Ingredient {
	return basicIngredients[b]
}

// BasicIngredients returns every basic ingredient in declaration order.
func BasicIngredients() []BasicIngredient {
	all := make([]BasicIngredient, len(basicIngredients))
	for i := range all {
		all[i] = BasicIngredient(i)
	}
	return all
}

// ParseBasicIngredient resolves an identifier such as "eggYolk", "egg-yolk"
// or "Corn Syrup". It returns types.ErrUnknownIngredient for anything else.
func ParseBasicIngredient(s string) (BasicIngredient, error) {
	key := foldKey(s)
	for i, k := range basicIngredientKeys {
		if k == key {
			return BasicIngredient(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", types.ErrUnknownIngredient, s)
}

// foldKey lowercases s and drops spaces, dashes and underscores so that the
// camelCase, kebab-case and display forms of an identifier compare equal.
func foldKey(s string) string {
	lower := cases.Lower(language.Und).String(s)
	out := make([]rune, 0, len(lower))
	for _, r := range lower {
		switch r {
		case ' ', '-', '_':
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
