// Package product assembles drinks and cakes.
//
// A Builder accumulates ingredients, packaging and price information and
// produces an immutable snapshot on Build. The builder is generic over the
// value it finishes into, so the same fluent calls build a plain
// *types.Product or a *types.Cake.
//
//	b := product.NewBobba().
//	    WithPackaging(pack).
//	    WithPriceInfo(price).
//	    AddIngredient(milk).
//	    AddIngredient(tapioca)
//	bobba, err := b.Build()
package product

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/sweets/pkg/catalog"
	"github.com/mesh-intelligence/sweets/pkg/types"
)

// State is the lifecycle position of a Builder.
type State int

// Builder states.
const (
	StateEmpty State = iota
	StateAccumulating
	StateBuilt
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAccumulating:
		return "accumulating"
	case StateBuilt:
		return "built"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Builder accumulates the fields of a product. Builders are not safe for
// concurrent use.
type Builder[T any] struct {
	ingredients []types.Ingredient
	packaging   *types.Packaging
	priceInfo   *types.PriceInfo
	state       State
	finish      func(*types.Product) T
}

// NewBobba returns a Builder for a bubble tea drink with no ingredients.
func NewBobba() *Builder[*types.Product] {
	return newBuilder(func(p *types.Product) *types.Product { return p })
}

// cakeBase is the ingredient list every cake starts from.
var cakeBase = []catalog.BasicIngredient{catalog.Butter, catalog.EggYolk, catalog.Flour}

// NewCake returns a Builder for a pineapple cake made from pineapple and sold
// by manufacturer. The ingredient list starts with butter, egg yolk and
// flour.
func NewCake(pineapple types.Pineapple, manufacturer types.Manufacturer) *Builder[*types.Cake] {
	b := newBuilder(func(p *types.Product) *types.Cake {
		return types.NewCake(p, pineapple, manufacturer)
	})
	for _, id := range cakeBase {
		b.AddIngredient(catalog.Ingredient(id))
	}
	return b
}

func newBuilder[T any](finish func(*types.Product) T) *Builder[T] {
	return &Builder[T]{
		ingredients: []types.Ingredient{},
		finish:      finish,
	}
}

// WithPackaging sets the packaging. The last call wins.
func (b *Builder[T]) WithPackaging(p types.Packaging) *Builder[T] {
	b.packaging = &p
	b.touch()
	return b
}

// WithPriceInfo sets the vendor and price. The last call wins.
func (b *Builder[T]) WithPriceInfo(m types.PriceInfo) *Builder[T] {
	b.priceInfo = &m
	b.touch()
	return b
}

// AddIngredient appends an ingredient.
func (b *Builder[T]) AddIngredient(i types.Ingredient) *Builder[T] {
	b.ingredients = append(b.ingredients, i)
	b.touch()
	return b
}

// AddIngredients appends each ingredient in order.
func (b *Builder[T]) AddIngredients(is ...types.Ingredient) *Builder[T] {
	for _, i := range is {
		b.AddIngredient(i)
	}
	return b
}

// State returns the builder's lifecycle state.
func (b *Builder[T]) State() State { return b.state }

// Build returns a snapshot of the accumulated fields. It returns an error
// wrapping types.ErrIncompleteBuild when packaging or price info is missing;
// an empty ingredient list is allowed. Build may be called again once the
// missing fields are supplied. Later changes to the builder never affect a
// value returned earlier.
func (b *Builder[T]) Build() (T, error) {
	b.state = StateBuilt

	var zero T
	switch {
	case b.packaging == nil:
		return zero, fmt.Errorf("%w: packaging not set", types.ErrIncompleteBuild)
	case b.priceInfo == nil:
		return zero, fmt.Errorf("%w: price info not set", types.ErrIncompleteBuild)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return zero, fmt.Errorf("generating product UUID: %w", err)
	}

	p := types.NewProduct(id.String(), b.ingredients, *b.packaging, *b.priceInfo)
	return b.finish(p), nil
}

// touch moves an empty or built builder back to accumulating.
func (b *Builder[T]) touch() {
	b.state = StateAccumulating
}
