// Package recipe decodes YAML product recipes and assembles them with the
// product builders.
//
// A recipe names the packaging, the price, and the ingredients of a drink or
// cake. Ingredients either reference the built-in catalog or are spelled out:
//
//	packaging: {size: 10, name: bubble tea with green tea, tag: tea}
//	price: {vendor: stuff, price: 20, currency: ntd}
//	ingredients:
//	  - basic: honey
//	  - {name: milk, calories: 100, quantity: 10}
//
// Cake recipes also carry a pineapple variety and a manufacturer.
package recipe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/sweets/pkg/catalog"
	"github.com/mesh-intelligence/sweets/pkg/currency"
	"github.com/mesh-intelligence/sweets/pkg/directory"
	"github.com/mesh-intelligence/sweets/pkg/product"
	"github.com/mesh-intelligence/sweets/pkg/types"
)

// ErrInvalidIngredient reports an ingredient entry that sets neither or both
// of basic and name.
var ErrInvalidIngredient = errors.New("ingredient needs either basic or name")

// Recipe is a decoded recipe file.
type Recipe struct {
	Packaging    *types.Packaging `yaml:"packaging"`
	Price        *types.PriceInfo `yaml:"price"`
	Pineapple    string           `yaml:"pineapple"`
	Manufacturer *Maker           `yaml:"manufacturer"`
	Ingredients  []Ingredient     `yaml:"ingredients"`
}

// Maker references a manufacturer in the directory.
type Maker struct {
	Region string `yaml:"region"`
	Name   string `yaml:"name"`
}

// Ingredient is one ingredient entry of a recipe.
type Ingredient struct {
	Basic    string   `yaml:"basic"`
	Name     string   `yaml:"name"`
	Calories float64  `yaml:"calories"`
	Quantity *float64 `yaml:"quantity"`
}

// Decode reads a recipe from r. Unknown keys are rejected. An empty document
// decodes to an empty recipe.
func Decode(r io.Reader) (*Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rec Recipe
	if err := dec.Decode(&rec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode recipe: %w", err)
	}
	return &rec, nil
}

// Load reads the recipe file at path.
func Load(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recipe: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Bobba builds a bubble tea drink from the recipe.
func (r *Recipe) Bobba() (*types.Product, error) {
	b := product.NewBobba()
	if err := fill(r, b); err != nil {
		return nil, err
	}
	return b.Build()
}

// Cake builds a pineapple cake from the recipe, resolving the manufacturer
// in d. The recipe's ingredients are added after the standard cake base.
func (r *Recipe) Cake(d *directory.Directory) (*types.Cake, error) {
	if r.Pineapple == "" {
		return nil, fmt.Errorf("%w: pineapple not set", types.ErrIncompleteBuild)
	}
	if r.Manufacturer == nil {
		return nil, fmt.Errorf("%w: manufacturer not set", types.ErrIncompleteBuild)
	}

	kind, err := catalog.ParsePineappleType(r.Pineapple)
	if err != nil {
		return nil, err
	}
	maker, err := d.ByRegionAndName(r.Manufacturer.Region, r.Manufacturer.Name)
	if err != nil {
		return nil, err
	}

	b := product.NewCake(catalog.Pineapple(kind), maker)
	if err := fill(r, b); err != nil {
		return nil, err
	}
	return b.Build()
}

// fill copies the recipe fields into b. Missing packaging or price are left
// unset so that Build reports them.
func fill[T any](r *Recipe, b *product.Builder[T]) error {
	if r.Packaging != nil {
		b.WithPackaging(*r.Packaging)
	}
	if r.Price != nil {
		if err := currency.CheckAmount(r.Price.Price); err != nil {
			return fmt.Errorf("price: %w", err)
		}
		b.WithPriceInfo(*r.Price)
	}
	for i, entry := range r.Ingredients {
		ing, err := entry.resolve()
		if err != nil {
			return fmt.Errorf("ingredient %d: %w", i, err)
		}
		b.AddIngredient(ing)
	}
	return nil
}

func (in Ingredient) resolve() (types.Ingredient, error) {
	switch {
	case in.Basic != "" && in.Name != "", in.Basic == "" && in.Name == "":
		return types.Ingredient{}, ErrInvalidIngredient
	case in.Basic != "":
		id, err := catalog.ParseBasicIngredient(in.Basic)
		if err != nil {
			return types.Ingredient{}, err
		}
		ing := catalog.Ingredient(id)
		ing.Quantity = in.Quantity
		return ing, nil
	default:
		return types.Ingredient{Name: in.Name, Calories: in.Calories, Quantity: in.Quantity}, nil
	}
}
