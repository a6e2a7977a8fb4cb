package types

import "encoding/json"

// Cake is a pineapple cake: a Product made from a pineapple variety and sold
// by a manufacturer.
type Cake struct {
	*Product
	pineapple    Pineapple
	manufacturer Manufacturer
}

// NewCake wraps product with the cake's pineapple and manufacturer.
func NewCake(product *Product, pineapple Pineapple, manufacturer Manufacturer) *Cake {
	return &Cake{
		Product:      product,
		pineapple:    pineapple,
		manufacturer: manufacturer,
	}
}

// Pineapple returns the pineapple variety used in the cake.
func (c *Cake) Pineapple() Pineapple { return c.pineapple }

// Manufacturer returns the cake's manufacturer.
func (c *Cake) Manufacturer() Manufacturer { return c.manufacturer }

// MarshalJSON implements json.Marshaler.
func (c *Cake) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		productJSON
		Pineapple    Pineapple    `json:"pineapple"`
		Manufacturer Manufacturer `json:"manufacturer"`
	}{
		productJSON:  c.Product.toJSON(),
		Pineapple:    c.pineapple,
		Manufacturer: c.manufacturer,
	})
}
