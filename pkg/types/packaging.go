package types

// Packaging describes how a product is sold.
type Packaging struct {
	Size int    `json:"size" yaml:"size"`
	Name string `json:"name" yaml:"name"`
	Tag  string `json:"tag" yaml:"tag"`
}

// PriceInfo holds the vendor and the price of a product in its own currency.
// Currency is a code known to the currency table (euro, dollar, ntd, yen, yuan).
type PriceInfo struct {
	Vendor   string  `json:"vendor" yaml:"vendor"`
	Price    float64 `json:"price" yaml:"price"`
	Currency string  `json:"currency" yaml:"currency"`
}
