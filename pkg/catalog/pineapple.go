package catalog

import (
	"fmt"

	"github.com/mesh-intelligence/sweets/pkg/types"
)

// PineappleType identifies a pineapple variety.
type PineappleType int

// Pineapple varieties.
const (
	Cayenne PineappleType = iota
	Queen
	RedSpanish
	Abacaxi
)

var pineappleKeys = [...]string{
	Cayenne:    "cayenne",
	Queen:      "queen",
	RedSpanish: "redspanish",
	Abacaxi:    "abacaxi",
}

type variety struct {
	name   string
	origin string
}

var pineapples = [...]variety{
	Cayenne:    {name: "Cayenne", origin: "Venezuela"},
	Queen:      {name: "Queen", origin: "Malaysia"},
	RedSpanish: {name: "Red Spanish", origin: "Mexico"},
	Abacaxi:    {name: "Abacaxi", origin: "Brazil"},
}

func (p PineappleType) String() string {
	if p < 0 || int(p) >= len(pineappleKeys) {
		return fmt.Sprintf("PineappleType(%d)", int(p))
	}
	return pineappleKeys[p]
}

// Pineapple returns a fresh Pineapple value for the variety. No variety sets
// a cultivation override.
// It panics if p is not one of the declared constants.
func Pineapple(p PineappleType) types.Pineapple {
	v := pineapples[p]
	origin := v.origin
	return types.Pineapple{Name: v.name, Origin: &origin}
}

// PineappleTypes returns every variety in declaration order.
func PineappleTypes() []PineappleType {
	all := make([]PineappleType, len(pineapples))
	for i := range all {
		all[i] = PineappleType(i)
	}
	return all
}

// ParsePineappleType resolves a variety name such as "queen" or
// "red-spanish". It returns types.ErrUnknownPineapple for anything else.
func ParsePineappleType(s string) (PineappleType, error) {
	key := foldKey(s)
	for i, k := range pineappleKeys {
		if k == key {
			return PineappleType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", types.ErrUnknownPineapple, s)
}
