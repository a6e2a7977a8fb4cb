package types

// DefaultCultivationCountry is where pineapples are grown unless a variety
// says otherwise.
const DefaultCultivationCountry = "Taiwan"

// Pineapple is a pineapple variety used in cakes.
type Pineapple struct {
	Name               string  `json:"name"`
	Origin             *string `json:"origin,omitempty"`
	CultivationCountry *string `json:"cultivation_country,omitempty"`
}

// Cultivation returns the country the pineapple is grown in: the override
// when one is set, DefaultCultivationCountry otherwise.
func (p Pineapple) Cultivation() string {
	if p.CultivationCountry != nil && *p.CultivationCountry != "" {
		return *p.CultivationCountry
	}
	return DefaultCultivationCountry
}
