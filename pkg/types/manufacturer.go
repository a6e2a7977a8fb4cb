package types

// Manufacturer is a cake maker located in a region.
// Ranking is nil when the directory has no ranking for it.
type Manufacturer struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Ranking *int   `json:"ranking,omitempty"`
}
