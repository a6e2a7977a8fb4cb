// Package directory keeps the pineapple cake manufacturers known per region
// together with their rankings.
//
// Region keys are lowercased on every insert and lookup. Rankings are keyed by
// region and name, so two manufacturers with the same name in different
// regions rank independently.
package directory

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/sweets/pkg/types"
)

// rankKey identifies a manufacturer in the ranking table.
type rankKey struct {
	region string
	name   string
}

// Directory maps regions to the ordered list of manufacturers in them.
// A Directory is safe for concurrent use.
type Directory struct {
	mu       sync.RWMutex
	regions  map[string][]string
	rankings map[rankKey]int
}

// New returns an empty Directory.
func New() *Directory {
	return &Directory{
		regions:  make(map[string][]string),
		rankings: make(map[rankKey]int),
	}
}

// NewSeeded returns a Directory populated with the built-in manufacturers
// and rankings.
func NewSeeded() *Directory {
	d := New()
	for _, r := range builtInRegions {
		for _, name := range r.manufacturers {
			d.AddManufacturer(r.region, name)
		}
	}
	for _, r := range builtInRankings {
		d.SetRanking(r.region, r.name, r.rank)
	}
	return d
}

// ByRegionAndName returns the manufacturer called name in region.
// Returns an error wrapping types.ErrNotFound when the region does not list
// that name. Ranking is nil when no ranking is recorded.
func (d *Directory) ByRegionAndName(region, name string) (types.Manufacturer, error) {
	key := normalize(region)

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, n := range d.regions[key] {
		if n != name {
			continue
		}
		m := types.Manufacturer{Name: n, Region: key}
		if rank, ok := d.rankings[rankKey{region: key, name: n}]; ok {
			m.Ranking = &rank
		}
		return m, nil
	}
	return types.Manufacturer{}, fmt.Errorf("%w: %q in region %q", types.ErrNotFound, name, key)
}

// AllByRegion returns the manufacturers of region in insertion order.
// Returns an empty slice (not nil) when the region is unknown.
func (d *Directory) AllByRegion(region string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := d.regions[normalize(region)]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// AddManufacturer appends name to region, creating the region if needed.
// Adding the same name twice stores it twice.
func (d *Directory) AddManufacturer(region, name string) {
	key := normalize(region)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.regions[key] = append(d.regions[key], name)
}

// SetRanking records the ranking of the manufacturer called name in region.
// A later call for the same manufacturer replaces the earlier ranking.
func (d *Directory) SetRanking(region, name string, rank int) {
	key := rankKey{region: normalize(region), name: name}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.rankings[key] = rank
}

// Regions returns the known region keys in sorted order.
func (d *Directory) Regions() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, 0, len(d.regions))
	for r := range d.regions {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

func normalize(region string) string {
	return cases.Lower(language.Und).String(region)
}
