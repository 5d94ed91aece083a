// Package registry holds the in-memory set of loaded regions, looked up by
// case-insensitive name.
package registry

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/sells-group/gerrymander-cli/internal/model"
)

// ErrRegionNotFound is returned when no region matches a name.
var ErrRegionNotFound = eris.New("region not found")

// Regions stores regions in ingestion order with a case-folded name index.
// Adding a name that is already present appends a second entry; lookups keep
// resolving to the first one. It is not safe for concurrent use.
type Regions struct {
	list  []*model.Region
	index map[string]*model.Region
}

// NewRegions creates an empty registry.
func NewRegions() *Regions {
	return &Regions{index: make(map[string]*model.Region)}
}

// Key returns the lookup key for a region name.
func Key(name string) string {
	return cases.Fold().String(name)
}

// Add appends a region to the registry.
func (r *Regions) Add(region *model.Region) {
	if !r.add(region) {
		zap.L().Warn("registry: duplicate region name, earlier entry keeps the lookup",
			zap.String("region", region.Name),
		)
	}
}

// add appends region and reports whether its name was new.
func (r *Regions) add(region *model.Region) bool {
	r.list = append(r.list, region)
	key := Key(region.Name)
	if _, dup := r.index[key]; dup {
		return false
	}
	r.index[key] = region
	return true
}

// Find returns the region whose name matches name ignoring case.
func (r *Regions) Find(name string) (*model.Region, error) {
	region, ok := r.index[Key(name)]
	if !ok {
		return nil, eris.Wrapf(ErrRegionNotFound, "registry: find %q", name)
	}
	return region, nil
}

// Len returns the number of entries, duplicates included.
func (r *Regions) Len() int {
	return len(r.list)
}

// All returns the regions in ingestion order.
func (r *Regions) All() []*model.Region {
	out := make([]*model.Region, len(r.list))
	copy(out, r.list)
	return out
}

// Merge appends every region of other, in order, without logging the
// duplicates other already reported.
func (r *Regions) Merge(other *Regions) {
	for _, region := range other.list {
		r.add(region)
	}
}
