package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartcity/tourdifficulty/internal/domain"
)

// Catalog implements domain.AreaRepository over a fixed, ordered slice.
// It is never mutated after construction, so concurrent reads need no locking.
type Catalog struct {
	areas []domain.Area
	index map[string]int
}

// NewCatalog validates the entries and builds a catalog in the given order
func NewCatalog(areas []domain.Area) (*Catalog, error) {
	validate := domain.NewValidator()

	c := &Catalog{
		areas: make([]domain.Area, 0, len(areas)),
		index: make(map[string]int, len(areas)),
	}
	for _, a := range areas {
		if err := validate.Struct(a); err != nil {
			return nil, fmt.Errorf("catalog: invalid area %q: %w", a.ID, err)
		}
		if _, dup := c.index[a.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate area id %q", a.ID)
		}
		c.index[a.ID] = len(c.areas)
		c.areas = append(c.areas, a)
	}
	return c, nil
}

// NewDefaultCatalog returns the built-in Jeonbuk catalog
func NewDefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultAreas())
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the area with the given id
func (c *Catalog) Get(id string) (domain.Area, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Area{}, fmt.Errorf("catalog: %q: %w", id, domain.ErrAreaNotFound)
	}
	return c.areas[i], nil
}

// List returns the catalog, optionally filtered by search
func (c *Catalog) List(search string) []domain.Area {
	q := strings.ToLower(strings.TrimSpace(search))

	out := make([]domain.Area, 0, len(c.areas))
	for _, a := range c.areas {
		if q == "" || matches(a, q) {
			out = append(out, a)
		}
	}
	return out
}

// IDs returns every area id in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.areas))
	for i, a := range c.areas {
		ids[i] = a.ID
	}
	return ids
}

// Len returns the number of areas
func (c *Catalog) Len() int {
	return len(c.areas)
}

func matches(a domain.Area, q string) bool {
	for _, field := range []string{a.Name, a.NameKR, a.Region, a.Category} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// LoadCatalog builds a catalog from an external source. An empty source is
// an error, since every status request needs at least the default area.
func LoadCatalog(ctx context.Context, src domain.AreaSource) (*Catalog, error) {
	areas, err := src.LoadAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: load: %w", err)
	}
	if len(areas) == 0 {
		return nil, fmt.Errorf("catalog: source returned no areas")
	}
	return NewCatalog(areas)
}
