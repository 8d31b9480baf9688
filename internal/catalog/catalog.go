package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/parables-of-the-word-api/internal/models"
)

// ErrEmptyCatalog is returned when a catalog is built from no records
var ErrEmptyCatalog = errors.New("catalog must contain at least one parable")

// canonicalGospels fixes the display order of known gospel names
var canonicalGospels = []string{"Matthew", "Mark", "Luke", "John"}

// Catalog is an immutable, ordered set of parables unique by ID
type Catalog struct {
	records []models.Parable
	index   map[string]int
}

// New validates records and builds a catalog that keeps their order
func New(records []models.Parable) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		records: make([]models.Parable, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		switch {
		case strings.TrimSpace(r.ID) == "":
			return nil, fmt.Errorf("parable at position %d: id is required", i)
		case strings.TrimSpace(r.Title) == "":
			return nil, fmt.Errorf("parable %q: title is required", r.ID)
		case strings.TrimSpace(r.Reference) == "":
			return nil, fmt.Errorf("parable %q: reference is required", r.ID)
		case len(r.Gospels) == 0:
			return nil, fmt.Errorf("parable %q: at least one gospel is required", r.ID)
		}
		if _, dup := c.index[r.ID]; dup {
			return nil, fmt.Errorf("parable %q: duplicate id", r.ID)
		}
		c.index[r.ID] = i
		c.records[i] = r.Clone()
	}
	return c, nil
}

// MustNew is like New but panics on invalid records
func MustNew(records []models.Parable) *Catalog {
	c, err := New(records)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the compiled-in catalog
func Default() *Catalog {
	return MustNew(parables)
}

// Len returns the number of parables
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns every parable in catalog order
func (c *Catalog) All() []models.Parable {
	out := make([]models.Parable, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}

// Get looks up a parable by ID
func (c *Catalog) Get(id string) (models.Parable, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Parable{}, false
	}
	return c.records[i].Clone(), true
}

// First returns the first parable in catalog order
func (c *Catalog) First() models.Parable {
	return c.records[0].Clone()
}

// Neighbors returns the parables immediately before and after id.
// Either is nil at the ends of the catalog or when id is unknown.
func (c *Catalog) Neighbors(id string) (prev, next *models.Parable) {
	i, ok := c.index[id]
	if !ok {
		return nil, nil
	}
	if i > 0 {
		p := c.records[i-1].Clone()
		prev = &p
	}
	if i < len(c.records)-1 {
		n := c.records[i+1].Clone()
		next = &n
	}
	return prev, next
}

// Gospels returns the distinct gospel names used by the catalog, the four
// canonical gospels first and anything else alphabetically after them
func (c *Catalog) Gospels() []string {
	seen := make(map[string]bool)
	for _, r := range c.records {
		for _, g := range r.Gospels {
			seen[g] = true
		}
	}

	gospels := make([]string, 0, len(seen))
	for _, g := range canonicalGospels {
		if seen[g] {
			gospels = append(gospels, g)
			delete(seen, g)
		}
	}
	rest := make([]string, 0, len(seen))
	for g := range seen {
		rest = append(rest, g)
	}
	slices.Sort(rest)
	return append(gospels, rest...)
}
