// Package browse implements search, gospel filtering and selection over a
// parable catalog.
package browse

import (
	"strings"

	"github.com/parables-of-the-word-api/internal/catalog"
	"github.com/parables-of-the-word-api/internal/models"
)

// AllGospels is the filter value that matches every parable
const AllGospels = "All"

// ViewState is the browsing state owned by an Engine
type ViewState struct {
	Query      string `json:"query"`
	Gospel     string `json:"gospel"`
	SelectedID string `json:"selected_id"`
}

// Engine tracks a search query, a gospel filter and a single selected
// parable. It is not safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	records []models.Parable
	state   ViewState

	visible []models.Parable
	cached  bool
}

// NewEngine returns an engine with an empty query, the "All" filter and the
// first catalog entry selected
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{
		catalog: c,
		records: c.All(),
		state: ViewState{
			Gospel:     AllGospels,
			SelectedID: c.First().ID,
		},
	}
}

// SetQuery replaces the search text
func (e *Engine) SetQuery(text string) {
	if text == e.state.Query {
		return
	}
	e.state.Query = text
	e.cached = false
}

// SetGospelFilter replaces the gospel filter. Names that no parable uses
// simply produce an empty result.
func (e *Engine) SetGospelFilter(name string) {
	if name == e.state.Gospel {
		return
	}
	e.state.Gospel = name
	e.cached = false
}

// VisibleRecords returns the parables matching the current query and filter
// in catalog order
func (e *Engine) VisibleRecords() []models.Parable {
	if !e.cached {
		e.visible = Filter(e.records, e.state.Query, e.state.Gospel)
		e.cached = true
	}
	out := make([]models.Parable, len(e.visible))
	for i, p := range e.visible {
		out[i] = p.Clone()
	}
	return out
}

// Select marks id as the selected parable, falling back to the first
// catalog entry when id is unknown
func (e *Engine) Select(id string) {
	if _, ok := e.catalog.Get(id); ok {
		e.state.SelectedID = id
		return
	}
	e.state.SelectedID = e.catalog.First().ID
}

// SelectedRecord returns the selected parable
func (e *Engine) SelectedRecord() models.Parable {
	if p, ok := e.catalog.Get(e.state.SelectedID); ok {
		return p
	}
	return e.catalog.First()
}

// State returns a snapshot of the view state
func (e *Engine) State() ViewState {
	return e.state
}

// Filter returns the records whose title or reference contains query
// (case-insensitively) and which belong to gospel, or to any gospel when
// gospel is AllGospels. Order is preserved.
func Filter(records []models.Parable, query, gospel string) []models.Parable {
	q := strings.ToLower(query)
	out := make([]models.Parable, 0, len(records))
	for _, p := range records {
		if !matchesQuery(p, q) {
			continue
		}
		if gospel != AllGospels && !p.InGospel(gospel) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p models.Parable, lowered string) bool {
	return strings.Contains(strings.ToLower(p.Title), lowered) ||
		strings.Contains(strings.ToLower(p.Reference), lowered)
}
