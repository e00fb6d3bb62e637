package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ParamSpec documents one recognized parameter of a report.
type ParamSpec struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // int, decimal, date, enum
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// Definition describes a catalog report: a named, parameterized, read-only
// query with a fixed output shape.
type Definition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []ParamSpec `json:"parameters"`
}

// Table is the tabular result of a report run. Column names and order are
// fixed per report and do not vary by invocation.
type Table struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// NewTable creates an empty table with the given column set.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns, Rows: [][]interface{}{}}
}

// Append adds one row. The caller is responsible for matching the column
// count; a mismatch is a programming error in the report adapter.
func (t *Table) Append(values ...interface{}) {
	t.Rows = append(t.Rows, values)
}

// Report is the envelope returned by a catalog run.
type Report struct {
	RunID       uuid.UUID         `json:"run_id"`
	ReportID    string            `json:"report_id"`
	Name        string            `json:"name"`
	GeneratedAt time.Time         `json:"generated_at"`
	Parameters  map[string]string `json:"parameters,omitempty"`
	Result      *Table            `json:"result"`
}

// RunFunc executes one report with raw string parameters.
type RunFunc func(ctx context.Context, params Params) (*Table, error)

type entry struct {
	def Definition
	run RunFunc
}

// Catalog is the registry of reports. Domain packages register their
// reports at startup; the catalog itself holds no mutable state after
// wiring and is safe for concurrent runs.
type Catalog struct {
	entries map[string]*entry
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]*entry)}
}

// Register adds a report to the catalog. Duplicate IDs are a wiring bug and
// panic at startup rather than shadowing silently.
func (c *Catalog) Register(def Definition, run RunFunc) {
	if _, exists := c.entries[def.ID]; exists {
		panic(fmt.Sprintf("reporting: duplicate report id %q", def.ID))
	}
	c.entries[def.ID] = &entry{def: def, run: run}
}

// Definitions returns all registered reports ordered by ID.
func (c *Catalog) Definitions() []Definition {
	defs := make([]Definition, 0, len(c.entries))
	for _, e := range c.entries {
		defs = append(defs, e.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// Find returns the definition for the given report ID, or nil.
func (c *Catalog) Find(id string) *Definition {
	e, ok := c.entries[id]
	if !ok {
		return nil
	}
	def := e.def
	return &def
}

// Run executes the report with the given ID. Unknown IDs return
// ErrUnknownReport; parameter and store failures surface unchanged from the
// report's service.
func (c *Catalog) Run(ctx context.Context, id string, params Params) (*Report, error) {
	e, ok := c.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, id)
	}

	// Keep only recognized parameters in the report envelope.
	kept := map[string]string{}
	for _, spec := range e.def.Parameters {
		if v, ok := params[spec.Name]; ok && v != "" {
			kept[spec.Name] = v
		}
	}

	table, err := e.run(ctx, params)
	if err != nil {
		return nil, err
	}
	if table.Rows == nil {
		table.Rows = [][]interface{}{}
	}

	return &Report{
		RunID:       uuid.New(),
		ReportID:    e.def.ID,
		Name:        e.def.Name,
		GeneratedAt: time.Now().UTC(),
		Parameters:  kept,
		Result:      table,
	}, nil
}
