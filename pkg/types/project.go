package types

import (
	"fmt"
	"strings"
)

// Project is the aggregate root: a DIY project together with the
// materials it needs, the steps to complete it, and the categories it is
// filed under. The id is assigned by the store on insert and never
// reassigned.
type Project struct {
	ID             int64
	Name           string
	EstimatedHours Decimal
	ActualHours    Decimal
	Difficulty     int // 1 (easiest) to 5 (hardest) by convention
	Notes          string

	// Related collections, populated only by an aggregate fetch.
	// Always non-nil after a successful fetch, however empty.
	Materials  []Material
	Steps      []Step
	Categories []Category
}

// Material is one supply line item belonging to exactly one project.
type Material struct {
	ID          int64
	ProjectID   int64
	Name        string
	NumRequired int
	Cost        Decimal
}

// Step is one ordered instruction belonging to exactly one project.
type Step struct {
	ID        int64
	ProjectID int64
	Text      string
	Order     int
}

// Category is an independent label shared across projects through the
// project_category association table.
type Category struct {
	ID   int64
	Name string
}

// ProjectSummary is the listing record: scalar identity only, no
// collections.
type ProjectSummary struct {
	ID   int64
	Name string
}

// String renders the full aggregate in the multi-line form the CLI
// prints after a select or show.
func (p *Project) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID=%d, name=%s, estimated hours=%s, actual hours=%s, difficulty=%d, notes=%s",
		p.ID, p.Name, p.EstimatedHours, p.ActualHours, p.Difficulty, p.Notes)
	for _, m := range p.Materials {
		fmt.Fprintf(&b, "\n   Material: %s (x%d, %s)", m.Name, m.NumRequired, m.Cost)
	}
	for _, s := range p.Steps {
		fmt.Fprintf(&b, "\n   Step %d: %s", s.Order, s.Text)
	}
	for _, c := range p.Categories {
		fmt.Fprintf(&b, "\n   Category: %s", c.Name)
	}
	return b.String()
}
