// Package lookup holds the name→identifier tables imported from the parts
// workbook: material, processing method, and implementer, plus the grouping
// of material names into categories. Tables are built once per import and
// replaced wholesale; a failed import never leaves them half-updated.
package lookup

import "strings"

// Table maps display names to workbook identifiers while preserving the
// workbook's row order for UI listing.
type Table struct {
	names []string
	ids   map[string]string
}

func NewTable() *Table {
	return &Table{ids: make(map[string]string)}
}

// Add records a name→identifier pair. A repeated name updates the
// identifier in place; the row keeps its original position.
func (t *Table) Add(name, id string) {
	if _, exists := t.ids[name]; !exists {
		t.names = append(t.names, name)
	}
	t.ids[name] = id
}

// Resolve returns the identifier for a display name.
func (t *Table) Resolve(name string) (string, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// Names lists display names in workbook order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func (t *Table) Len() int {
	return len(t.names)
}

// DefaultCategory groups materials whose rows carry no category value.
const DefaultCategory = "common"

// CategoryIndex groups material display names by category, again in
// workbook order. Every member name has a corresponding entry in the
// material Table; the loader builds both from the same rows.
type CategoryIndex struct {
	categories []string
	members    map[string][]string
}

func NewCategoryIndex() *CategoryIndex {
	return &CategoryIndex{members: make(map[string][]string)}
}

// Add appends material to category, creating the category on first use.
// Duplicate members are ignored.
func (c *CategoryIndex) Add(category, material string) {
	if category == "" {
		category = DefaultCategory
	}
	existing, seen := c.members[category]
	if !seen {
		c.categories = append(c.categories, category)
	}
	for _, m := range existing {
		if m == material {
			return
		}
	}
	c.members[category] = append(existing, material)
}

// Categories lists category names in first-appearance order.
func (c *CategoryIndex) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Materials lists the member material names of a category.
func (c *CategoryIndex) Materials(category string) []string {
	members := c.members[category]
	out := make([]string, len(members))
	copy(out, members)
	return out
}

func (c *CategoryIndex) HasCategory(category string) bool {
	_, ok := c.members[category]
	return ok
}

// Has reports whether material belongs to category.
func (c *CategoryIndex) Has(category, material string) bool {
	for _, m := range c.members[category] {
		if m == material {
			return true
		}
	}
	return false
}

// Tables bundles one import's worth of lookup data.
type Tables struct {
	Material    *Table
	Processing  *Table
	Implementer *Table
	Categories  *CategoryIndex
}

func NewTables() *Tables {
	return &Tables{
		Material:    NewTable(),
		Processing:  NewTable(),
		Implementer: NewTable(),
		Categories:  NewCategoryIndex(),
	}
}

// AddMaterial records a material row in the table and its category group,
// keeping the two views consistent.
func (t *Tables) AddMaterial(name, id, category string) {
	t.Material.Add(name, id)
	t.Categories.Add(category, name)
}

// sheetRole identifies which lookup table a sheet or file feeds.
type sheetRole int

const (
	roleNone sheetRole = iota
	roleMaterial
	roleProcessing
	roleImplementer
)

// roleForName matches a sheet/file name against the keywords each table
// answers to. Matching is case-insensitive substring search, so localized
// workbooks only need the keyword somewhere in the sheet name.
func roleForName(name string) sheetRole {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "material"):
		return roleMaterial
	case strings.Contains(lower, "process"):
		return roleProcessing
	case strings.Contains(lower, "implementer"),
		strings.Contains(lower, "operator"):
		return roleImplementer
	}
	return roleNone
}

func (r sheetRole) String() string {
	switch r {
	case roleMaterial:
		return "material"
	case roleProcessing:
		return "processing"
	case roleImplementer:
		return "implementer"
	}
	return "unknown"
}
