// Package naming is the filename engine: it validates the per-image form,
// resolves display names to workbook identifiers, and composes the
// underscore-delimited filename
//
//	{number}_{part}_{weight}_{unit}_{materialID}_{processingID}[_{implementerID}]_{photoType}_{notes}
//
// The field order and delimiter are a stable external contract. Field values
// are sanitized but underscores inside them are not escaped, so a value
// containing an underscore makes the boundaries ambiguous when parsing the
// name back; consumers of these names rely on the exact composition, so the
// ambiguity is kept rather than fixed.
package naming

import (
	"strconv"
	"strings"

	"partsnap/internal/lookup"
)

// Placeholder substitutes for an identifier whose display name is missing
// from the loaded tables. The name still renders so the user can spot a
// stale workbook instead of losing the preview.
const Placeholder = "???"

// Form holds the editable fields for the image under review. Category,
// Material, Processing and Implementer carry display names; resolution to
// identifiers happens at generation time.
type Form struct {
	PartName    string
	Weight      string
	Unit        string
	Category    string
	Material    string
	Processing  string
	Implementer string
	PhotoType   string
	Notes       string
	// Number overrides the derived sequence number when positive.
	Number int
}

// Options selects the variant-dependent behavior of the engine.
type Options struct {
	// RequireImplementer gates generation on a non-empty implementer field
	// and includes its identifier in the composed name.
	RequireImplementer bool
}

var weightAllowed = func() [128]bool {
	var ok [128]bool
	for c := '0'; c <= '9'; c++ {
		ok[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		ok[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		ok[c] = true
	}
	ok['.'] = true
	ok['-'] = true
	return ok
}()

func validWeight(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] >= 128 || !weightAllowed[w[i]] {
			return false
		}
	}
	return true
}

// Ready reports whether the form passes every required-field constraint.
// It is the validation gate for the confirm action: a false result disables
// confirmation, it never aborts the session.
func Ready(form Form, tables *lookup.Tables, opts Options) bool {
	if strings.TrimSpace(form.PartName) == "" {
		return false
	}
	if !validWeight(strings.TrimSpace(form.Weight)) {
		return false
	}
	if form.Category == "" || !tables.Categories.HasCategory(form.Category) {
		return false
	}
	if form.Material == "" || !tables.Categories.Has(form.Category, form.Material) {
		return false
	}
	if form.Processing == "" {
		return false
	}
	if _, ok := tables.Processing.Resolve(form.Processing); !ok {
		return false
	}
	if opts.RequireImplementer && strings.TrimSpace(form.Implementer) == "" {
		return false
	}
	return true
}

// Generate composes the extension-exclusive filename for form.
// history is the numbering input: the assigned names already recorded in the
// ledger. When the form fails validation Generate reports ok=false with an
// empty name; callers gate the confirm action on it.
func Generate(form Form, history []string, tables *lookup.Tables, opts Options) (string, bool) {
	if !Ready(form, tables, opts) {
		return "", false
	}
	return Preview(form, history, tables, opts), true
}

// Preview composes the name for an in-progress form without the readiness
// gate, so the user always sees the name the current fields would produce.
// Unresolvable display names render as the Placeholder; empty fields render
// empty.
func Preview(form Form, history []string, tables *lookup.Tables, opts Options) string {
	number := form.Number
	if number <= 0 {
		number = NextNumber(history)
	}

	parts := []string{
		strconv.Itoa(number),
		SanitizeField(form.PartName),
		SanitizeField(form.Weight),
		form.Unit,
		resolveOr(tables.Material, form.Material),
		resolveOr(tables.Processing, form.Processing),
	}
	if opts.RequireImplementer {
		parts = append(parts, resolveOr(tables.Implementer, strings.TrimSpace(form.Implementer)))
	}
	parts = append(parts, form.PhotoType, SanitizeField(form.Notes))

	return strings.Join(parts, "_")
}

func resolveOr(t *lookup.Table, name string) string {
	if name == "" {
		return ""
	}
	if id, ok := t.Resolve(name); ok {
		return id
	}
	return Placeholder
}

// FullName appends the original filename's extension (the text after its
// last dot) to an assigned name. Originals without an extension yield the
// assigned name unchanged.
func FullName(assigned, original string) string {
	if i := strings.LastIndexByte(original, '.'); i >= 0 && i+1 < len(original) {
		return assigned + "." + original[i+1:]
	}
	return assigned
}
