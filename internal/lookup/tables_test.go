package lookup

import (
	"reflect"
	"testing"
)

func TestTableAddAndResolve(t *testing.T) {
	table := NewTable()
	table.Add("Steel", "M01")
	table.Add("Aluminum", "M02")

	id, ok := table.Resolve("Steel")
	if !ok || id != "M01" {
		t.Errorf("Resolve(Steel) = (%q, %v), want (M01, true)", id, ok)
	}

	if _, ok := table.Resolve("Titanium"); ok {
		t.Error("Resolve(Titanium) found an entry that was never added")
	}
}

func TestTableRepeatedNameUpdatesInPlace(t *testing.T) {
	table := NewTable()
	table.Add("Steel", "M01")
	table.Add("Aluminum", "M02")
	table.Add("Steel", "M99")

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if id, _ := table.Resolve("Steel"); id != "M99" {
		t.Errorf("Resolve(Steel) = %q, want updated M99", id)
	}
	want := []string{"Steel", "Aluminum"}
	if got := table.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestCategoryIndex(t *testing.T) {
	idx := NewCategoryIndex()
	idx.Add("metal", "Steel")
	idx.Add("wood", "Oak")
	idx.Add("metal", "Aluminum")
	idx.Add("", "Rubber")
	idx.Add("metal", "Steel")

	wantCategories := []string{"metal", "wood", DefaultCategory}
	if got := idx.Categories(); !reflect.DeepEqual(got, wantCategories) {
		t.Errorf("Categories() = %v, want %v", got, wantCategories)
	}

	wantMetal := []string{"Steel", "Aluminum"}
	if got := idx.Materials("metal"); !reflect.DeepEqual(got, wantMetal) {
		t.Errorf("Materials(metal) = %v, want %v (duplicate must not repeat)", got, wantMetal)
	}

	if !idx.Has("metal", "Steel") {
		t.Error("Has(metal, Steel) = false, want true")
	}
	if idx.Has("wood", "Steel") {
		t.Error("Has(wood, Steel) = true, want false")
	}
	if !idx.HasCategory(DefaultCategory) {
		t.Errorf("HasCategory(%s) = false after adding an uncategorized row", DefaultCategory)
	}
	if idx.HasCategory("plastic") {
		t.Error("HasCategory(plastic) = true for an unknown category")
	}
}

func TestTablesAddMaterialKeepsViewsConsistent(t *testing.T) {
	tables := NewTables()
	tables.AddMaterial("Steel", "M01", "metal")
	tables.AddMaterial("Oak", "M10", "")

	if id, ok := tables.Material.Resolve("Steel"); !ok || id != "M01" {
		t.Errorf("Material.Resolve(Steel) = (%q, %v), want (M01, true)", id, ok)
	}
	if !tables.Categories.Has("metal", "Steel") {
		t.Error("category index missing Steel under metal")
	}
	if !tables.Categories.Has(DefaultCategory, "Oak") {
		t.Errorf("uncategorized material not grouped under %s", DefaultCategory)
	}
}

func TestRoleForName(t *testing.T) {
	tests := []struct {
		name string
		want sheetRole
	}{
		{"Material List", roleMaterial},
		{"materials", roleMaterial},
		{"RAW MATERIAL", roleMaterial},
		{"Processing", roleProcessing},
		{"process methods", roleProcessing},
		{"Implementers", roleImplementer},
		{"Operator List", roleImplementer},
		{"Summary", roleNone},
		{"", roleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roleForName(tt.name); got != tt.want {
				t.Errorf("roleForName(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}
