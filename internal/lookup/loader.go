package lookup

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"
)

// Loader reads a parts workbook into lookup Tables. Three source layouts
// are supported, chosen by path:
//
//   - an .xlsx workbook with material / processing / implementer sheets
//   - a directory of material.csv / processing.csv / implementer.csv
//   - a .parquet file of {sheet, name, id, category} rows
//
// Sheets and CSV files are matched to tables by name keyword, columns by
// header keyword; both case-insensitive. A missing sheet or column is a
// hard failure, and the previous Tables stay in effect on error.
type Loader struct {
	workbookPath string
}

// NewLoader creates a loader for the workbook at path.
func NewLoader(workbookPath string) *Loader {
	return &Loader{workbookPath: workbookPath}
}

// Load reads the workbook and builds a fresh set of Tables. The material
// and processing sheets are always required; the implementer sheet may be
// absent for workbooks feeding the reduced field set, which leaves the
// implementer table empty for the caller to police.
func (l *Loader) Load() (*Tables, error) {
	info, err := os.Stat(l.workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if info.IsDir() {
		return l.loadCSVDir()
	}

	switch ext := strings.ToLower(filepath.Ext(l.workbookPath)); ext {
	case ".xlsx", ".xlsm":
		return l.loadXLSX()
	case ".parquet":
		return l.loadParquet()
	case ".csv":
		return nil, fmt.Errorf("a single csv holds one sheet; point --workbook at a directory containing material.csv, processing.csv and implementer.csv")
	default:
		return nil, fmt.Errorf("unsupported workbook format: %s (supported: .xlsx, .parquet, csv directory)", ext)
	}
}

// headerIndex finds the first header containing any keyword,
// case-insensitive. skip excludes a column already claimed (so "ID Name"
// style headers can't serve twice). Returns -1 when no header matches.
func headerIndex(headers []string, skip int, keywords ...string) int {
	for i, h := range headers {
		if i == skip {
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(h))
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// sheetColumns locates the name/id (and optional category) columns of one
// sheet's header row.
type sheetColumns struct {
	name     int
	id       int
	category int
}

func resolveColumns(role sheetRole, headers []string) (sheetColumns, error) {
	cols := sheetColumns{category: -1}
	cols.name = headerIndex(headers, -1, "name")
	if cols.name < 0 {
		return cols, fmt.Errorf("%s sheet: no name column found in header %v", role, headers)
	}
	cols.id = headerIndex(headers, cols.name, "id", "code")
	if cols.id < 0 {
		return cols, fmt.Errorf("%s sheet: no identifier column found in header %v", role, headers)
	}
	if role == roleMaterial {
		cols.category = headerIndex(headers, -1, "categor", "group")
	}
	return cols, nil
}

// addRows feeds one sheet's data rows (header excluded) into tables.
// Rows missing a name or identifier are skipped, not errors.
func addRows(tables *Tables, role sheetRole, cols sheetColumns, rows [][]string) int {
	added := 0
	for _, row := range rows {
		name := cell(row, cols.name)
		id := cell(row, cols.id)
		if name == "" || id == "" {
			continue
		}
		switch role {
		case roleMaterial:
			tables.AddMaterial(name, id, cell(row, cols.category))
		case roleProcessing:
			tables.Processing.Add(name, id)
		case roleImplementer:
			tables.Implementer.Add(name, id)
		}
		added++
	}
	return added
}

func (l *Loader) loadXLSX() (*Tables, error) {
	f, err := excelize.OpenFile(l.workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	tables := NewTables()
	seen := map[sheetRole]bool{}

	for _, sheet := range f.GetSheetList() {
		role := roleForName(sheet)
		if role == roleNone || seen[role] {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("%s sheet %q is empty", role, sheet)
		}
		cols, err := resolveColumns(role, rows[0])
		if err != nil {
			return nil, err
		}
		added := addRows(tables, role, cols, rows[1:])
		seen[role] = true
		slog.Debug("Workbook sheet loaded", "sheet", sheet, "role", role.String(), "rows", added)
	}

	if err := requireSheets(seen); err != nil {
		return nil, err
	}
	return tables, nil
}

func (l *Loader) loadCSVDir() (*Tables, error) {
	entries, err := os.ReadDir(l.workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook directory: %w", err)
	}

	tables := NewTables()
	seen := map[sheetRole]bool{}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		role := roleForName(entry.Name())
		if role == roleNone || seen[role] {
			continue
		}
		rows, err := readCSV(filepath.Join(l.workbookPath, entry.Name()))
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("%s sheet %q is empty", role, entry.Name())
		}
		cols, err := resolveColumns(role, rows[0])
		if err != nil {
			return nil, err
		}
		added := addRows(tables, role, cols, rows[1:])
		seen[role] = true
		slog.Debug("Workbook csv loaded", "file", entry.Name(), "role", role.String(), "rows", added)
	}

	if err := requireSheets(seen); err != nil {
		return nil, err
	}
	return tables, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// workbookRow is the flattened parquet layout: one row per lookup entry,
// with the sheet name carried as a column.
type workbookRow struct {
	Sheet    string `json:"sheet" parquet:"sheet"`
	Name     string `json:"name" parquet:"name"`
	ID       string `json:"id" parquet:"id"`
	Category string `json:"category" parquet:"category,optional"`
}

func (l *Loader) loadParquet() (*Tables, error) {
	file, err := os.Open(l.workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat workbook: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[workbookRow](pf)
	defer reader.Close()

	tables := NewTables()
	seen := map[sheetRole]bool{}
	rows := make([]workbookRow, 128)

	for {
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			role := roleForName(row.Sheet)
			name := strings.TrimSpace(row.Name)
			id := strings.TrimSpace(row.ID)
			if role == roleNone || name == "" || id == "" {
				continue
			}
			switch role {
			case roleMaterial:
				tables.AddMaterial(name, id, strings.TrimSpace(row.Category))
			case roleProcessing:
				tables.Processing.Add(name, id)
			case roleImplementer:
				tables.Implementer.Add(name, id)
			}
			seen[role] = true
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Workbook parquet loaded",
		"materials", tables.Material.Len(),
		"processing", tables.Processing.Len(),
		"implementers", tables.Implementer.Len())

	if err := requireSheets(seen); err != nil {
		return nil, err
	}
	return tables, nil
}

// requireSheets enforces the hard-failure contract for the two sheets
// every workbook variant must carry.
func requireSheets(seen map[sheetRole]bool) error {
	var missing []string
	for _, role := range []sheetRole{roleMaterial, roleProcessing} {
		if !seen[role] {
			missing = append(missing, role.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("workbook is missing required sheets: %s", strings.Join(missing, ", "))
	}
	return nil
}
