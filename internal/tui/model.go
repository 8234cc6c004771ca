// Package tui drives the guided review: one image at a time, a form whose
// edits feed the live filename preview, confirm to advance, export on
// demand. All session mutation happens on the bubbletea update goroutine;
// the export command works on a ledger snapshot taken before it starts.
package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"partsnap/internal/archive"
	"partsnap/internal/ledger"
	"partsnap/internal/report"
	"partsnap/internal/session"
)

type phase int

const (
	phaseReview phase = iota
	phaseExporting
	phaseDone
)

// fieldID enumerates the form fields in their on-screen order.
type fieldID int

const (
	fieldPartName fieldID = iota
	fieldWeight
	fieldUnit
	fieldCategory
	fieldMaterial
	fieldProcessing
	fieldImplementer
	fieldPhotoType
	fieldNotes
	fieldNumber
)

func (f fieldID) label() string {
	switch f {
	case fieldPartName:
		return "Part name"
	case fieldWeight:
		return "Weight"
	case fieldUnit:
		return "Unit"
	case fieldCategory:
		return "Category"
	case fieldMaterial:
		return "Material"
	case fieldProcessing:
		return "Processing"
	case fieldImplementer:
		return "Implementer"
	case fieldPhotoType:
		return "Photo type"
	case fieldNotes:
		return "Notes"
	case fieldNumber:
		return "Number"
	}
	return ""
}

// isText distinguishes free-text fields from cycling pickers.
func (f fieldID) isText() bool {
	switch f {
	case fieldPartName, fieldWeight, fieldNotes, fieldNumber:
		return true
	}
	return false
}

// Config carries the review surroundings into the model, for the export
// command and the session report.
type Config struct {
	Workbook    string
	ImageFolder string
	// ProfilePath is recorded in the report; empty for the default profile.
	ProfilePath string
	OutDir      string
	// ReportPath overrides the report location; empty derives it from the
	// archive name.
	ReportPath string
}

type exportDoneMsg struct {
	archivePath string
	reportPath  string
	renamed     int
	err         error
}

// Model is the bubbletea model wrapping one review session.
type Model struct {
	sess *session.Session
	cfg  Config

	phase   phase
	fields  []fieldID
	focused int

	partName textinput.Model
	weight   textinput.Model
	notes    textinput.Model
	number   textinput.Model

	status    string
	statusErr bool

	archivePath string
	reportPath  string
	renamed     int

	width int
}

// New builds the model over a session whose images are already imported.
func New(sess *session.Session, cfg Config) Model {
	fields := []fieldID{fieldPartName, fieldWeight, fieldUnit, fieldCategory, fieldMaterial, fieldProcessing}
	if sess.Profile.RequireImplementer {
		fields = append(fields, fieldImplementer)
	}
	fields = append(fields, fieldPhotoType, fieldNotes, fieldNumber)

	m := Model{
		sess:     sess,
		cfg:      cfg,
		fields:   fields,
		partName: newInput("part name", 120),
		weight:   newInput("12.5", 32),
		notes:    newInput("notes", 120),
		number:   newInput("auto", 8),
	}
	m.syncInputs()
	m.partName.Focus()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Prompt = ""
	return ti
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			// The ledger is untouched; the user fixes the problem and
			// retries from where they were.
			m.phase = phaseReview
			m.setError(fmt.Sprintf("export failed: %v", msg.err))
			return m, nil
		}
		m.phase = phaseDone
		m.archivePath = msg.archivePath
		m.reportPath = msg.reportPath
		m.renamed = msg.renamed
		return m, nil

	case tea.KeyMsg:
		switch m.phase {
		case phaseReview:
			return m.updateReview(msg)
		case phaseExporting:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		case phaseDone:
			return m, tea.Quit
		}
	}

	if m.phase == phaseReview {
		cmd := m.updateInputs(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Horizontal arrows cycle picker options; on text fields they stay
	// with the input for cursor movement.
	if key == "left" || key == "right" {
		if id := m.fields[m.focused]; !id.isText() {
			delta := 1
			if key == "left" {
				delta = -1
			}
			m.cycle(id, delta)
			m.clearStatus()
			return m, nil
		}
	}

	switch key {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)

	case "ctrl+n":
		m.syncForm()
		if m.sess.Next() {
			m.syncInputs()
			m.clearStatus()
		}
		return m, nil

	case "ctrl+p":
		m.syncForm()
		if m.sess.Prev() {
			m.syncInputs()
			m.clearStatus()
		}
		return m, nil

	case "enter":
		m.syncForm()
		name, ok := m.sess.Confirm()
		if !ok {
			m.setError("form incomplete: fill the required fields before confirming")
			return m, nil
		}
		m.syncInputs()
		if m.sess.Completed() {
			m.setStatus(fmt.Sprintf("confirmed %s (all %d images done, ctrl+e to export)", name, m.sess.Len()))
		} else {
			m.setStatus("confirmed " + name)
		}
		return m, nil

	case "ctrl+e":
		entries := m.sess.Ledger().Entries()
		if len(entries) == 0 {
			m.setError("nothing to export yet: confirm at least one image")
			return m, nil
		}
		m.phase = phaseExporting
		return m, m.exportCmd(entries)
	}

	cmd := m.updateInputs(msg)
	m.syncForm()
	return m, cmd
}

func (m *Model) inputFor(id fieldID) *textinput.Model {
	switch id {
	case fieldPartName:
		return &m.partName
	case fieldWeight:
		return &m.weight
	case fieldNotes:
		return &m.notes
	case fieldNumber:
		return &m.number
	}
	return nil
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if cur := m.inputFor(m.fields[m.focused]); cur != nil {
		cur.Blur()
	}
	m.focused = (m.focused + delta + len(m.fields)) % len(m.fields)
	if next := m.inputFor(m.fields[m.focused]); next != nil {
		return m, next.Focus()
	}
	return m, nil
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, 4)
	for _, id := range []fieldID{fieldPartName, fieldWeight, fieldNotes, fieldNumber} {
		in := m.inputFor(id)
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// syncForm copies widget values into the session form. A number that does
// not parse as a positive integer means automatic numbering.
func (m *Model) syncForm() {
	m.sess.Form.PartName = m.partName.Value()
	m.sess.Form.Weight = m.weight.Value()
	m.sess.Form.Notes = m.notes.Value()
	if n, err := strconv.Atoi(strings.TrimSpace(m.number.Value())); err == nil && n > 0 {
		m.sess.Form.Number = n
	} else {
		m.sess.Form.Number = 0
	}
}

// syncInputs refreshes the widgets from the session form after the cursor
// moved and the carry-over policy ran.
func (m *Model) syncInputs() {
	m.partName.SetValue(m.sess.Form.PartName)
	m.weight.SetValue(m.sess.Form.Weight)
	m.notes.SetValue(m.sess.Form.Notes)
	if m.sess.Form.Number > 0 {
		m.number.SetValue(strconv.Itoa(m.sess.Form.Number))
	} else {
		m.number.SetValue("")
	}
}

func (m *Model) options(id fieldID) []string {
	switch id {
	case fieldUnit:
		return m.sess.Profile.Units
	case fieldCategory:
		return m.sess.Tables.Categories.Categories()
	case fieldMaterial:
		return m.sess.Tables.Categories.Materials(m.sess.Form.Category)
	case fieldProcessing:
		return m.sess.Tables.Processing.Names()
	case fieldImplementer:
		return m.sess.Tables.Implementer.Names()
	case fieldPhotoType:
		return m.sess.Profile.PhotoTypes
	}
	return nil
}

func (m *Model) fieldValue(id fieldID) string {
	switch id {
	case fieldUnit:
		return m.sess.Form.Unit
	case fieldCategory:
		return m.sess.Form.Category
	case fieldMaterial:
		return m.sess.Form.Material
	case fieldProcessing:
		return m.sess.Form.Processing
	case fieldImplementer:
		return m.sess.Form.Implementer
	case fieldPhotoType:
		return m.sess.Form.PhotoType
	}
	return ""
}

func (m *Model) setFieldValue(id fieldID, v string) {
	switch id {
	case fieldUnit:
		m.sess.Form.Unit = v
	case fieldCategory:
		m.sess.Form.Category = v
	case fieldMaterial:
		m.sess.Form.Material = v
	case fieldProcessing:
		m.sess.Form.Processing = v
	case fieldImplementer:
		m.sess.Form.Implementer = v
	case fieldPhotoType:
		m.sess.Form.PhotoType = v
	}
}

// cycle steps a picker to its next or previous option. Changing the
// category snaps the material to the new category's first member so the
// two stay consistent.
func (m *Model) cycle(id fieldID, delta int) {
	opts := m.options(id)
	if len(opts) == 0 {
		return
	}
	idx := 0
	cur := m.fieldValue(id)
	for i, o := range opts {
		if o == cur {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(opts)) % len(opts)
	m.setFieldValue(id, opts[idx])

	if id == fieldCategory && !m.sess.Tables.Categories.Has(m.sess.Form.Category, m.sess.Form.Material) {
		if mats := m.sess.Tables.Categories.Materials(m.sess.Form.Category); len(mats) > 0 {
			m.sess.Form.Material = mats[0]
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
}

func (m Model) exportCmd(entries []ledger.Entry) tea.Cmd {
	cfg := m.cfg
	total := m.sess.Len()
	return func() tea.Msg {
		archivePath := filepath.Join(cfg.OutDir, archive.DefaultName(time.Now()))
		if err := archive.WriteFile(archivePath, entries); err != nil {
			return exportDoneMsg{err: err}
		}
		reportPath := cfg.ReportPath
		if reportPath == "" {
			reportPath = strings.TrimSuffix(archivePath, ".zip") + ".yaml"
		}
		rep := report.Build(cfg.Workbook, cfg.ImageFolder, cfg.ProfilePath, filepath.Base(archivePath), total, entries)
		if err := report.Save(reportPath, rep); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{archivePath: archivePath, reportPath: reportPath, renamed: len(entries)}
	}
}
