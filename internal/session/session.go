// Package session owns one review workflow: the loaded lookup tables, the
// imported image sequence, the cursor, the form under edit, and the rename
// ledger. Every operation is a plain synchronous method on the Session so
// the pairing and numbering behavior stays strictly ordered with respect to
// ledger writes.
package session

import (
	"partsnap/internal/ledger"
	"partsnap/internal/lookup"
	"partsnap/internal/naming"
	"partsnap/internal/profile"
	"partsnap/internal/sequence"
)

// State classifies one image's position in the review workflow.
type State int

const (
	// Unvisited images have never been under the cursor.
	Unvisited State = iota
	// Editing marks a visited image whose form does not validate, and any
	// revisited image until its form validates again.
	Editing
	// Ready marks the image under the cursor once the form validates.
	Ready
	// Confirmed images have a ledger entry and are not under the cursor.
	Confirmed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Ready:
		return "ready"
	case Confirmed:
		return "confirmed"
	}
	return "unvisited"
}

// Session is the explicit context every workflow operation runs against.
// Methods are not safe for concurrent use; the UI goroutine owns the
// session, and export works on a ledger snapshot instead of sharing it.
type Session struct {
	Profile profile.Profile
	Tables  *lookup.Tables

	// Form is the live field set for the image under the cursor. The UI
	// writes fields directly; Confirm reads them.
	Form naming.Form

	seq     *sequence.Sequence
	ledger  *ledger.Ledger
	cursor  int
	visited []bool
}

// New creates a session over loaded tables with an empty image sequence.
func New(tables *lookup.Tables, prof profile.Profile) *Session {
	s := &Session{
		Profile: prof,
		Tables:  tables,
		ledger:  ledger.New(),
	}
	s.resetForm()
	return s
}

// resetForm rebuilds the form from scratch: profile defaults for the
// per-shot fields and the first workbook row preselected for each picker,
// mirroring how a fresh set of dropdowns comes up.
func (s *Session) resetForm() {
	form := naming.Form{
		Unit:      s.Profile.DefaultUnit(),
		PhotoType: s.Profile.DefaultPhotoType(),
		Notes:     s.Profile.DefaultNotes,
	}
	if cats := s.Tables.Categories.Categories(); len(cats) > 0 {
		form.Category = cats[0]
		if mats := s.Tables.Categories.Materials(cats[0]); len(mats) > 0 {
			form.Material = mats[0]
		}
	}
	if names := s.Tables.Processing.Names(); len(names) > 0 {
		form.Processing = names[0]
	}
	if names := s.Tables.Implementer.Names(); len(names) > 0 {
		form.Implementer = names[0]
	}
	s.Form = form
}

// advanceForm applies the carry-over policy on every cursor move: the
// fields describing the part persist, the per-shot fields reset so each
// image starts from the profile defaults and automatic numbering.
func (s *Session) advanceForm() {
	s.Form.PhotoType = s.Profile.DefaultPhotoType()
	s.Form.Notes = s.Profile.DefaultNotes
	s.Form.Number = 0
}

// ImportImages installs a newly imported sequence, resetting the cursor,
// the visited marks, the ledger, and the per-shot form fields together.
// Callers import the folder first and only pass a fully built sequence, so
// a failed import never touches session state.
func (s *Session) ImportImages(seq *sequence.Sequence) {
	s.seq = seq
	s.cursor = 0
	s.visited = make([]bool, seq.Len())
	s.markVisited()
	s.ledger.Reset()
	s.advanceForm()
}

func (s *Session) markVisited() {
	if s.cursor >= 0 && s.cursor < len(s.visited) {
		s.visited[s.cursor] = true
	}
}

// Current returns the handle under the cursor, nil for an empty session.
func (s *Session) Current() *sequence.Handle {
	return s.seq.At(s.cursor)
}

func (s *Session) Cursor() int {
	return s.cursor
}

func (s *Session) Len() int {
	return s.seq.Len()
}

func (s *Session) Sequence() *sequence.Sequence {
	return s.seq
}

func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Next moves the cursor forward one image, reporting whether it moved.
// Navigation is never gated on validity or confirmation.
func (s *Session) Next() bool {
	if s.cursor+1 >= s.seq.Len() {
		return false
	}
	s.cursor++
	s.markVisited()
	s.advanceForm()
	return true
}

// Prev moves the cursor back one image, reporting whether it moved.
func (s *Session) Prev() bool {
	if s.cursor == 0 || s.seq.Len() == 0 {
		return false
	}
	s.cursor--
	s.markVisited()
	s.advanceForm()
	return true
}

// CanConfirm reports whether the current form passes validation.
func (s *Session) CanConfirm() bool {
	return naming.Ready(s.Form, s.Tables, s.Profile.NamingOptions())
}

// numberingHistory is the numbering input for the image under the cursor:
// every assigned name except the image's own earlier entry. An image never
// counts toward its own number, so revisiting the second photo of a
// completed pair shows and records that pair's number, not the next one.
func (s *Session) numberingHistory() []string {
	except := ""
	if h := s.Current(); h != nil {
		except = h.Name
	}
	return s.ledger.AssignedNames(except)
}

// Preview is the live extension-exclusive name for the current form,
// placeholders included, numbered exactly as Confirm would number it.
func (s *Session) Preview() string {
	return naming.Preview(s.Form, s.numberingHistory(), s.Tables, s.Profile.NamingOptions())
}

// PreviewFull appends the current original's extension to the preview.
func (s *Session) PreviewFull() string {
	h := s.Current()
	if h == nil {
		return s.Preview()
	}
	return naming.FullName(s.Preview(), h.Name)
}

// Confirm records the generated name for the image under the cursor and
// advances. The sequence number is resolved against the other images'
// entries as they stood before this confirmation, never against the
// image's own earlier entry, so re-confirming with an unchanged ledger and
// form reproduces the same name, while confirming out of order renumbers
// exactly as the other entries dictate. At the last image the cursor
// stays put and Completed reports the finished review.
//
// ok=false means the form failed validation or no image is under the
// cursor; the session is unchanged then.
func (s *Session) Confirm() (string, bool) {
	handle := s.Current()
	if handle == nil {
		return "", false
	}

	name, ok := naming.Generate(s.Form, s.numberingHistory(), s.Tables, s.Profile.NamingOptions())
	if !ok {
		return "", false
	}

	s.ledger.Set(handle.Name, name, handle.Content)

	if s.cursor+1 < s.seq.Len() {
		s.cursor++
		s.markVisited()
		s.advanceForm()
	}
	return name, true
}

// Assigned returns image i's recorded name when it is confirmed.
func (s *Session) Assigned(i int) (string, bool) {
	h := s.seq.At(i)
	if h == nil {
		return "", false
	}
	e, ok := s.ledger.Get(h.Name)
	if !ok {
		return "", false
	}
	return e.Assigned, true
}

// StateOf derives image i's workflow state. The image under the cursor is
// always Editing or Ready, including a revisited confirmed image, whose
// re-confirmation overwrites its ledger entry.
func (s *Session) StateOf(i int) State {
	h := s.seq.At(i)
	if h == nil {
		return Unvisited
	}
	if i == s.cursor {
		if s.CanConfirm() {
			return Ready
		}
		return Editing
	}
	if _, ok := s.ledger.Get(h.Name); ok {
		return Confirmed
	}
	if i < len(s.visited) && s.visited[i] {
		return Editing
	}
	return Unvisited
}

// Completed reports whether every image in the sequence has a ledger entry.
func (s *Session) Completed() bool {
	return s.seq.Len() > 0 && s.ledger.Len() == s.seq.Len()
}
