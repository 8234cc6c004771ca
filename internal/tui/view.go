package tui

import (
	"fmt"
	"strings"

	"partsnap/internal/naming"
	"partsnap/internal/session"
)

// progressWidth caps the glyph strip when the terminal width is unknown.
const progressWidth = 60

func (m Model) View() string {
	switch m.phase {
	case phaseExporting:
		return m.renderMessage("Exporting", "Writing the archive and the session report...")
	case phaseDone:
		return m.renderDone()
	}
	return m.renderReview()
}

func (m Model) renderReview() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n\n")

	for i, id := range m.fields {
		b.WriteString(m.renderField(id, i == m.focused))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(styleError.Render(m.status))
		} else {
			b.WriteString(styleConfirmed.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHelp.Render("tab/shift+tab fields • ←/→ options • enter confirm • ctrl+p/ctrl+n image • ctrl+e export • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderHeader() string {
	h := m.sess.Current()
	if h == nil {
		return styleHeader.Render("No images loaded")
	}

	title := fmt.Sprintf("Image %d/%d  %s", m.sess.Cursor()+1, m.sess.Len(), h.Name)
	line := styleHeader.Render(title)

	details := make([]string, 0, 4)
	if kind := h.Kind(); kind != "" {
		details = append(details, kind)
	}
	if h.Meta.Width > 0 {
		details = append(details, fmt.Sprintf("%dx%d", h.Meta.Width, h.Meta.Height))
	}
	details = append(details, humanSize(h.Size))
	if !h.Meta.CapturedAt.IsZero() {
		details = append(details, "captured "+h.Meta.CapturedAt.Format("2006-01-02 15:04"))
	}
	return line + "\n" + styleLabel.Render(strings.Join(details, "  "))
}

func (m Model) renderProgress() string {
	confirmed := m.sess.Ledger().Len()
	counts := fmt.Sprintf("%d/%d confirmed", confirmed, m.sess.Len())
	limit := progressWidth
	if m.width > 0 && m.width-20 < limit {
		limit = m.width - 20
	}
	if m.sess.Len() > limit {
		return styleLabel.Render(counts)
	}

	var strip strings.Builder
	for i := 0; i < m.sess.Len(); i++ {
		strip.WriteString(stateGlyph(m.sess.StateOf(i)))
	}
	return strip.String() + "  " + styleLabel.Render(counts)
}

func stateGlyph(s session.State) string {
	switch s {
	case session.Confirmed:
		return styleConfirmed.Render("●")
	case session.Ready:
		return styleFocused.Render("▶")
	case session.Editing:
		return styleLabel.Render("◐")
	}
	return styleLabel.Render("○")
}

func (m Model) renderField(id fieldID, focused bool) string {
	marker := "  "
	label := styleLabel.Render(fmt.Sprintf("%-12s", id.label()))
	if focused {
		marker = styleFocused.Render("> ")
		label = styleFocused.Render(fmt.Sprintf("%-12s", id.label()))
	}

	var value string
	if id.isText() {
		value = m.inputView(id)
	} else {
		value = m.fieldValue(id)
		if focused {
			value = "◂ " + value + " ▸"
		}
	}
	return marker + label + value
}

// inputView renders a text widget without mutating the model.
func (m Model) inputView(id fieldID) string {
	switch id {
	case fieldPartName:
		return m.partName.View()
	case fieldWeight:
		return m.weight.View()
	case fieldNotes:
		return m.notes.View()
	case fieldNumber:
		return m.number.View()
	}
	return ""
}

func (m Model) renderPreview() string {
	preview := m.sess.PreviewFull()
	label := styleLabel.Render("Preview     ")
	if m.sess.CanConfirm() && !strings.Contains(preview, naming.Placeholder) {
		return "  " + label + stylePreview.Render(preview)
	}
	return "  " + label + stylePreviewStale.Render(preview)
}

func (m Model) renderDone() string {
	body := fmt.Sprintf("Renamed %d of %d images.\n\nArchive  %s\nReport   %s\n\nPress any key to exit.",
		m.renamed, m.sess.Len(), m.archivePath, m.reportPath)
	return m.renderMessage("Export complete", body)
}

func (m Model) renderMessage(title, body string) string {
	content := styleHeader.Render(title) + "\n\n" + body
	return "\n" + styleBorder.Render(content) + "\n"
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
