package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight     = 1
	chartOriginX     = 2
	chartOriginY     = headerHeight
	tableGap         = 3
	tableOriginY     = headerHeight
	tableHeaderLines = 2
	addButtonText    = "[ Add ]"
	yAxisCaption     = "Ability to execute ↑"
	xAxisCaption     = "Completeness of vision →"
)

var (
	tableColumnWidths = [numColumns]int{16, 8, 8, 8}
	tableColumnTitles = [numColumns]string{"Label", "Vision", "Ability", "Delete"}
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")).Background(lipgloss.Color("#243141"))
	deleteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

func (m model) tableOriginX() int {
	return chartOriginX + m.canvas.Grid().Cols + tableGap
}

// tableColumnAt maps an x offset inside the table to a column, or -1 for
// the separator between columns.
func tableColumnAt(x int) int {
	start := 0
	for i, w := range tableColumnWidths {
		if x >= start && x < start+w {
			return i
		}
		start += w + 1
	}
	return -1
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	header := titleStyle.Render("Strategic Quadrant")
	if m.drag.Dragging() {
		header += dimStyle.Render(fmt.Sprintf("  dragging point %d", m.drag.TargetID()))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.chartView(),
		strings.Repeat(" ", tableGap),
		m.tableView(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusLine())
}

func (m model) chartView() string {
	lines := m.canvas.Render(m.store.Points(), m.drag.TargetID())
	caption := []rune(yAxisCaption)
	var b strings.Builder
	for i, line := range lines {
		// The y caption reads bottom to top.
		ch := " "
		if idx := len(lines) - 1 - i; idx < len(caption) {
			ch = string(caption[idx])
		}
		b.WriteString(dimStyle.Render(ch))
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", chartOriginX))
	b.WriteString(dimStyle.Render(xAxisCaption))
	return b.String()
}

func (m model) tableView() string {
	var lines []string
	lines = append(lines, buttonStyle.Render(addButtonText))

	cells := make([]string, numColumns)
	for i, title := range tableColumnTitles {
		cells[i] = headerStyle.Render(fit(title, tableColumnWidths[i]))
	}
	lines = append(lines, strings.Join(cells, " "))

	for row, p := range m.store.Points() {
		for col := 0; col < numColumns; col++ {
			w := tableColumnWidths[col]
			var cell string
			switch {
			case m.mode == ModeEditing && p.ID == m.editID && col == int(m.editField):
				cell = padTo(m.input.View(), w)
			case col == colDelete:
				cell = deleteStyle.Render(fit("Delete", w))
			default:
				cell = fit(displayLabel(p.Value(Field(col))), w)
			}
			if row == m.selectedRow && col == m.selectedCol && m.mode != ModeEditing {
				cell = selectedStyle.Render(cell)
			}
			cells[col] = cell
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	if m.store.Len() == 0 {
		lines = append(lines, dimStyle.Render("(no points, press a to add one)"))
	}
	return strings.Join(lines, "\n")
}

func (m model) statusLine() string {
	var status string
	switch m.mode {
	case ModeEditing:
		status = fmt.Sprintf("Mode: EDIT | Point %d %s | Enter/Esc=done, Tab=next field", m.editID, m.editField)
	case ModeFileInput:
		op := "Export PNG"
		if m.fileOp == FileOpSaveVisualTXT {
			op = "Export TXT"
		}
		status = fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", op, m.filename)
	case ModeConfirm:
		status = fmt.Sprintf("Mode: CONFIRM | Delete point %d? (y/n)", m.confirmID)
	default:
		status = fmt.Sprintf("Mode: %s | Points: %d", m.modeString(), m.store.Len())
		if m.successMessage != "" {
			status += " | " + m.successMessage
		} else if m.errorMessage == "" {
			status += " | ? for help | q to quit"
		}
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		if m.drag.Dragging() {
			return "DRAG"
		}
		return "NORMAL"
	case ModeEditing:
		return "EDIT"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func helpLines() []string {
	return []string{
		"Strategic Quadrant Help",
		"=======================",
		"",
		"Chart:",
		"------",
		"  Left-drag a dot   Move the point (its label can be grabbed too)",
		"",
		"Table:",
		"------",
		"  h/←/j/↓/k/↑/l/→  Move the table cursor",
		"  Shift+h/j/k/l    Nudge the selected point by one unit",
		"  Tab/Shift+Tab    Next/previous column",
		"  Enter/e          Edit the selected cell (Delete column deletes)",
		"  Tab (editing)    Save and edit the next field",
		"  Enter/Esc        Finish editing",
		"  a                Add a point",
		"  d/x/Delete       Delete the selected point",
		"",
		"Clipboard:",
		"----------",
		"  y                Copy the table as tab separated text",
		"  p                Add points from clipboard rows (label, x, y)",
		"",
		"Export:",
		"-------",
		"  S                Export as PNG image",
		"  T                Export as text",
		"",
		"General:",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit (the chart is saved after every change)",
	}
}

func (m model) maxHelpScroll() int {
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	maxScroll := len(helpLines()) - visibleHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	return maxScroll
}

func (m model) helpView() string {
	lines := helpLines()
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = len(lines)
	}

	startLine := m.helpScroll
	if startLine > len(lines) {
		startLine = len(lines)
	}
	endLine := startLine + visibleHeight
	if endLine > len(lines) {
		endLine = len(lines)
	}

	result := strings.Join(lines[startLine:endLine], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(lines))
	return result
}

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > w {
		runes = runes[:len(runes)-1]
	}
	return padTo(string(runes), w)
}

func padTo(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
