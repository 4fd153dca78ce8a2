package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

var tableHeader = []string{"Label", "Vision", "Ability"}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func (m *model) copyTable() {
	if err := clipboard.WriteAll(formatPointTable(m.store.Points())); err != nil {
		m.errorMessage = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.successMessage = fmt.Sprintf("Copied %d points", m.store.Len())
}

func (m *model) pasteRows() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("paste failed: %v", err)
		return
	}
	rows := parsePointRows(cleanClipboardText(text))
	if len(rows) == 0 {
		m.errorMessage = "nothing to paste"
		return
	}
	for _, r := range rows {
		m.store.Add(r.label, r.x, r.y)
	}
	m.selectedRow = m.store.Len() - 1
	m.successMessage = fmt.Sprintf("Pasted %d points", len(rows))
}

// formatPointTable renders points as tab separated rows with a header.
func formatPointTable(points []Point) string {
	var b strings.Builder
	b.WriteString(strings.Join(tableHeader, "\t"))
	b.WriteString("\n")
	for _, p := range points {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", displayLabel(p.Label), p.X, p.Y)
	}
	return b.String()
}

type pointRow struct {
	label string
	x, y  Coord
}

// parsePointRows reads "label, x, y" rows separated by tabs or commas.
// Missing coordinates take the default position; the header written by
// formatPointTable is skipped.
func parsePointRows(text string) []pointRow {
	var rows []pointRow
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sep := ","
		if strings.Contains(line, "\t") {
			sep = "\t"
		}
		parts := strings.Split(line, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if isHeaderRow(parts) {
			continue
		}
		row := pointRow{label: parts[0], x: Number(defaultX), y: Number(defaultY)}
		if len(parts) > 1 && parts[1] != "" {
			row.x = parseCoord(parts[1])
		}
		if len(parts) > 2 && parts[2] != "" {
			row.y = parseCoord(parts[2])
		}
		rows = append(rows, row)
	}
	return rows
}

func isHeaderRow(parts []string) bool {
	if len(parts) != len(tableHeader) {
		return false
	}
	for i, h := range tableHeader {
		if !strings.EqualFold(parts[i], h) {
			return false
		}
	}
	return true
}

func parseCoord(s string) Coord {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(v)
	}
	return Text(s)
}

func withExt(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}

func isHTML(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "<") &&
		(strings.Contains(text, "<html") || strings.Contains(text, "<body") || strings.Contains(text, "<div") || strings.Contains(text, "<table"))
}

func extractTextFromHTML(html string) string {
	var result strings.Builder
	result.Grow(len(html))
	inTag := false
	for _, r := range html {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	text := result.String()
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&quot;", "\"")
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	return text
}

func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	if isHTML(text) {
		text = extractTextFromHTML(text)
	}
	text = stripRTF(text)
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := result.String()
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return normalized
}

func stripRTF(text string) string {
	if !strings.HasPrefix(text, "{\\rtf") && !strings.Contains(text, "\\rtf") {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '{' || r == '}' {
			continue
		}
		if r == '\\' {
			if i+1 < len(runes) {
				next := runes[i+1]
				if (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z') {
					start := i + 1
					i++
					for i < len(runes) {
						if runes[i] == ' ' || runes[i] == '\\' || runes[i] == '{' || runes[i] == '}' || runes[i] == '\n' {
							break
						}
						i++
					}
					word := strings.TrimRight(string(runes[start:i]), "-0123456789")
					switch word {
					case "par", "line", "row":
						result.WriteRune('\n')
					case "tab", "cell":
						result.WriteRune('\t')
					}
					if i < len(runes) && runes[i] != ' ' {
						i--
					}
					continue
				} else if next == '\\' || next == '{' || next == '}' {
					result.WriteRune(next)
					i++
					continue
				} else if next == '\n' || next == '\r' || next == '\t' {
					result.WriteRune(next)
					i++
					continue
				}
			}
			continue
		}
		if r == '\n' || r == '\r' {
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
