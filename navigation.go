package main

const nudgeStep = 1.0

func (m *model) handleNavigation(key string) {
	switch key {
	case "h", "left":
		m.selectedCol--
	case "l", "right":
		m.selectedCol++
	case "k", "up":
		m.selectedRow--
	case "j", "down":
		m.selectedRow++
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		m.selectedRow = m.store.Len() - 1
	}
	m.ensureSelectionInBounds()
}

func isNudgeKey(key string) bool {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return true
	}
	return false
}

// handleNudge moves the selected point one data unit. Up is up on the chart.
func (m *model) handleNudge(key string) {
	p, ok := m.store.At(m.selectedRow)
	if !ok {
		return
	}
	dx, dy := 0.0, 0.0
	switch key {
	case "H", "shift+left":
		dx = -nudgeStep
	case "L", "shift+right":
		dx = nudgeStep
	case "K", "shift+up":
		dy = nudgeStep
	case "J", "shift+down":
		dy = -nudgeStep
	}
	m.store.UpdatePosition(p.ID, p.X.Float()+dx, p.Y.Float()+dy)
}

func (m *model) ensureSelectionInBounds() {
	if m.selectedCol < 0 {
		m.selectedCol = 0
	}
	if m.selectedCol >= numColumns {
		m.selectedCol = numColumns - 1
	}
	if m.selectedRow >= m.store.Len() {
		m.selectedRow = m.store.Len() - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}
