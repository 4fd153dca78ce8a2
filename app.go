package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newModel(ctx context.Context, config *Config, storage Storage, logger *slog.Logger, seed Seeder) model {
	if logger == nil {
		logger = discardLogger()
	}
	store := NewStore(seed(), initialNextID)
	surface := NewSurface()
	drag := NewDragController(config.Mapper(), store, surface, logger)

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0

	return model{
		ctx:       ctx,
		config:    config,
		logger:    logger,
		store:     store,
		surface:   surface,
		drag:      drag,
		sync:      NewSync(storage, storageKey, store, drag, logger),
		canvas:    NewCanvas(config.Grid()),
		input:     input,
		editID:    -1,
		confirmID: -1,
		filename:  "quadrant",
	}
}

// hydrate loads the saved chart, if any. It must run before the program
// starts.
func (m *model) hydrate() error {
	return m.sync.Hydrate(m.ctx)
}

func (m *model) persist() {
	if err := m.sync.Write(m.ctx); err != nil {
		m.errorMessage = err.Error()
	}
}

// shutdown releases anything held for an in-progress drag.
func (m *model) shutdown() {
	m.drag.Close()
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			m.shutdown()
			m.persist()
			return m, tea.Quit
		}

	default:
		if m.mode == ModeEditing {
			m.input, cmd = m.input.Update(msg)
		}
		return m, cmd
	}

	m.persist()
	return m, cmd
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev := m.pointerEvent(msg)
	switch msg.Action {
	case tea.MouseActionPress:
		if tea.MouseEvent(msg).IsWheel() {
			return nil
		}
		if m.pointerDown(msg, ev) {
			return nil
		}
		if ev.Button == ButtonPrimary {
			return m.handleClick(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonNone {
			// The button was let go somewhere we never heard about.
			m.surface.Up(ev)
			return nil
		}
		m.surface.Move(ev)
	case tea.MouseActionRelease:
		m.surface.Up(ev)
	}
	return nil
}

// pointerDown offers a press on a chart point to the drag controller.
func (m *model) pointerDown(msg tea.MouseMsg, ev PointerEvent) bool {
	col, row := msg.X-chartOriginX, msg.Y-chartOriginY
	grid := m.canvas.Grid()
	if col < 0 || row < 0 || col >= grid.Cols || row >= grid.Rows {
		return false
	}
	id := m.canvas.PointAt(m.store.Points(), col, row)
	if id < 0 {
		return false
	}
	if ev.Button == ButtonPrimary && m.mode == ModeEditing {
		m.finishEditing()
	}
	if !m.drag.PointerDown(id, ev) {
		return false
	}
	m.selectPoint(id)
	m.logger.Debug("drag started", "id", id)
	return true
}

func (m *model) pointerEvent(msg tea.MouseMsg) PointerEvent {
	px, py := m.canvas.Grid().CellCenter(msg.X-chartOriginX, msg.Y-chartOriginY)
	return PointerEvent{X: px, Y: py, Button: pointerButton(msg.Button)}
}

func pointerButton(b tea.MouseButton) PointerButton {
	switch b {
	case tea.MouseButtonLeft:
		return ButtonPrimary
	case tea.MouseButtonMiddle:
		return ButtonMiddle
	case tea.MouseButtonRight:
		return ButtonSecondary
	default:
		return ButtonOther
	}
}

// handleClick handles a primary press outside any chart point: the Add
// button, table cells and Delete buttons.
func (m *model) handleClick(x, y int) tea.Cmd {
	if m.mode == ModeEditing {
		m.finishEditing()
	}
	if m.mode != ModeNormal {
		return nil
	}

	tx := x - m.tableOriginX()
	ty := y - tableOriginY
	if tx < 0 || ty < 0 {
		return nil
	}
	if ty == 0 && tx < len(addButtonText) {
		m.addPoint()
		return nil
	}

	row := ty - tableHeaderLines
	col := tableColumnAt(tx)
	if row < 0 || row >= m.store.Len() || col < 0 {
		return nil
	}
	m.selectedRow, m.selectedCol = row, col
	if col == colDelete {
		if p, ok := m.store.At(row); ok {
			m.deletePoint(p.ID)
		}
		return nil
	}
	return m.startEditing()
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return nil, true
	}

	if m.help {
		m.handleHelpKey(key)
		return nil, false
	}

	switch m.mode {
	case ModeEditing:
		return m.handleEditingKey(msg), false
	case ModeFileInput:
		m.handleFileInputKey(msg)
		return nil, false
	case ModeConfirm:
		m.handleConfirmKey(key)
		return nil, false
	}

	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "q":
		return nil, true
	case "?":
		m.help = true
		m.helpScroll = 0
	case "a":
		m.addPoint()
	case "d", "delete", "x":
		m.requestDelete()
	case "enter", "e":
		if m.selectedCol == colDelete {
			m.requestDelete()
			return nil, false
		}
		return m.startEditing(), false
	case "tab":
		m.selectedCol = (m.selectedCol + 1) % numColumns
	case "shift+tab":
		m.selectedCol = (m.selectedCol + numColumns - 1) % numColumns
	case "y":
		m.copyTable()
	case "p":
		m.pasteRows()
	case "S":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
	case "T":
		m.mode = ModeFileInput
		m.fileOp = FileOpSaveVisualTXT
	default:
		if isNudgeKey(key) {
			m.handleNudge(key)
		} else {
			m.handleNavigation(key)
		}
	}
	return nil, false
}

func (m *model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		m.finishEditing()
		return nil
	case "tab":
		m.finishEditing()
		m.selectedCol = (m.selectedCol + 1) % colDelete
		return m.startEditing()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.store.UpdateField(m.editID, m.editField, after)
	}
	return cmd
}

func (m *model) handleFileInputKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.errorMessage = ""
	case "enter":
		if m.filename == "" {
			m.errorMessage = "filename required"
			return
		}
		if err := m.runExport(); err != nil {
			m.errorMessage = err.Error()
			return
		}
		m.mode = ModeNormal
		m.errorMessage = ""
	case "backspace":
		if runes := []rune(m.filename); len(runes) > 0 {
			m.filename = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.filename += string(msg.Runes)
		}
	}
}

func (m *model) handleConfirmKey(key string) {
	switch key {
	case "y", "Y":
		if m.confirmAction == ConfirmDeletePoint {
			m.deletePoint(m.confirmID)
		}
		m.mode = ModeNormal
		m.confirmID = -1
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.confirmID = -1
	}
}

func (m *model) handleHelpKey(key string) {
	switch key {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < m.maxHelpScroll() {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
}

func (m *model) addPoint() {
	p := m.store.AddDefault()
	m.selectedRow = m.store.Len() - 1
	m.successMessage = fmt.Sprintf("Added point %d", p.ID)
	m.logger.Debug("point added", "id", p.ID)
}

func (m *model) requestDelete() {
	p, ok := m.store.At(m.selectedRow)
	if !ok {
		return
	}
	if !m.config.Confirmations {
		m.deletePoint(p.ID)
		return
	}
	m.mode = ModeConfirm
	m.confirmAction = ConfirmDeletePoint
	m.confirmID = p.ID
}

func (m *model) deletePoint(id int) {
	if !m.store.Delete(id) {
		return
	}
	m.successMessage = fmt.Sprintf("Deleted point %d", id)
	m.logger.Debug("point deleted", "id", id)
	m.ensureSelectionInBounds()
}

func (m *model) startEditing() tea.Cmd {
	p, ok := m.store.At(m.selectedRow)
	if !ok || m.selectedCol == colDelete {
		return nil
	}
	m.editID = p.ID
	m.editField = Field(m.selectedCol)
	m.input.Width = tableColumnWidths[m.selectedCol] - 1
	m.input.SetValue(p.Value(m.editField))
	m.input.CursorEnd()
	m.mode = ModeEditing
	return m.input.Focus()
}

func (m *model) finishEditing() {
	m.input.Blur()
	m.mode = ModeNormal
	m.editID = -1
}

func (m *model) selectPoint(id int) {
	for i, p := range m.store.Points() {
		if p.ID == id {
			m.selectedRow = i
			return
		}
	}
}

func (m *model) runExport() error {
	switch m.fileOp {
	case FileOpSavePNG:
		path := m.config.GetSavePath(withExt(m.filename, ".png"))
		if err := exportChartPNG(path, m.store.Points(), m.canvas.Grid(), m.drag.TargetID()); err != nil {
			return err
		}
		m.successMessage = "Exported " + path
	case FileOpSaveVisualTXT:
		path := m.config.GetSavePath(withExt(m.filename, ".txt"))
		if err := m.exportVisualTXT(path); err != nil {
			return err
		}
		m.successMessage = "Exported " + path
	}
	m.logger.Info("chart exported", "message", m.successMessage)
	return nil
}
