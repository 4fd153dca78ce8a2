package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveVisualTXT
)

type ConfirmAction int

const (
	ConfirmDeletePoint ConfirmAction = iota
)

// Field is one of the editable columns of a point.
type Field int

const (
	FieldLabel Field = iota
	FieldX
	FieldY
)

const (
	storageKey = "data"

	defaultScale      = 4.0
	defaultCanvasSize = 400.0
	defaultCellWidth  = 8.0
	defaultCellHeight = 16.0

	defaultLabel = "New Item"
	defaultX     = 50.0
	defaultY     = 50.0

	initialNextID = 4
	idleDragID    = -1
)

// Table columns, in display order.
const (
	colLabel = iota
	colX
	colY
	colDelete
	numColumns
)
