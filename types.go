package main

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
)

// Point is a labeled position on the chart, in data-space.
type Point struct {
	ID    int
	X     Coord
	Y     Coord
	Label string
}

type model struct {
	ctx    context.Context
	config *Config
	logger *slog.Logger

	store   *Store
	surface *Surface
	drag    *DragController
	sync    *Sync
	canvas  *Canvas

	width          int
	height         int
	mode           Mode
	help           bool
	helpScroll     int
	selectedRow    int
	selectedCol    int
	input          textinput.Model
	editID         int
	editField      Field
	filename       string
	fileOp         FileOperation
	confirmAction  ConfirmAction
	confirmID      int
	errorMessage   string
	successMessage string
}
