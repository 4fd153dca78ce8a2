package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coord is a point coordinate. It is numeric after a drag or an add, but a
// table edit stores whatever text was typed, verbatim.
type Coord struct {
	num    float64
	text   string
	isText bool
}

func Number(v float64) Coord {
	return Coord{num: v}
}

func Text(s string) Coord {
	return Coord{text: s, isText: true}
}

func (c Coord) IsText() bool {
	return c.isText
}

// Float returns the numeric value used for rendering and dragging. Text that
// parses as a finite number yields that number; any other text yields 0.
func (c Coord) Float() float64 {
	if !c.isText {
		if math.IsNaN(c.num) || math.IsInf(c.num, 0) {
			return 0
		}
		return c.num
	}
	s := strings.TrimSpace(c.text)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (c Coord) String() string {
	if c.isText {
		return c.text
	}
	return strconv.FormatFloat(c.num, 'f', -1, 64)
}

func (c Coord) MarshalJSON() ([]byte, error) {
	if c.isText {
		return json.Marshal(c.text)
	}
	return json.Marshal(c.Float())
}

func (c *Coord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("coordinate is null")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Text(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("coordinate must be a number or string: %w", err)
	}
	*c = Number(v)
	return nil
}
