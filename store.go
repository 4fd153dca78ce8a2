package main

// Store owns the ordered point collection and the id counter.
type Store struct {
	points []Point
	nextID int
}

func NewStore(points []Point, nextID int) *Store {
	if nextID <= 0 {
		nextID = 1
	}
	s := &Store{nextID: nextID}
	s.Restore(points, nextID)
	return s
}

// Points returns a copy of the collection in insertion order.
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Store) Len() int {
	return len(s.points)
}

func (s *Store) NextID() int {
	return s.nextID
}

func (s *Store) Get(id int) (Point, bool) {
	idx := s.index(id)
	if idx < 0 {
		return Point{}, false
	}
	return s.points[idx], true
}

// At returns the point at a display row.
func (s *Store) At(row int) (Point, bool) {
	if row < 0 || row >= len(s.points) {
		return Point{}, false
	}
	return s.points[row], true
}

func (s *Store) index(id int) int {
	for i := range s.points {
		if s.points[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Add(label string, x, y Coord) Point {
	p := Point{ID: s.nextID, X: x, Y: y, Label: label}
	s.points = append(s.points, p)
	s.nextID++
	return p
}

func (s *Store) AddDefault() Point {
	return s.Add(defaultLabel, Number(defaultX), Number(defaultY))
}

// Delete removes the point with the given id and reports whether it existed.
func (s *Store) Delete(id int) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.points = append(s.points[:idx], s.points[idx+1:]...)
	return true
}

// UpdateField sets one editable field to the raw text value.
func (s *Store) UpdateField(id int, field Field, value string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	p := &s.points[idx]
	switch field {
	case FieldLabel:
		p.Label = value
	case FieldX:
		p.X = Text(value)
	case FieldY:
		p.Y = Text(value)
	default:
		return false
	}
	return true
}

// UpdateFieldByName is UpdateField for a field addressed by its wire name.
// Names outside label, x and y are rejected.
func (s *Store) UpdateFieldByName(id int, name, value string) bool {
	field, ok := ParseField(name)
	if !ok {
		return false
	}
	return s.UpdateField(id, field, value)
}

func (s *Store) UpdatePosition(id int, x, y float64) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.points[idx].X = Number(x)
	s.points[idx].Y = Number(y)
	return true
}

// Restore replaces the collection. Duplicate ids keep their first
// occurrence. A nextID of zero or less keeps the current counter, and the
// counter is always raised above every id present.
func (s *Store) Restore(points []Point, nextID int) {
	seen := make(map[int]bool, len(points))
	restored := make([]Point, 0, len(points))
	for _, p := range points {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		restored = append(restored, p)
	}
	s.points = restored
	if nextID > 0 {
		s.nextID = nextID
	}
	for _, p := range s.points {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
}

func ParseField(name string) (Field, bool) {
	switch name {
	case "label":
		return FieldLabel, true
	case "x":
		return FieldX, true
	case "y":
		return FieldY, true
	}
	return 0, false
}

func (f Field) String() string {
	switch f {
	case FieldLabel:
		return "label"
	case FieldX:
		return "x"
	case FieldY:
		return "y"
	default:
		return "unknown"
	}
}

// Value returns the raw text of a field, as the table shows it.
func (p Point) Value(f Field) string {
	switch f {
	case FieldLabel:
		return p.Label
	case FieldX:
		return p.X.String()
	case FieldY:
		return p.Y.String()
	}
	return ""
}
