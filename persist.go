package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
)

type persistedDrag struct {
	Dragging bool     `json:"dragging"`
	X        *float64 `json:"X,omitempty"`
	Y        *float64 `json:"Y,omitempty"`
	OldX     *float64 `json:"oldX,omitempty"`
	OldY     *float64 `json:"oldY,omitempty"`
	ID       *int     `json:"id,omitempty"`
}

type persistedDot struct {
	ID    int    `json:"id"`
	X     Coord  `json:"x"`
	Y     Coord  `json:"y"`
	Label string `json:"label"`
}

type persistedState struct {
	Draggable persistedDrag  `json:"draggable"`
	Dots      []persistedDot `json:"dots"`
	LastID    int            `json:"lastId"`
}

// hydratedState is what survived decoding. Nil or zero members mean the
// field was absent or unusable and the current value should be kept.
type hydratedState struct {
	points      []Point
	hasPoints   bool
	nextID      int
	wasDragging bool
}

// Sync mirrors the editor state into a storage key.
type Sync struct {
	storage Storage
	key     string
	store   *Store
	drag    *DragController
	logger  *slog.Logger

	hydrated bool
}

func NewSync(storage Storage, key string, store *Store, drag *DragController, logger *slog.Logger) *Sync {
	if logger == nil {
		logger = discardLogger()
	}
	return &Sync{storage: storage, key: key, store: store, drag: drag, logger: logger}
}

// Hydrate reads the storage key once. Later calls do nothing. A missing or
// malformed payload leaves the current state in place; only a storage
// failure is returned.
func (s *Sync) Hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}
	s.hydrated = true

	raw, ok, err := s.storage.GetItem(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to read saved chart: %w", err)
	}
	if !ok {
		s.logger.Info("no saved chart, keeping seed data", "key", s.key)
		return nil
	}

	state := decodeState([]byte(raw), s.logger)
	if state.hasPoints {
		s.store.Restore(state.points, state.nextID)
	} else {
		s.store.Restore(s.store.Points(), state.nextID)
	}
	if state.wasDragging {
		s.logger.Info("saved drag session is stale, starting idle")
	}
	s.drag.Close()

	s.logger.Info("hydrated chart", "points", s.store.Len(), "next_id", s.store.NextID())
	return nil
}

// Write serializes the full state and overwrites the storage key.
func (s *Sync) Write(ctx context.Context) error {
	data, err := encodeState(s.store, s.drag)
	if err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	if err := s.storage.SetItem(ctx, s.key, string(data)); err != nil {
		s.logger.Error("failed to save chart", "error", err)
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

func encodeState(store *Store, drag *DragController) ([]byte, error) {
	state := persistedState{
		Draggable: snapshotDrag(drag),
		Dots:      make([]persistedDot, 0, store.Len()),
		LastID:    store.NextID(),
	}
	for _, p := range store.Points() {
		state.Dots = append(state.Dots, persistedDot{ID: p.ID, X: p.X, Y: p.Y, Label: p.Label})
	}
	return json.Marshal(state)
}

func snapshotDrag(drag *DragController) persistedDrag {
	s, ok := drag.Session()
	if !ok {
		id := idleDragID
		return persistedDrag{Dragging: false, ID: &id}
	}
	id := s.TargetID
	x, y := s.PointerOrigin.X, s.PointerOrigin.Y
	oldX, oldY := s.ValueOrigin.X, s.ValueOrigin.Y
	return persistedDrag{Dragging: true, X: &x, Y: &y, OldX: &oldX, OldY: &oldY, ID: &id}
}

// decodeState reads a stored payload field by field. Anything it cannot use
// is logged and skipped.
func decodeState(data []byte, logger *slog.Logger) hydratedState {
	var out hydratedState

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		logger.Warn("saved chart is not a JSON object, ignoring it", "error", err)
		return out
	}

	if raw, ok := fields["dots"]; ok {
		if points, ok := decodeDots(raw, logger); ok {
			out.points = points
			out.hasPoints = true
		}
	}

	if raw, ok := fields["lastId"]; ok {
		var v float64
		if err := json.Unmarshal(raw, &v); err == nil && v > 0 && v == math.Trunc(v) && v <= math.MaxInt32 {
			out.nextID = int(v)
		} else {
			logger.Warn("ignoring invalid lastId", "value", string(raw))
		}
	}

	if raw, ok := fields["draggable"]; ok {
		var d struct {
			Dragging bool `json:"dragging"`
		}
		if err := json.Unmarshal(raw, &d); err == nil {
			out.wasDragging = d.Dragging
		}
	}

	return out
}

func decodeDots(raw json.RawMessage, logger *slog.Logger) ([]Point, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		logger.Warn("ignoring dots that are not an array", "error", err)
		return nil, false
	}

	points := make([]Point, 0, len(items))
	seen := make(map[int]bool, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			logger.Warn("skipping malformed dot", "index", i)
			continue
		}

		var id float64
		rawID, ok := fields["id"]
		if !ok || string(rawID) == "null" || json.Unmarshal(rawID, &id) != nil || id != math.Trunc(id) || math.Abs(id) > math.MaxInt32 {
			logger.Warn("skipping dot without a usable id", "index", i)
			continue
		}
		if seen[int(id)] {
			logger.Warn("skipping dot with duplicate id", "index", i, "id", int(id))
			continue
		}
		seen[int(id)] = true

		p := Point{ID: int(id), X: Number(defaultX), Y: Number(defaultY)}
		if c, ok := decodeCoord(fields["x"]); ok {
			p.X = c
		}
		if c, ok := decodeCoord(fields["y"]); ok {
			p.Y = c
		}
		if rawLabel, ok := fields["label"]; ok {
			var label string
			if err := json.Unmarshal(rawLabel, &label); err == nil {
				p.Label = label
			}
		}
		points = append(points, p)
	}
	return points, true
}

func decodeCoord(raw json.RawMessage) (Coord, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return Coord{}, false
	}
	var c Coord
	if err := c.UnmarshalJSON(raw); err != nil {
		return Coord{}, false
	}
	return c, true
}
