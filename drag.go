package main

import "log/slog"

type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonMiddle
	ButtonSecondary
	ButtonOther
)

// PointerEvent is a pointer position in screen-space pixels.
type PointerEvent struct {
	X, Y   float64
	Button PointerButton
}

type pointerListener struct {
	token int
	move  func(PointerEvent)
	up    func(PointerEvent)
}

// Surface is the whole interactive area. Move and up events are delivered
// only to listeners registered at the moment of dispatch.
type Surface struct {
	listeners []pointerListener
	nextToken int
}

func NewSurface() *Surface {
	return &Surface{}
}

// Listen registers move and up handlers and returns the function that
// removes them. Calling release more than once is harmless.
func (s *Surface) Listen(move, up func(PointerEvent)) (release func()) {
	s.nextToken++
	token := s.nextToken
	s.listeners = append(s.listeners, pointerListener{token: token, move: move, up: up})
	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i, l := range s.listeners {
			if l.token == token {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Move reports whether any listener observed the event.
func (s *Surface) Move(ev PointerEvent) bool {
	current := append([]pointerListener(nil), s.listeners...)
	for _, l := range current {
		if l.move != nil {
			l.move(ev)
		}
	}
	return len(current) > 0
}

// Up reports whether any listener observed the event.
func (s *Surface) Up(ev PointerEvent) bool {
	current := append([]pointerListener(nil), s.listeners...)
	for _, l := range current {
		if l.up != nil {
			l.up(ev)
		}
	}
	return len(current) > 0
}

func (s *Surface) Listeners() int {
	return len(s.listeners)
}

// DragSession is the state of an in-progress drag of one point.
type DragSession struct {
	TargetID      int
	PointerOrigin Vec
	ValueOrigin   Vec
}

// DragController turns pointer gestures on a point into position updates.
// It is Idle when session is nil.
type DragController struct {
	mapper  Mapper
	store   *Store
	surface *Surface
	logger  *slog.Logger

	session *DragSession
	release func()
}

func NewDragController(mapper Mapper, store *Store, surface *Surface, logger *slog.Logger) *DragController {
	if logger == nil {
		logger = discardLogger()
	}
	return &DragController{mapper: mapper, store: store, surface: surface, logger: logger}
}

// PointerDown starts a drag of the point with the given id. It returns true
// when the event was consumed and must not be handled further.
func (d *DragController) PointerDown(id int, ev PointerEvent) bool {
	if ev.Button != ButtonPrimary {
		return false
	}
	p, ok := d.store.Get(id)
	if !ok {
		return false
	}
	if d.session != nil {
		d.logger.Debug("pointer down during drag, ending previous session", "id", d.session.TargetID)
		d.end()
	}
	d.session = &DragSession{
		TargetID:      id,
		PointerOrigin: Vec{X: ev.X, Y: ev.Y},
		ValueOrigin:   Vec{X: p.X.Float(), Y: p.Y.Float()},
	}
	d.release = d.surface.Listen(d.pointerMove, d.pointerUp)
	return true
}

func (d *DragController) pointerMove(ev PointerEvent) {
	s := d.session
	if s == nil {
		return
	}
	if _, ok := d.store.Get(s.TargetID); !ok {
		d.logger.Warn("drag target disappeared, discarding session", "id", s.TargetID)
		d.end()
		return
	}
	dx, dy := d.mapper.ToData(ev.X-s.PointerOrigin.X, ev.Y-s.PointerOrigin.Y)
	d.store.UpdatePosition(s.TargetID, s.ValueOrigin.X+dx, s.ValueOrigin.Y+dy)
}

func (d *DragController) pointerUp(PointerEvent) {
	d.end()
}

func (d *DragController) end() {
	if d.release != nil {
		d.release()
		d.release = nil
	}
	d.session = nil
}

// Close ends any active session and releases its listeners.
func (d *DragController) Close() {
	d.end()
}

func (d *DragController) Dragging() bool {
	return d.session != nil
}

func (d *DragController) Session() (DragSession, bool) {
	if d.session == nil {
		return DragSession{}, false
	}
	return *d.session, true
}

// IsTarget reports whether id is the point being dragged.
func (d *DragController) IsTarget(id int) bool {
	return d.session != nil && d.session.TargetID == id
}

// TargetID returns the dragged point's id, or -1 when idle.
func (d *DragController) TargetID() int {
	if d.session == nil {
		return idleDragID
	}
	return d.session.TargetID
}
