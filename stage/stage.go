package stage

import "github.com/hajimehoshi/ebiten/v2"

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventMouseDown EventType = iota // fires when the pointer button is pressed
	EventClick                      // fires on press then release over the same node
)

// PointerEvent carries pointer event data in stage coordinates.
type PointerEvent struct {
	Type           EventType
	StageX, StageY float64
	Target         *Node // topmost mouse-enabled node under the point, or nil

	stopped bool
}

// StopPropagation prevents the event from reaching the target node's own
// callbacks. Capture-phase handlers registered on the stage still run.
func (e *PointerEvent) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called on this event.
func (e *PointerEvent) Stopped() bool {
	return e.stopped
}

// --- Handler registries ---

type drawHandler struct {
	id uint32
	fn func()
}

type captureHandler struct {
	id uint32
	fn func(*PointerEvent)
}

// DrawHandle allows removing a registered draw-start callback.
type DrawHandle struct {
	id uint32
	st *Stage
}

// Remove unregisters this callback so it no longer fires.
func (h DrawHandle) Remove() {
	if h.st == nil {
		return
	}
	for i := range h.st.drawHandlers {
		if h.st.drawHandlers[i].id == h.id {
			h.st.drawHandlers = append(h.st.drawHandlers[:i], h.st.drawHandlers[i+1:]...)
			return
		}
	}
}

// CaptureHandle allows removing a registered capture-phase pointer callback.
type CaptureHandle struct {
	id    uint32
	st    *Stage
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CaptureHandle) Remove() {
	if h.st == nil {
		return
	}
	var list *[]captureHandler
	switch h.event {
	case EventMouseDown:
		list = &h.st.downCapture
	case EventClick:
		list = &h.st.clickCapture
	default:
		return
	}
	for i := range *list {
		if (*list)[i].id == h.id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}

// --- Stage ---

// Stage is the root of a display list. It embeds the root container node, so
// tree operations apply directly to the stage itself.
type Stage struct {
	*Node

	drawHandlers []drawHandler
	downCapture  []captureHandler
	clickCapture []captureHandler
	nextHandler  uint32

	// MouseInput enables polling the real mouse in Update. Off by default so
	// headless tests drive input exclusively through injection.
	MouseInput bool

	pointerDown bool
	pressTarget *Node

	injectQueue []injectedEvent
	hitBuf      []*Node
}

// New creates an empty stage.
func New() *Stage {
	root := NewContainer("stage")
	return &Stage{Node: root}
}

// OnDrawStart registers a callback fired at the start of every Draw, before
// any rendering. Returns a handle for removal by identity.
func (s *Stage) OnDrawStart(fn func()) DrawHandle {
	s.nextHandler++
	id := s.nextHandler
	s.drawHandlers = append(s.drawHandlers, drawHandler{id: id, fn: fn})
	return DrawHandle{id: id, st: s}
}

// OnCaptureMouseDown registers a capture-phase callback for mouse-down
// events. Capture handlers run in registration order before the target
// node's own callback.
func (s *Stage) OnCaptureMouseDown(fn func(*PointerEvent)) CaptureHandle {
	s.nextHandler++
	id := s.nextHandler
	s.downCapture = append(s.downCapture, captureHandler{id: id, fn: fn})
	return CaptureHandle{id: id, st: s, event: EventMouseDown}
}

// OnCaptureClick registers a capture-phase callback for click events.
func (s *Stage) OnCaptureClick(fn func(*PointerEvent)) CaptureHandle {
	s.nextHandler++
	id := s.nextHandler
	s.clickCapture = append(s.clickCapture, captureHandler{id: id, fn: fn})
	return CaptureHandle{id: id, st: s, event: EventClick}
}

// Update processes pointer input. Injected events are consumed one per call;
// real mouse input is polled only when MouseInput is enabled and no injected
// event was pending.
func (s *Stage) Update() {
	if s.processInjected() {
		return
	}
	if !s.MouseInput {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(float64(mx), float64(my), pressed)
}

// processPointer runs the press/release state machine for the single pointer.
func (s *Stage) processPointer(x, y float64, pressed bool) {
	if pressed && !s.pointerDown {
		s.pointerDown = true
		s.pressTarget = s.topObjectAt(x, y)
		s.dispatch(EventMouseDown, x, y)
	} else if !pressed && s.pointerDown {
		s.pointerDown = false
		target := s.topObjectAt(x, y)
		if target != nil && target == s.pressTarget {
			s.dispatch(EventClick, x, y)
		}
		s.pressTarget = nil
	}
}

// dispatch runs capture handlers, then the target node's callback unless a
// capture handler stopped propagation. Returns the event for inspection.
func (s *Stage) dispatch(t EventType, x, y float64) *PointerEvent {
	ev := &PointerEvent{
		Type:   t,
		StageX: x,
		StageY: y,
		Target: s.topObjectAt(x, y),
	}
	var handlers []captureHandler
	switch t {
	case EventMouseDown:
		handlers = s.downCapture
	case EventClick:
		handlers = s.clickCapture
	}
	for _, h := range handlers {
		h.fn(ev)
	}
	if ev.stopped || ev.Target == nil {
		return ev
	}
	switch t {
	case EventMouseDown:
		if ev.Target.OnMouseDown != nil {
			ev.Target.OnMouseDown(ev)
		}
	case EventClick:
		if ev.Target.OnClick != nil {
			ev.Target.OnClick(ev)
		}
	}
	return ev
}

// --- Hit testing ---

// ObjectsUnderPoint returns every visible node whose bounds contain the
// stage-space point, topmost (last painted) first. Nodes without resolvable
// bounds never hit.
func (s *Stage) ObjectsUnderPoint(x, y float64) []*Node {
	s.hitBuf = collectHits(s.Node, x, y, false, s.hitBuf[:0])
	out := make([]*Node, len(s.hitBuf))
	for i, n := range s.hitBuf {
		out[len(out)-1-i] = n
	}
	return out
}

// topObjectAt returns the topmost visible, mouse-enabled node under the point.
func (s *Stage) topObjectAt(x, y float64) *Node {
	s.hitBuf = collectHits(s.Node, x, y, true, s.hitBuf[:0])
	if len(s.hitBuf) == 0 {
		return nil
	}
	return s.hitBuf[len(s.hitBuf)-1]
}

// collectHits appends hit nodes in painter order. When mouseOnly is set,
// subtrees with MouseEnabled=false are skipped entirely.
func collectHits(n *Node, x, y float64, mouseOnly bool, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if mouseOnly && !n.MouseEnabled {
		return buf
	}
	if b, err := n.LocalBounds(); err == nil {
		lx, ly := n.GlobalToLocal(x, y)
		if b.Contains(lx, ly) {
			buf = append(buf, n)
		}
	}
	for _, child := range n.children {
		buf = collectHits(child, x, y, mouseOnly, buf)
	}
	return buf
}

// Draw fires draw-start handlers, then renders the tree to screen.
// A nil screen fires the handlers and skips rendering; headless tests use
// this to drive the redraw notification without a graphics context.
func (s *Stage) Draw(screen *ebiten.Image) {
	// Snapshot: a handler may subscribe or unsubscribe during delivery.
	handlers := append([]drawHandler(nil), s.drawHandlers...)
	for _, h := range handlers {
		h.fn()
	}
	if screen == nil {
		return
	}
	renderNode(s.Node, Identity(), 1, screen)
}
