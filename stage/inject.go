package stage

// injectedEvent is a single injected pointer event in stage coordinates.
// Injection feeds the same pointer state machine as real mouse input, so
// headless tests exercise identical dispatch paths.
type injectedEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given stage coordinates.
// The event is consumed on the next Update call.
func (s *Stage) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, injectedEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given stage coordinates.
func (s *Stage) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, injectedEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two Update calls.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// processInjected pops one queued event into the pointer state machine.
// Returns true if an event was consumed (real mouse input is skipped).
func (s *Stage) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
