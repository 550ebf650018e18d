package grid

// Queue buffers inbound events and applies them to an engine in arrival
// order. Events are stamped with the engine's generation when pushed; once a
// shape change has been applied, events stamped earlier are stale and are
// dropped instead of landing on a tile of the new grid. That includes events
// pushed behind a pending shape change in the same batch: they were computed
// against the old layout.
type Queue struct {
	engine  *Engine
	pending []Event
}

// NewQueue returns a queue feeding e.
func NewQueue(e *Engine) *Queue {
	return &Queue{engine: e}
}

// Push appends ev, stamping it with the current generation.
func (q *Queue) Push(ev Event) {
	ev.Generation = q.engine.Generation()
	q.pending = append(q.pending, ev)
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.pending) }

// Drain applies every pending event. Each event is handled exactly once; a
// failing shape change does not stop the remaining events. It returns the
// errors of rejected events in order, or nil.
func (q *Queue) Drain() []error {
	var errs []error
	for len(q.pending) > 0 {
		ev := q.pending[0]
		q.pending = q.pending[1:]
		if ev.Type != EventShapeChange && ev.Generation != q.engine.Generation() {
			q.engine.log.Debug("stale event dropped", "event", ev.String(), "issued", ev.Generation, "current", q.engine.Generation())
			continue
		}
		if err := q.engine.Handle(ev); err != nil {
			errs = append(errs, err)
		}
	}
	q.pending = nil
	return errs
}
