package sequencer

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cueseq/axis"
	"github.com/katalvlaran/cueseq/eventbus"
	"github.com/katalvlaran/cueseq/interval"
	"github.com/katalvlaran/cueseq/motion"
	"github.com/katalvlaran/cueseq/scheduler"
)

// Sequencer composes an Axis, a TimingSource, and an internal
// Scheduler into a single stream of enter/change/exit Transitions.
type Sequencer[K comparable, D any] struct {
	ax    *axis.Axis[K, D]
	ts    TimingSource
	sched *scheduler.Scheduler[K, D]

	active  map[K]axis.Cue[K, D]
	bus     *eventbus.Bus[[]Transition[K, D]]
	ready   chan struct{}
	isReady bool
}

// New wires a Sequencer to ax and ts, subscribing to all three
// reconciliation sources. If ts is already ready at construction time,
// the sequencer becomes ready synchronously before New returns.
func New[K comparable, D any](ax *axis.Axis[K, D], ts TimingSource, opts ...Option) *Sequencer[K, D] {
	cfg := newConfig(opts...)
	s := &Sequencer[K, D]{
		ax:     ax,
		ts:     ts,
		active: make(map[K]axis.Cue[K, D]),
		bus:    eventbus.New[[]Transition[K, D]](),
		ready:  make(chan struct{}),
	}
	s.sched = scheduler.New[K, D](ax, ts.Clock(), cfg.schedulerOpts...)

	ax.AddCallback(s.onAxisEvent)
	s.sched.AddCallback(s.onSchedulerDue)
	ts.OnChange(s.onTimingChange)

	if ts.IsReady() {
		s.onTimingChange(VectorChange{Init: true, New: ts.Vector()})
	}
	return s
}

// AddCallback registers fn to receive every reconciliation's
// Transition batch.
func (s *Sequencer[K, D]) AddCallback(fn func([]Transition[K, D])) eventbus.Handle {
	return s.bus.Subscribe(fn)
}

// RemoveCallback cancels a subscription made with AddCallback.
func (s *Sequencer[K, D]) RemoveCallback(h eventbus.Handle) {
	s.bus.Unsubscribe(h)
}

// Ready returns a channel that closes exactly once, when the timing
// source becomes ready.
func (s *Sequencer[K, D]) Ready() <-chan struct{} {
	return s.ready
}

// IsReady reports whether the timing source has delivered its initial
// snapshot yet.
func (s *Sequencer[K, D]) IsReady() bool {
	return s.isReady
}

// Vector returns the timing source's current vector, or ErrNotReady if
// the source hasn't delivered its initial snapshot yet.
func (s *Sequencer[K, D]) Vector() (motion.Vector, error) {
	if !s.isReady {
		return motion.Vector{}, ErrNotReady
	}
	return s.ts.Vector(), nil
}

// Has reports whether key is currently active.
func (s *Sequencer[K, D]) Has(key K) bool {
	_, ok := s.active[key]
	return ok
}

// Get returns the active cue stored under key, if any.
func (s *Sequencer[K, D]) Get(key K) (axis.Cue[K, D], bool) {
	c, ok := s.active[key]
	return c, ok
}

// Keys returns every currently active key, in no particular order.
func (s *Sequencer[K, D]) Keys() []K {
	out := make([]K, 0, len(s.active))
	for k := range s.active {
		out = append(out, k)
	}
	return out
}

// Values returns every currently active cue, in no particular order.
func (s *Sequencer[K, D]) Values() []axis.Cue[K, D] {
	out := make([]axis.Cue[K, D], 0, len(s.active))
	for _, c := range s.active {
		out = append(out, c)
	}
	return out
}

// Entries returns every currently active (key, cue) pair, in no
// particular order.
func (s *Sequencer[K, D]) Entries() map[K]axis.Cue[K, D] {
	out := make(map[K]axis.Cue[K, D], len(s.active))
	for k, c := range s.active {
		out[k] = c
	}
	return out
}

// Len reports how many keys are currently active.
func (s *Sequencer[K, D]) Len() int {
	return len(s.active)
}

func (s *Sequencer[K, D]) emit(transitions []Transition[K, D]) {
	if len(transitions) > 0 {
		s.bus.Emit(transitions)
	}
}

// onTimingChange resolves the effective vector (re-anchoring an
// initial snapshot to the local clock, per spec.md §4.4), classifies
// the transition, recomputes the active set when position jumped or
// motion stopped, and always rearms the scheduler. The initial snapshot
// fills the active set without emitting: cues already covering the
// starting position are visible through the accessors, not as enters.
func (s *Sequencer[K, D]) onTimingChange(vc VectorChange) {
	effective := vc.New
	if vc.Init {
		effective = motion.CalculateVector(vc.New, s.ts.Clock().Now())
	}

	old := s.ts.OldVector()
	posDelta, moveDelta := motion.Delta(old, effective)

	if vc.Init || posDelta == motion.PosChange || moveDelta == motion.MoveStop {
		now := s.ts.Clock().Now()
		p, _ := effective.Evaluate(now)
		transitions := s.reconcilePosition(p)
		if !vc.Init {
			s.emit(transitions)
		}
	}

	_ = s.sched.SetVector(effective)

	if vc.Init && !s.isReady {
		s.isReady = true
		close(s.ready)
	}
}

// reconcilePosition queries the Axis for every cue covering p and
// diffs it against the active set, producing pure enter/exit
// Transitions (no change-class events: payloads haven't mutated). The
// batch is sorted into a canonical order before being returned, since
// ranging over nowActive/s.active alone would leave simultaneous
// exits and enters in Go's non-deterministic map order.
func (s *Sequencer[K, D]) reconcilePosition(p float64) []Transition[K, D] {
	point := interval.Interval{Low: p, High: p, LowInclude: true, HighInclude: true}
	covering := s.ax.Lookup(point)

	nowActive := make(map[K]axis.Cue[K, D], len(covering))
	for _, c := range covering {
		nowActive[c.Key] = c
	}

	var transitions []Transition[K, D]
	for key, c := range nowActive {
		if _, was := s.active[key]; !was {
			nc := c
			transitions = append(transitions, Transition[K, D]{Key: key, New: &nc})
		}
	}
	for key, c := range s.active {
		if _, still := nowActive[key]; !still {
			oc := c
			transitions = append(transitions, Transition[K, D]{Key: key, Old: &oc})
		}
	}
	sortTransitions(transitions)

	s.active = nowActive
	return transitions
}

// sortTransitions orders a batch by the touched cue's low endpoint,
// with the key's string form as a tiebreak, so repeated runs over the
// same input always report simultaneous exits and enters in the same
// sequence.
func sortTransitions[K comparable, D any](transitions []Transition[K, D]) {
	sort.Slice(transitions, func(i, j int) bool {
		a, b := transitionInterval(transitions[i]), transitionInterval(transitions[j])
		if c := interval.Cmp(a.LowEndpoint(), b.LowEndpoint()); c != 0 {
			return c < 0
		}
		return fmt.Sprint(transitions[i].Key) < fmt.Sprint(transitions[j].Key)
	})
}

func transitionInterval[K comparable, D any](tr Transition[K, D]) interval.Interval {
	if tr.New != nil {
		return tr.New.Interval
	}
	return tr.Old.Interval
}

// onAxisEvent reconciles cue insertions/removals/replacements against
// the current position, per spec.md §4.6 "Axis-event reconciliation".
func (s *Sequencer[K, D]) onAxisEvent(em axis.EventMap[K, D]) {
	if !s.isReady {
		return
	}
	now := s.ts.Clock().Now()
	vector := s.ts.Vector()
	p, _ := vector.Evaluate(now)

	var transitions []Transition[K, D]
	for _, key := range em.Keys() {
		ev, _ := em.Get(key)
		if ev.Delta.Interval != axis.SubChange {
			continue
		}

		old, wasActive := s.active[key]
		shouldBeActive := ev.New != nil && ev.New.Interval.Covers(p)

		switch {
		case wasActive && !shouldBeActive:
			oc := old
			transitions = append(transitions, Transition[K, D]{Key: key, Old: &oc})
			delete(s.active, key)
		case !wasActive && shouldBeActive:
			nc := *ev.New
			transitions = append(transitions, Transition[K, D]{Key: key, New: &nc})
			s.active[key] = nc
		case wasActive && shouldBeActive:
			oc, nc := old, *ev.New
			transitions = append(transitions, Transition[K, D]{Key: key, New: &nc, Old: &oc})
			s.active[key] = nc
		}
	}

	s.emit(transitions)
	_ = s.sched.SetVector(motion.CalculateVector(vector, now))
}

// onSchedulerDue reconciles a batch of projected endpoint crossings,
// per spec.md §4.6 "Scheduler-event reconciliation".
func (s *Sequencer[K, D]) onSchedulerDue(items []scheduler.EndpointItem[K, D]) {
	if !s.isReady {
		return
	}
	var transitions []Transition[K, D]

	for _, item := range items {
		key := item.Cue.Key

		if item.Endpoint.Singular {
			if old, active := s.active[key]; active {
				oc := old
				transitions = append(transitions, Transition[K, D]{Key: key, Old: &oc})
				delete(s.active, key)
			} else {
				nc := item.Cue
				oc := item.Cue
				transitions = append(transitions,
					Transition[K, D]{Key: key, New: &nc},
					Transition[K, D]{Key: key, Old: &oc},
				)
			}
			continue
		}

		rightFactor := -1.0
		if !item.Endpoint.Right {
			rightFactor = 1.0
		}
		enter := item.Direction*rightFactor > 0

		old, isActive := s.active[key]
		switch {
		case enter && !isActive:
			nc := item.Cue
			s.active[key] = nc
			transitions = append(transitions, Transition[K, D]{Key: key, New: &nc})
		case !enter && isActive:
			oc := old
			delete(s.active, key)
			transitions = append(transitions, Transition[K, D]{Key: key, Old: &oc})
		}
	}

	s.emit(transitions)
}
