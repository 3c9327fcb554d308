package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/cueseq/axis"
	"github.com/katalvlaran/cueseq/clock"
	"github.com/katalvlaran/cueseq/eventbus"
	"github.com/katalvlaran/cueseq/interval"
	"github.com/katalvlaran/cueseq/motion"
)

// Scheduler pre-fetches upcoming endpoint crossings for cues stored in
// an Axis, given a moving playhead described by a motion.Vector.
type Scheduler[K comparable, D any] struct {
	ax  *axis.Axis[K, D]
	clk clock.Clock
	cfg *config

	vector motion.Vector
	queue  []EndpointItem[K, D]
	timer  clock.Timer
	state  State

	bus *eventbus.Bus[[]EndpointItem[K, D]]
}

// New returns a Scheduler reading from ax and timing itself via clk.
// No window is computed until the first SetVector call.
func New[K comparable, D any](ax *axis.Axis[K, D], clk clock.Clock, opts ...Option) *Scheduler[K, D] {
	return &Scheduler[K, D]{
		ax:  ax,
		clk: clk,
		cfg: newConfig(opts...),
		bus: eventbus.New[[]EndpointItem[K, D]](),
	}
}

// State reports the scheduler's current lifecycle state.
func (s *Scheduler[K, D]) State() State {
	return s.state
}

// AddCallback registers fn to receive every due batch as it fires.
func (s *Scheduler[K, D]) AddCallback(fn func([]EndpointItem[K, D])) eventbus.Handle {
	return s.bus.Subscribe(fn)
}

// RemoveCallback cancels a subscription made with AddCallback.
func (s *Scheduler[K, D]) RemoveCallback(h eventbus.Handle) {
	s.bus.Unsubscribe(h)
}

// SetVector recomputes the position window from v and the configured
// lookahead, re-queries the Axis, rebuilds the due-queue, and re-arms
// the timer. Any pending timer is cancelled first. Per spec, the
// scheduler always ends up Armed after a successful call, even if the
// resulting queue is empty.
func (s *Scheduler[K, D]) SetVector(v motion.Vector) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.vector = v
	s.rebuildQueue()
	s.state = Armed
	s.armTimer()
	return nil
}

func (s *Scheduler[K, D]) lookaheadSeconds() float64 {
	return s.cfg.lookahead.Seconds()
}

func (s *Scheduler[K, D]) rebuildQueue() {
	v := s.vector
	lookahead := s.lookaheadSeconds()
	t0 := v.Timestamp
	t1 := v.Timestamp + lookahead

	low, high := windowBounds(v, t0, t1)
	touching := s.ax.Lookup(interval.Interval{Low: low, High: high, LowInclude: true, HighInclude: true})

	var queue []EndpointItem[K, D]
	for _, c := range touching {
		for _, e := range cueEndpoints(c) {
			dt, idx := motion.CalculateDelta(v, []float64{e.Value})
			if idx != 0 || dt > lookahead {
				continue
			}
			due := v.Timestamp + dt
			_, velocity := v.Evaluate(due)
			direction := sign(velocity)
			if direction == 0 {
				continue
			}
			queue = append(queue, EndpointItem[K, D]{Endpoint: e, Cue: c, Direction: direction, Due: due})
		}
	}

	sort.Slice(queue, func(i, j int) bool {
		return queueOrder(queue[i], queue[j])
	})
	s.queue = queue
}

func windowBounds(v motion.Vector, t0, t1 float64) (low, high float64) {
	p0, _ := v.Evaluate(t0)
	p1, _ := v.Evaluate(t1)
	low, high = math.Min(p0, p1), math.Max(p0, p1)

	if v.Acceleration != 0 {
		tVertex := v.Timestamp - v.Velocity/v.Acceleration
		if tVertex > t0 && tVertex < t1 {
			pv, _ := v.Evaluate(tVertex)
			low = math.Min(low, pv)
			high = math.Max(high, pv)
		}
	}
	return low, high
}

func cueEndpoints[K comparable, D any](c axis.Cue[K, D]) []interval.Endpoint {
	if c.Interval.IsSingular() {
		return []interval.Endpoint{c.Interval.LowEndpoint()}
	}
	low, high := c.Interval.Endpoints()
	return []interval.Endpoint{low, high}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (s *Scheduler[K, D]) armTimer() {
	if len(s.queue) == 0 {
		return
	}
	due := s.queue[0].Due
	delay := due - s.clk.Now()
	if delay < 0 {
		delay = 0
	}
	s.timer = s.clk.AfterFunc(time.Duration(delay*float64(time.Second)), s.fire)
}

func (s *Scheduler[K, D]) fire() {
	s.state = Firing
	now := s.clk.Now()

	var batch []EndpointItem[K, D]
	i := 0
	for i < len(s.queue) && s.queue[i].Due <= now {
		i++
	}
	batch, s.queue = s.queue[:i], s.queue[i:]

	if len(batch) > 0 {
		s.bus.Emit(batch)
	}

	if len(s.queue) > 0 {
		s.state = Armed
		s.armTimer()
		return
	}

	// The window has been fully consumed: refill by re-anchoring the
	// current vector at now and recomputing the window from there.
	reanchored := motion.CalculateVector(s.vector, now)
	_ = s.SetVector(reanchored)
}
