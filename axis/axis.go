package axis

import (
	"math"
	"reflect"

	"github.com/katalvlaran/cueseq/eventbus"
	"github.com/katalvlaran/cueseq/interval"
)

// Axis is the interval index: a map of key to Cue, plus a sorted
// endpoint index kept in lockstep with the cue store.
type Axis[K comparable, D any] struct {
	cues   map[K]Cue[K, D]
	owners map[interval.Endpoint]map[K]struct{}
	idx    sortedIndex
	bus    *eventbus.Bus[EventMap[K, D]]
}

// New returns an empty Axis.
func New[K comparable, D any]() *Axis[K, D] {
	return &Axis[K, D]{
		cues:   make(map[K]Cue[K, D]),
		owners: make(map[interval.Endpoint]map[K]struct{}),
		bus:    eventbus.New[EventMap[K, D]](),
	}
}

// AddCallback registers fn to receive every Update's EventMap.
func (a *Axis[K, D]) AddCallback(fn func(EventMap[K, D])) eventbus.Handle {
	return a.bus.Subscribe(fn)
}

// RemoveCallback cancels a subscription made with AddCallback.
func (a *Axis[K, D]) RemoveCallback(h eventbus.Handle) {
	a.bus.Unsubscribe(h)
}

func endpointsOf(iv interval.Interval) []interval.Endpoint {
	if iv.IsSingular() {
		return []interval.Endpoint{iv.LowEndpoint()}
	}
	return []interval.Endpoint{iv.LowEndpoint(), iv.HighEndpoint()}
}

// Update applies batch atomically: every record is validated before any
// state changes, deletions and replacements are resolved before
// insertions are applied, and the result is a single EventMap delivered
// both to the caller and to every registered callback.
func (a *Axis[K, D]) Update(batch []Record[K, D]) (EventMap[K, D], error) {
	for _, rec := range batch {
		if rec.Cue != nil {
			if err := rec.Cue.Interval.Validate(); err != nil {
				return EventMap[K, D]{}, err
			}
		}
	}

	order, states := groupByKey(batch)

	touched := make(map[interval.Endpoint]struct{})
	beforePresent := make(map[interval.Endpoint]bool)
	note := func(e interval.Endpoint) {
		if _, ok := touched[e]; ok {
			return
		}
		touched[e] = struct{}{}
		beforePresent[e] = len(a.owners[e]) > 0
	}

	type plan struct {
		key        K
		old        Cue[K, D]
		hadOld     bool
		newCue     *Cue[K, D]
		intervalCh bool
	}
	plans := make([]plan, 0, len(order))

	for _, key := range order {
		st := states[key]
		old, hadOld := a.cues[key]
		if hadOld {
			for _, e := range endpointsOf(old.Interval) {
				note(e)
			}
		}
		intervalCh := true
		if hadOld && st.newCue != nil {
			intervalCh = !old.Interval.Equal(st.newCue.Interval)
		}
		if st.newCue != nil && (!hadOld || intervalCh) {
			for _, e := range endpointsOf(st.newCue.Interval) {
				note(e)
			}
		}
		plans = append(plans, plan{key: key, old: old, hadOld: hadOld, newCue: st.newCue, intervalCh: intervalCh})
	}

	events := make(map[K]Event[K, D], len(plans))
	orderedKeys := make([]K, 0, len(plans))

	for _, p := range plans {
		var oldPtr *Cue[K, D]
		if p.hadOld {
			oc := p.old
			oldPtr = &oc
		}

		switch {
		case !p.hadOld && p.newCue == nil:
			continue // deleting a key that never existed: true no-op
		case !p.hadOld && p.newCue != nil:
			a.cues[p.key] = *p.newCue
			a.claimEndpoints(p.key, p.newCue.Interval)
			events[p.key] = Event[K, D]{Key: p.key, New: p.newCue, Old: nil,
				Delta: Delta{Kind: DeltaInsert, Interval: SubChange, Data: SubChange}}
		case p.hadOld && p.newCue == nil:
			delete(a.cues, p.key)
			a.releaseEndpoints(p.key, p.old.Interval)
			events[p.key] = Event[K, D]{Key: p.key, New: nil, Old: oldPtr,
				Delta: Delta{Kind: DeltaDelete, Interval: SubChange, Data: SubChange}}
		default:
			intervalDelta := SubNoop
			if p.intervalCh {
				intervalDelta = SubChange
			}
			dataDelta := SubNoop
			if !reflect.DeepEqual(p.old.Data, p.newCue.Data) {
				dataDelta = SubChange
			}
			kind := DeltaNoop
			if intervalDelta == SubChange || dataDelta == SubChange {
				kind = DeltaChange
			}
			if p.intervalCh {
				a.releaseEndpoints(p.key, p.old.Interval)
				a.claimEndpoints(p.key, p.newCue.Interval)
			}
			a.cues[p.key] = *p.newCue
			events[p.key] = Event[K, D]{Key: p.key, New: p.newCue, Old: oldPtr,
				Delta: Delta{Kind: kind, Interval: intervalDelta, Data: dataDelta}}
		}
		orderedKeys = append(orderedKeys, p.key)
	}

	var toInsert, toRemove []interval.Endpoint
	for e := range touched {
		afterPresent := len(a.owners[e]) > 0
		switch {
		case !beforePresent[e] && afterPresent:
			toInsert = append(toInsert, e)
		case beforePresent[e] && !afterPresent:
			toRemove = append(toRemove, e)
		}
	}
	a.idx.update(toRemove, toInsert)

	em := EventMap[K, D]{keys: orderedKeys, events: events}
	a.bus.Emit(em)
	return em, nil
}

func (a *Axis[K, D]) claimEndpoints(key K, iv interval.Interval) {
	for _, e := range endpointsOf(iv) {
		owners, ok := a.owners[e]
		if !ok {
			owners = make(map[K]struct{})
			a.owners[e] = owners
		}
		owners[key] = struct{}{}
	}
}

func (a *Axis[K, D]) releaseEndpoints(key K, iv interval.Interval) {
	for _, e := range endpointsOf(iv) {
		owners := a.owners[e]
		delete(owners, key)
		if len(owners) == 0 {
			delete(a.owners, e)
		}
	}
}

type keyState[K comparable, D any] struct {
	newCue *Cue[K, D]
}

func groupByKey[K comparable, D any](batch []Record[K, D]) ([]K, map[K]*keyState[K, D]) {
	order := make([]K, 0, len(batch))
	states := make(map[K]*keyState[K, D], len(batch))
	for _, rec := range batch {
		st, ok := states[rec.Key]
		if !ok {
			st = &keyState[K, D]{}
			states[rec.Key] = st
			order = append(order, rec.Key)
		}
		if rec.Cue == nil {
			st.newCue = nil
		} else {
			cp := *rec.Cue
			st.newCue = &cp
		}
	}
	return order, states
}

// Lookup returns every cue whose interval overlaps q — any relation in
// {OverlapLeft, Covered, Equal, Covers, OverlapRight}. For a zero-width
// q this degenerates to "every cue covering that point".
//
// The sorted index narrows the candidate set to cues that either cover
// one of q's own boundaries or have an endpoint of their own falling
// inside q; interval.Compare then decides each candidate's actual
// relation, so boundary inclusivity is always resolved correctly even
// when a cue's own endpoint coincides with q's.
func (a *Axis[K, D]) Lookup(q interval.Interval) []Cue[K, D] {
	candidates := make(map[K]struct{})
	for _, k := range a.coveringPoint(q.Low) {
		candidates[k] = struct{}{}
	}
	for _, k := range a.coveringPoint(q.High) {
		candidates[k] = struct{}{}
	}
	for _, e := range a.idx.lookup(q) {
		for k := range a.owners[e] {
			candidates[k] = struct{}{}
		}
	}

	var out []Cue[K, D]
	for k := range candidates {
		c := a.cues[k]
		if interval.Compare(c.Interval, q).Overlaps() {
			out = append(out, c)
		}
	}
	return out
}

// coveringPoint returns the keys of every cue whose interval covers p.
func (a *Axis[K, D]) coveringPoint(p float64) []K {
	candidates := a.idx.lookup(interval.Interval{Low: math.Inf(-1), High: p, LowInclude: true, HighInclude: true})
	seen := make(map[K]struct{})
	var keys []K
	for _, e := range candidates {
		for k := range a.owners[e] {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if a.cues[k].Interval.Covers(p) {
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// Has reports whether key is currently stored.
func (a *Axis[K, D]) Has(key K) bool {
	_, ok := a.cues[key]
	return ok
}

// Get returns the cue stored under key, if any.
func (a *Axis[K, D]) Get(key K) (Cue[K, D], bool) {
	c, ok := a.cues[key]
	return c, ok
}

// Len reports how many cues are currently stored.
func (a *Axis[K, D]) Len() int {
	return len(a.cues)
}
