// Package cueseq is a temporal cue sequencer: an interval-indexed
// store of keyed cues tracked against a moving playhead, emitting
// enter/change/exit transitions as the playhead's position crosses
// cue boundaries.
//
// Under the hood, everything is organized under focused subpackages:
//
//	interval/   — endpoint algebra, interval relations and validation
//	axis/       — the interval-indexed cue store and its sorted endpoint index
//	motion/     — kinematic vectors and crossing-time algebra
//	clock/      — the Clock/Timer abstraction (real and manual)
//	eventbus/   — generic, panic-isolated pub/sub used throughout
//	scheduler/  — windowed lookahead over upcoming endpoint crossings
//	sequencer/  — reconciles axis, timing, and scheduler events into one stream
//
// A minimal sequencer wires an Axis and a TimingSource together:
//
//	ax := axis.New[string, string]()
//	ax.Update([]axis.Record[string, string]{
//		{Key: "intro", Cue: &axis.Cue[string, string]{
//			Key:      "intro",
//			Interval: interval.Interval{Low: 0, High: 10, LowInclude: true, HighInclude: true},
//			Data:     "fade in",
//		}},
//	})
//	seq := sequencer.New[string, string](ax, myTimingSource)
//	seq.AddCallback(func(transitions []sequencer.Transition[string, string]) {
//		// react to enter/change/exit
//	})
//
// The Example functions of the axis, motion, scheduler and sequencer
// packages are runnable: ExampleSequencer shows a stationary jump and
// ExampleScheduler a crossing under constant forward motion.
package cueseq
