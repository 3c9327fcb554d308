// Package eventbus provides a small generic publish/subscribe capability
// shared by axis, scheduler, and sequencer.
//
// The source this module is modeled on (see SPEC_FULL.md) composed event
// emission through prototype mixins; Go has no such mechanism, and the
// teacher's own convention (graph/bfs.go's BFSOptions.OnVisit et al.)
// already expresses "call me back" as a plain func field. Bus
// generalizes that idiom from a single optional callback to an ordered
// set of subscribers behind one struct field — composition, not
// inheritance.
//
// Bus is not safe for concurrent use: per this module's single-threaded
// cooperative model, every Subscribe/Unsubscribe/Emit happens on the
// same logical execution context.
package eventbus
