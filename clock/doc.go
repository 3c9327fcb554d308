// Package clock abstracts the monotonic time source that scheduler and
// sequencer time themselves against.
//
// System wraps time.Now/time.AfterFunc for production use. Manual is a
// deterministic stand-in for tests: it never sleeps, and Advance fires
// every timer due at or before the new time, in due-time order — the
// same role a seeded RNG plays for the teacher's builder.WithSeed, here
// applied to time instead of randomness.
package clock
