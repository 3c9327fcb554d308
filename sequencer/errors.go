package sequencer

import "errors"

// ErrNotReady is returned by operations that need a current vector
// when called before the timing source has signalled readiness.
var ErrNotReady = errors.New("sequencer: timing source is not ready")
