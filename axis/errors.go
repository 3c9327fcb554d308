package axis

import "github.com/katalvlaran/cueseq/interval"

// ErrInvalidInterval is returned by Update when any record in the batch
// carries an interval that fails interval.Interval.Validate. The entire
// batch is rejected; no state changes.
var ErrInvalidInterval = interval.ErrInvalidInterval
