package scheduler

import "github.com/katalvlaran/cueseq/motion"

// ErrInvalidVector is returned by SetVector when the supplied vector
// carries a NaN or infinite component.
var ErrInvalidVector = motion.ErrInvalidVector
