package motion

import "errors"

// ErrInvalidVector is returned when a Vector carries a NaN or infinite
// component.
var ErrInvalidVector = errors.New("motion: vector has a NaN or infinite component")
