package interval

// Interval is a closed/half-open/open span on a real-valued axis.
//
// A singular interval has Low == High with both bounds inclusive; it
// represents a single point. Low == High with either bound exclusive is
// illegal and rejected by Validate.
type Interval struct {
	Low         float64
	High        float64
	LowInclude  bool
	HighInclude bool
}

// IsSingular reports whether iv is a zero-width, fully-inclusive point.
func (iv Interval) IsSingular() bool {
	return iv.Low == iv.High && iv.LowInclude && iv.HighInclude
}

// Validate reports ErrInvalidInterval for Low > High, or for Low == High
// unless both bounds are inclusive.
func (iv Interval) Validate() error {
	if iv.Low > iv.High {
		return ErrInvalidInterval
	}
	if iv.Low == iv.High && !(iv.LowInclude && iv.HighInclude) {
		return ErrInvalidInterval
	}
	return nil
}

// LowEndpoint returns iv's lower boundary as an Endpoint.
func (iv Interval) LowEndpoint() Endpoint {
	if iv.IsSingular() {
		return Endpoint{Value: iv.Low, Singular: true}
	}
	return Endpoint{Value: iv.Low, Right: false, Closed: iv.LowInclude}
}

// HighEndpoint returns iv's upper boundary as an Endpoint.
func (iv Interval) HighEndpoint() Endpoint {
	if iv.IsSingular() {
		return Endpoint{Value: iv.High, Singular: true}
	}
	return Endpoint{Value: iv.High, Right: true, Closed: iv.HighInclude}
}

// Endpoints returns both boundaries of iv. For a singular interval both
// endpoints are identical and Singular.
func (iv Interval) Endpoints() (low, high Endpoint) {
	return iv.LowEndpoint(), iv.HighEndpoint()
}

// Covers reports whether value lies within iv, honoring inclusivity.
func (iv Interval) Covers(value float64) bool {
	return iv.LowEndpoint().Covers(value) && iv.HighEndpoint().Covers(value)
}

// Equal reports whether iv and other describe the exact same span,
// including inclusivity.
func (iv Interval) Equal(other Interval) bool {
	return iv.Low == other.Low && iv.High == other.High &&
		iv.LowInclude == other.LowInclude && iv.HighInclude == other.HighInclude
}
