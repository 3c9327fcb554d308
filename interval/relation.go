package interval

// Relation classifies how one interval relates to another.
type Relation int

const (
	// OutsideLeft: a ends before b begins; no shared point.
	OutsideLeft Relation = iota
	// OverlapLeft: a begins before b and ends inside b.
	OverlapLeft
	// Covered: b contains a entirely (a is the smaller interval).
	Covered
	// Equal: a and b describe the same span, including inclusivity.
	Equal
	// Covers: a contains b entirely (a is the larger interval).
	Covers
	// OverlapRight: a begins inside b and ends after b.
	OverlapRight
	// OutsideRight: a begins after b ends; no shared point.
	OutsideRight
)

// String renders the symbolic name used by spec and tests.
func (r Relation) String() string {
	switch r {
	case OutsideLeft:
		return "OUTSIDE_LEFT"
	case OverlapLeft:
		return "OVERLAP_LEFT"
	case Covered:
		return "COVERED"
	case Equal:
		return "EQUAL"
	case Covers:
		return "COVERS"
	case OverlapRight:
		return "OVERLAP_RIGHT"
	case OutsideRight:
		return "OUTSIDE_RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Overlaps reports whether r denotes any shared point at all — i.e. r is
// one of the five relations in the Match set used by Axis.Lookup.
func (r Relation) Overlaps() bool {
	return r != OutsideLeft && r != OutsideRight
}

// Compare classifies a's relation to b using the endpoint total order,
// so that touching closed boundaries are treated as overlapping and
// touching open/closed boundaries are not.
func Compare(a, b Interval) Relation {
	aLow, aHigh := a.Endpoints()
	bLow, bHigh := b.Endpoints()

	if Cmp(aHigh, bLow) < 0 {
		return OutsideLeft
	}
	if Cmp(bHigh, aLow) < 0 {
		return OutsideRight
	}

	lowCmp := Cmp(aLow, bLow)
	highCmp := Cmp(aHigh, bHigh)

	switch {
	case lowCmp == 0 && highCmp == 0:
		return Equal
	case lowCmp <= 0 && highCmp >= 0:
		return Covers
	case lowCmp >= 0 && highCmp <= 0:
		return Covered
	case lowCmp < 0:
		return OverlapLeft
	default:
		return OverlapRight
	}
}
