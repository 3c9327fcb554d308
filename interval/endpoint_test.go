package interval

import "testing"

func TestCmp_ByValue(t *testing.T) {
	a := Endpoint{Value: 1, Right: false, Closed: true}
	b := Endpoint{Value: 2, Right: false, Closed: true}
	if Cmp(a, b) >= 0 {
		t.Fatalf("expected a < b, got Cmp=%d", Cmp(a, b))
	}
	if Cmp(b, a) <= 0 {
		t.Fatalf("expected b > a, got Cmp=%d", Cmp(b, a))
	}
}

func TestCmp_TieOrderAtSameValue(t *testing.T) {
	rightOpen := Endpoint{Value: 5, Right: true, Closed: false}
	leftClosed := Endpoint{Value: 5, Right: false, Closed: true}
	singular := Endpoint{Value: 5, Singular: true}
	rightClosed := Endpoint{Value: 5, Right: true, Closed: true}
	leftOpen := Endpoint{Value: 5, Right: false, Closed: false}

	order := []Endpoint{rightOpen, leftClosed, singular, rightClosed, leftOpen}
	for i := 0; i < len(order)-1; i++ {
		if Cmp(order[i], order[i+1]) >= 0 {
			t.Fatalf("expected order[%d] < order[%d], got Cmp=%d", i, i+1, Cmp(order[i], order[i+1]))
		}
	}
}

func TestCmp_EqualOnlyWhenRightAndClosedMatch(t *testing.T) {
	leftClosed := Endpoint{Value: 5, Right: false, Closed: true}
	rightClosed := Endpoint{Value: 5, Right: true, Closed: true}
	singular := Endpoint{Value: 5, Singular: true}

	if Cmp(leftClosed, rightClosed) == 0 {
		t.Fatal("left-closed and right-closed at the same value must not compare equal")
	}
	if Cmp(leftClosed, singular) == 0 {
		t.Fatal("left-closed and singular at the same value must not compare equal")
	}

	sameAgain := Endpoint{Value: 5, Right: false, Closed: true}
	if Cmp(leftClosed, sameAgain) != 0 {
		t.Fatal("identical endpoints must compare equal")
	}
}

func TestEndpointCovers(t *testing.T) {
	leftClosed := Endpoint{Value: 5, Right: false, Closed: true}
	if !leftClosed.Covers(5) {
		t.Error("left-closed endpoint must cover its own boundary value")
	}
	if !leftClosed.Covers(6) {
		t.Error("left-closed endpoint must cover values to its right")
	}
	if leftClosed.Covers(4) {
		t.Error("left-closed endpoint must not cover values to its left")
	}

	leftOpen := Endpoint{Value: 5, Right: false, Closed: false}
	if leftOpen.Covers(5) {
		t.Error("left-open endpoint must not cover its own boundary value")
	}

	rightClosed := Endpoint{Value: 5, Right: true, Closed: true}
	if !rightClosed.Covers(5) || rightClosed.Covers(6) {
		t.Error("right-closed endpoint must cover exactly values <= its boundary")
	}

	singular := Endpoint{Value: 5, Singular: true}
	if !singular.Covers(5) || singular.Covers(4) || singular.Covers(6) {
		t.Error("singular endpoint must cover only its own value")
	}
}
