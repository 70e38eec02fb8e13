package geom

import (
	"testing"

	"github.com/cpmech/gosph/linalg"
)

func TestClampKeepsInsidePointsUnchanged(t *testing.T) {
	b := NewBBoxFromPoints(linalg.Vec{X: 0, Y: 0}, linalg.Vec{X: 1, Y: 1})
	p := linalg.Vec{X: 0.5, Y: 0.2}
	if got := b.Clamp(p); got != p {
		t.Fatalf("expected interior point unchanged, got %v", got)
	}
}

func TestClampProjectsOutsidePoints(t *testing.T) {
	b := NewBBoxFromPoints(linalg.Vec{X: 0, Y: 0}, linalg.Vec{X: 1, Y: 1})
	got := b.Clamp(linalg.Vec{X: -1, Y: 2})
	want := linalg.Vec{X: 0, Y: 1}
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestGrowShrinkRoundTrip(t *testing.T) {
	b := NewBBoxFromPoints(linalg.Vec{X: 0, Y: 0}, linalg.Vec{X: 1, Y: 1})
	grown := b.Grow(0.5)
	back := grown.Shrink(0.5)
	if back.Low() != b.Low() || back.High() != b.High() {
		t.Fatalf("grow/shrink did not round trip: got %v want %v", back, b)
	}
}

func TestSplitXCoversOriginal(t *testing.T) {
	b := NewBBoxFromPoints(linalg.Vec{X: 0, Y: 0}, linalg.Vec{X: 2, Y: 1})
	left, right := b.SplitX(0.75)
	if left.High().X != 0.75 || right.Low().X != 0.75 {
		t.Fatalf("split boundary mismatch: left=%v right=%v", left, right)
	}
	if left.Low() != b.Low() || right.High() != b.High() {
		t.Fatalf("split parts must retain the other corners")
	}
}

func TestExpandAndJoin(t *testing.T) {
	b := NewBBox(linalg.Vec{X: 0, Y: 0})
	b = b.Expand(linalg.Vec{X: 3, Y: -2})
	if b.Low() != (linalg.Vec{X: 0, Y: -2}) || b.High() != (linalg.Vec{X: 3, Y: 0}) {
		t.Fatalf("unexpected expanded box: %v", b)
	}
	other := NewBBoxFromPoints(linalg.Vec{X: -1, Y: -1}, linalg.Vec{X: 1, Y: 1})
	joined := b.Join(other)
	if joined.Low() != (linalg.Vec{X: -1, Y: -2}) || joined.High() != (linalg.Vec{X: 3, Y: 1}) {
		t.Fatalf("unexpected joined box: %v", joined)
	}
}
