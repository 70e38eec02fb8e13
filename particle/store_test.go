package particle

import (
	"testing"

	"github.com/cpmech/gosph/linalg"
)

func TestAppendKeepsTypesContiguous(t *testing.T) {
	s := NewStore(0)
	for i := 0; i < 3; i++ {
		idx := s.Append(Fluid)
		s.R[idx] = linalg.Vec{X: float64(i)}
	}
	for i := 0; i < 2; i++ {
		idx := s.Append(Fixed)
		s.R[idx] = linalg.Vec{X: 10 + float64(i)}
	}
	if s.Size() != 5 {
		t.Fatalf("expected 5 particles, got %d", s.Size())
	}
	flo, fhi := s.Fluid()
	if flo != 0 || fhi != 3 {
		t.Fatalf("fluid range = [%d,%d), want [0,3)", flo, fhi)
	}
	blo, bhi := s.Fixed()
	if blo != 3 || bhi != 5 {
		t.Fatalf("fixed range = [%d,%d), want [3,5)", blo, bhi)
	}
	for i := 0; i < 3; i++ {
		if s.R[i].X != float64(i) {
			t.Fatalf("fluid particle %d displaced: %v", i, s.R[i])
		}
	}
}

func TestAppendInterleavedPreservesRanges(t *testing.T) {
	s := NewStore(0)
	a := s.Append(Fluid)
	s.R[a] = linalg.Vec{X: 1}
	b := s.Append(Fixed)
	s.R[b] = linalg.Vec{X: 2}
	c := s.Append(Fluid) // must land before the fixed particle
	s.R[c] = linalg.Vec{X: 3}

	if s.TypeOf(a) != Fluid || s.TypeOf(c) != Fluid {
		t.Fatal("expected both fluid inserts to type as Fluid")
	}
	if s.TypeOf(2) != Fixed {
		t.Fatalf("expected fixed particle to move to index 2, got type %v", s.TypeOf(2))
	}
	flo, fhi := s.Fluid()
	if fhi-flo != 2 {
		t.Fatalf("expected 2 fluid particles, got %d", fhi-flo)
	}
}

func TestUntrackedFieldAccessPanics(t *testing.T) {
	s := NewStore(0)
	s.Append(Fluid)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic accessing untracked field")
		}
	}()
	_ = s.GradRho()
}

func TestTrackedFieldAccessSucceeds(t *testing.T) {
	s := NewStore(TrackRenorm | TrackFreeSurface | TrackAlpha)
	idx := s.Append(Fluid)
	s.GradRho()[idx] = linalg.Vec{X: 1, Y: 2}
	s.FS()[idx] = true
	if !s.FS()[idx] {
		t.Fatal("expected FS flag to stick")
	}
	s.Alpha()[idx] = 1
	if s.Alpha()[idx] != 1 {
		t.Fatal("expected alpha to stick")
	}
}

type fakeSink struct {
	uniforms map[string]float64
	scalars  map[string][]float64
	vectors  map[string][]linalg.Vec
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		uniforms: map[string]float64{},
		scalars:  map[string][]float64{},
		vectors:  map[string][]linalg.Vec{},
	}
}

func (f *fakeSink) TimeStep(time float64)                    {}
func (f *fakeSink) Uniform(name string, value float64)        { f.uniforms[name] = value }
func (f *fakeSink) Scalar(name string, values []float64)      { f.scalars[name] = values }
func (f *fakeSink) Vector(name string, values []linalg.Vec)   { f.vectors[name] = values }

func TestWriteEmitsTrackedFieldsOnly(t *testing.T) {
	s := NewStore(TrackEnergy)
	idx := s.Append(Fluid)
	s.Rho[idx] = 1000
	s.U()[idx] = 42
	sink := newFakeSink()
	s.Write(0.1, sink)
	if sink.scalars["rho"][idx] != 1000 {
		t.Fatal("expected rho to be written")
	}
	if sink.scalars["u"][idx] != 42 {
		t.Fatal("expected tracked u to be written")
	}
	if _, ok := sink.scalars["div_v"]; ok {
		t.Fatal("expected untracked div_v to be omitted")
	}
}
