package core

import "testing"

func TestSeededSamplerDeterministic(t *testing.T) {
	a := NewSeededSampler(42)
	b := NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		va, vb := a.Get1D(), b.Get1D()
		if va != vb {
			t.Fatalf("Sample %d differs: %f vs %f", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("Sample %d out of [0,1): %f", i, va)
		}
	}
}

func TestConstantSampler(t *testing.T) {
	s := ConstantSampler(0.5)
	if s.Get1D() != 0.5 || s.Get1D() != 0.5 {
		t.Error("Constant sampler should always return its value")
	}
}
