package experiment

import (
	"context"
	"fmt"
	"testing"

	"example.com/Goodness/pkg/collision"
	"example.com/Goodness/pkg/hashing"
)

func testHashes(n int) collision.BaseHashSet {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%03d", i)
	}
	return collision.NewBaseHashSet(words, hashing.JavaHash)
}

func TestDriverExecute(t *testing.T) {
	d := &Driver{
		Hashes:  testHashes(64),
		Metric:  collision.MetricTotal,
		Seed:    hashing.ShiftState{A: 1, B: 1, C: 1, D: 1},
		Kmax:    300,
		RNGSeed: 1,
	}
	sizes := []uint32{4, 16, 256}

	runs, err := d.Execute(context.Background(), sizes)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != len(sizes) {
		t.Fatalf("got %d runs, want %d", len(runs), len(sizes))
	}
	for i, r := range runs {
		if r.Size != sizes[i] {
			t.Errorf("run %d: size = %d, want %d (order must match input)", i, r.Size, sizes[i])
		}
		if r.BestEnergy < 0 {
			t.Errorf("size %d: best energy %v is negative", r.Size, r.BestEnergy)
		}
		if r.BestEnergy > r.SeedEnergy {
			t.Errorf("size %d: best energy %v exceeds seed energy %v", r.Size, r.BestEnergy, r.SeedEnergy)
		}
		if r.Iterations > d.Kmax {
			t.Errorf("size %d: %d iterations exceed kmax %d", r.Size, r.Iterations, d.Kmax)
		}
		if err := r.Best.Validate(); err != nil {
			t.Errorf("size %d: best state invalid: %v", r.Size, err)
		}
	}
}

func TestDriverReproducibleWithFixedSeed(t *testing.T) {
	run := func() []Run {
		d := &Driver{
			Hashes:  testHashes(64),
			Metric:  collision.MetricTotal,
			Seed:    hashing.ShiftState{A: 1, B: 1, C: 1, D: 1},
			Kmax:    200,
			RNGSeed: 7,
		}
		runs, err := d.Execute(context.Background(), []uint32{8, 64})
		if err != nil {
			t.Fatal(err)
		}
		return runs
	}
	first, second := run(), run()
	for i := range first {
		if first[i].Best != second[i].Best || first[i].BestEnergy != second[i].BestEnergy {
			t.Fatalf("run %d not reproducible: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRunImproved(t *testing.T) {
	r := Run{BestEnergy: 1, ReferenceEnergy: 2}
	if !r.Improved() {
		t.Fatal("lower best energy should report improved")
	}
	r = Run{BestEnergy: 2, ReferenceEnergy: 2}
	if r.Improved() {
		t.Fatal("equal energies should not report improved")
	}
}
