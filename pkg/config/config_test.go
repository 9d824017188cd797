package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"example.com/Goodness/pkg/hashing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Experiment)
	}{
		{"empty wordlist", func(e *Experiment) { e.Wordlist = "" }},
		{"unknown hash", func(e *Experiment) { e.Hash = "sha1" }},
		{"unknown metric", func(e *Experiment) { e.Metric = "median" }},
		{"no sizes", func(e *Experiment) { e.Sizes = nil }},
		{"non power of two size", func(e *Experiment) { e.Sizes = []uint32{3} }},
		{"zero size", func(e *Experiment) { e.Sizes = []uint32{0} }},
		{"negative kmax", func(e *Experiment) { e.Kmax = -1 }},
		{"negative emax", func(e *Experiment) { e.Emax = -0.5 }},
		{"negative workers", func(e *Experiment) { e.Workers = -2 }},
		{"seed out of range", func(e *Experiment) { e.Seed = hashing.ShiftState{A: 32} }},
	}
	for _, c := range cases {
		e := Default()
		c.mutate(e)
		if err := e.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	store := NewDefaultStore(path)

	want := Default()
	want.Hash = "murmur3"
	want.Sizes = []uint32{16, 32}
	want.Seed = hashing.ShiftState{A: 20, B: 12, C: 7, D: 4}
	if err := store.Save(want); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	if err := os.WriteFile(path, []byte("kmax: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewDefaultStore(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Kmax != 5 {
		t.Fatalf("kmax = %d, want 5", got.Kmax)
	}
	if got.Hash != Default().Hash || got.Wordlist != Default().Wordlist {
		t.Fatalf("unset fields should keep defaults, got %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewDefaultStore(filepath.Join(t.TempDir(), "nope.yaml")).Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
