package hashing

import "testing"

func TestJavaHashEmpty(t *testing.T) {
	if got := JavaHash(""); got != 0 {
		t.Fatalf("JavaHash(\"\") = %d, want 0", got)
	}
}

func TestJavaHashKnownValues(t *testing.T) {
	cases := []struct {
		word string
		want uint32
	}{
		{"a", 97},
		{"bb", 31*98 + 98},
		{"ccc", 31*(31*99+99) + 99},
	}
	for _, c := range cases {
		if got := JavaHash(c.word); got != c.want {
			t.Errorf("JavaHash(%q) = %d, want %d", c.word, got, c.want)
		}
	}
}

func TestAdditiveHashKnownValues(t *testing.T) {
	if got := AdditiveHash(""); got != 0 {
		t.Fatalf("AdditiveHash(\"\") = %d, want 0", got)
	}
	if got := AdditiveHash("abc"); got != 97+98+99 {
		t.Fatalf("AdditiveHash(\"abc\") = %d, want %d", got, 97+98+99)
	}
	// additive hash cannot tell anagrams apart
	if AdditiveHash("abc") != AdditiveHash("cba") {
		t.Fatal("AdditiveHash should collide on anagrams")
	}
}

func TestVariantsDeterministic(t *testing.T) {
	words := []string{"", "a", "hello", "simulated annealing"}
	for _, name := range Names() {
		fn, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		for _, w := range words {
			if first, second := fn(w), fn(w); first != second {
				t.Errorf("%s(%q) not deterministic: %d vs %d", name, w, first, second)
			}
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("sha256"); err == nil {
		t.Fatal("expected error for unknown hash name")
	}
}
