package hashing

import "testing"

func TestSpreadZeroStateIsIdentity(t *testing.T) {
	// h ^ h>>0 ^ h>>0 == h, twice over
	s := ShiftState{}
	for _, h := range []uint32{0, 1, 97, 0xDEADBEEF, 0xFFFFFFFF} {
		if got := Spread(h, s); got != h {
			t.Errorf("Spread(%#x, zero state) = %#x, want identity", h, got)
		}
	}
}

func TestSpreadZeroInput(t *testing.T) {
	for _, s := range []ShiftState{{1, 2, 3, 4}, ReferenceState, {31, 31, 31, 31}} {
		if got := Spread(0, s); got != 0 {
			t.Errorf("Spread(0, %s) = %#x, want 0", s, got)
		}
	}
}

func TestSpreadKnownValues(t *testing.T) {
	// worked out by hand for state {1,2,3,4}
	s := ShiftState{A: 1, B: 2, C: 3, D: 4}
	cases := []struct {
		h, want uint32
	}{
		{97, 68},
		{3136, 2249},
		{98307, 0x11602},
	}
	for _, c := range cases {
		if got := Spread(c.h, s); got != c.want {
			t.Errorf("Spread(%d, %s) = %d, want %d", c.h, s, got, c.want)
		}
	}
}

func TestShiftStateValidate(t *testing.T) {
	if err := (ShiftState{31, 31, 31, 31}).Validate(); err != nil {
		t.Fatalf("boundary state should be valid: %v", err)
	}
	for _, s := range []ShiftState{{A: 32}, {B: 32}, {C: 100}, {D: 32}} {
		if err := s.Validate(); err == nil {
			t.Errorf("state %s should be invalid", s)
		}
	}
}

func TestReferenceState(t *testing.T) {
	want := ShiftState{A: 20, B: 12, C: 7, D: 4}
	if ReferenceState != want {
		t.Fatalf("ReferenceState = %s, want %s", ReferenceState, want)
	}
}
