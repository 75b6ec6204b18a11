package ft8

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	widths := []int{8, 16, 32, 64}
	for _, w := range widths {
		bits := make([]bool, w)
		for i := range bits {
			bits[i] = i%3 == 0
		}
		var packed uint64
		switch w {
		case 8:
			packed = uint64(packBits[uint8](bits))
		case 16:
			packed = uint64(packBits[uint16](bits))
		case 32:
			packed = uint64(packBits[uint32](bits))
		case 64:
			packed = packBits[uint64](bits)
		}
		got := unpackBits(packed, w)
		for i := range bits {
			if got[i] != bits[i] {
				t.Fatalf("width %d: bit %d mismatch: got %v want %v", w, i, got[i], bits[i])
			}
		}
	}
}

func TestPackBits128(t *testing.T) {
	bits := make([]bool, 100)
	for i := range bits {
		bits[i] = i%2 == 0
	}
	hi, lo := packBits128(bits)
	if hi == 0 && lo == 0 {
		t.Fatal("expected non-zero packed value")
	}
	// The low 64 bits of the packed value must match packing just the
	// trailing 64 bits directly.
	wantLo := packBits[uint64](bits[36:])
	if lo != wantLo {
		t.Fatalf("lo mismatch: got %#x want %#x", lo, wantLo)
	}
}

func TestCharLookupNeverPanics(t *testing.T) {
	if got := charLookup(-1, charsetAlphaNum); got != '?' {
		t.Fatalf("negative index: got %q want '?'", got)
	}
	if got := charLookup(len(charsetAlphaNum), charsetAlphaNum); got != '?' {
		t.Fatalf("out-of-range index: got %q want '?'", got)
	}
	if got := charLookup(0, charsetAlphaNum); got != charsetAlphaNum[0] {
		t.Fatalf("in-range index: got %q want %q", got, charsetAlphaNum[0])
	}
}

func TestLeaveOneOutProduct7(t *testing.T) {
	m := [7]float32{2, 3, 5, 7, 11, 13, 17}
	got := leaveOneOutProduct7(m)
	total := float32(1)
	for _, v := range m {
		total *= v
	}
	for i, v := range m {
		want := total / v
		if diff := got[i] - want; diff > 1e-2 || diff < -1e-2 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want)
		}
	}
}

func TestLeaveOneOutProduct6(t *testing.T) {
	var m [7]float32
	copy(m[:6], []float32{2, 3, 5, 7, 11, 13})
	got := leaveOneOutProduct6(m)
	total := float32(1)
	for _, v := range m[:6] {
		total *= v
	}
	for i := 0; i < 6; i++ {
		want := total / m[i]
		if diff := got[i] - want; diff > 1e-2 || diff < -1e-2 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want)
		}
	}
}
