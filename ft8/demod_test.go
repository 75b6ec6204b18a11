package ft8

import "testing"

func TestBuildDataSymbolPositionsCount(t *testing.T) {
	if len(dataSymbolPositions) != dataSymbols {
		t.Fatalf("len(dataSymbolPositions) = %d, want %d", len(dataSymbolPositions), dataSymbols)
	}
	seen := make(map[int]bool, totalSymbols)
	for _, p := range dataSymbolPositions {
		if p < 0 || p >= totalSymbols {
			t.Fatalf("position %d out of [0,%d)", p, totalSymbols)
		}
		seen[p] = true
	}
	for _, base := range costasOffsets {
		for i := 0; i < costasSymbols; i++ {
			if seen[base+i] {
				t.Fatalf("Costas symbol %d should not be a data symbol", base+i)
			}
		}
	}
	if len(seen) != dataSymbols {
		t.Fatalf("dataSymbolPositions has duplicates: %d unique of %d", len(seen), dataSymbols)
	}
}

func TestGrayMapIsAPermutation(t *testing.T) {
	seen := make(map[int]bool, tonesPerSymbol)
	for _, v := range grayMap {
		if v < 0 || v >= tonesPerSymbol {
			t.Fatalf("grayMap entry %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != tonesPerSymbol {
		t.Fatalf("grayMap is not a bijection over [0,%d): %d distinct values", tonesPerSymbol, len(seen))
	}
}

func TestSigmoidBounds(t *testing.T) {
	if got := sigmoid(0); got != 0.5 {
		t.Errorf("sigmoid(0) = %v, want 0.5", got)
	}
	if got := sigmoid(100); got <= 0.99 {
		t.Errorf("sigmoid(100) = %v, want close to 1", got)
	}
	if got := sigmoid(-100); got >= 0.01 {
		t.Errorf("sigmoid(-100) = %v, want close to 0", got)
	}
}

func TestNewDemodulatorFFTSizing(t *testing.T) {
	d := newDemodulator(12000, 0, 3000)
	if d.fftSize != 3840 {
		t.Errorf("fftSize = %d, want 3840 for a 12kHz input", d.fftSize)
	}
	if d.hop != d.fftSize/4 {
		t.Errorf("hop = %d, want fftSize/4 = %d", d.hop, d.fftSize/4)
	}
	if d.toBin <= d.fromBin {
		t.Errorf("toBin (%d) must exceed fromBin (%d) for a non-empty scan range", d.toBin, d.fromBin)
	}
}

func TestDemodulatorFeedBelowWindowProducesNoCandidates(t *testing.T) {
	d := newDemodulator(12000, 0, 3000)
	samples := make([]float64, d.fftSize/2) // short of one full window
	if got := d.feed(samples); got != nil {
		t.Errorf("feed() with less than one window of samples returned %d candidates, want none", len(got))
	}
}

func TestDemodulatorFeedSilenceProducesNoCandidates(t *testing.T) {
	d := newDemodulator(12000, 0, 3000)
	samples := make([]float64, d.fftSize*4)
	got := d.feed(samples)
	if len(got) != 0 {
		t.Errorf("feed() with silence returned %d candidates, want none", len(got))
	}
}
