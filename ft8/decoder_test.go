package ft8

import (
	"os"
	"testing"

	"github.com/go-audio/wav"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SampleRate != 12000 {
		t.Errorf("SampleRate = %d, want 12000", cfg.SampleRate)
	}
	if cfg.DecodeAttempts != 10 {
		t.Errorf("DecodeAttempts = %d, want 10", cfg.DecodeAttempts)
	}
	if cfg.FromFreq != 0 || cfg.ToFreq != 3000 {
		t.Errorf("band = [%v,%v], want [0,3000]", cfg.FromFreq, cfg.ToFreq)
	}
}

func TestDecoderSilenceYieldsNoMessages(t *testing.T) {
	dec := NewDecoder(DefaultConfig())
	samples := make([]float64, dec.demod.fftSize*4)
	if got := dec.Decode(samples); len(got) != 0 {
		t.Errorf("Decode(silence) = %d messages, want 0", len(got))
	}
}

func TestDecoderInsertCallsignIsConsistent(t *testing.T) {
	dec := NewDecoder(DefaultConfig())
	hash := dec.InsertCallsign("K1ABC")
	got, ok := dec.table.Get22(hash)
	if !ok || got != "K1ABC" {
		t.Fatalf("InsertCallsign round trip = (%q, %v), want (\"K1ABC\", true)", got, ok)
	}
}

func TestSplitAndCheckCRC(t *testing.T) {
	var payload [77]bool
	payload[0] = true
	crc := crc14(payload)

	var codeword [ldpcN]bool
	copy(codeword[:77], payload[:])
	for i := 0; i < 14; i++ {
		codeword[77+i] = (crc>>(13-i))&1 != 0
	}

	gotPayload, ok := splitAndCheckCRC(codeword)
	if !ok {
		t.Fatal("expected CRC to validate for a consistently constructed codeword")
	}
	if gotPayload != payload {
		t.Fatal("recovered payload does not match the original")
	}
}

func TestSplitAndCheckCRCRejectsMismatch(t *testing.T) {
	var codeword [ldpcN]bool
	codeword[0] = true // payload bit set, CRC bits left zero: won't validate
	if _, ok := splitAndCheckCRC(codeword); ok {
		t.Fatal("expected CRC mismatch to be rejected")
	}
}

// TestDecodeReferenceWav exercises the end-to-end path against a
// recorded FT8 transmission, when the fixture is present. The fixture
// is not checked into this environment, so the test is skipped rather
// than failed when it's absent.
func TestDecodeReferenceWav(t *testing.T) {
	const fixture = "testdata/test.wav"
	f, err := os.Open(fixture)
	if err != nil {
		t.Skipf("reference fixture %s not available: %v", fixture, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		t.Fatalf("reading %s: %v", fixture, err)
	}

	samples := make([]float64, len(buf.Data))
	maxAmp := float64(int(1) << (buf.SourceBitDepth - 1))
	for i, s := range buf.Data {
		samples[i] = float64(s) / maxAmp
	}

	dec := NewDecoder(DefaultConfig())
	messages := dec.Decode(samples)
	if len(messages) == 0 {
		t.Fatal("expected at least one message decoded from the reference recording")
	}

	table := NewCallsignTable()
	for _, m := range messages {
		for _, call := range m.Callsigns() {
			if len(call) == 0 || call[0] == '<' {
				continue // hashed reference that didn't resolve; nothing to seed
			}
			hash := table.Insert(call)
			if got, ok := table.Get22(hash); !ok || got != call {
				t.Fatalf("callsign table inconsistent after inserting %q", call)
			}
		}
	}
}
