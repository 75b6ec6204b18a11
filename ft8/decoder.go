package ft8

import "log"

/*
 * Decoder facade: owns the demodulator and callsign table, and exposes
 * the single Decode entry point a caller streams PCM samples through.
 * Grounded on the original decoder's FT8Decoder/DecodeParams pair.
 */

// Config holds the tunable parameters of a Decoder, mirroring the
// original decoder's DecodeParams.
type Config struct {
	// SampleRate is the input PCM sample rate in Hz.
	SampleRate int
	// DecodeAttempts bounds the number of LDPC belief-propagation
	// iterations spent per candidate codeword.
	DecodeAttempts int
	// FromFreq and ToFreq bound, in Hz, the audio band scanned for
	// demodulation candidates.
	FromFreq float64
	ToFreq   float64
}

// DefaultConfig returns the decoder's default tuning: a 12kHz input
// rate, 10 LDPC iterations, scanning 0-3000Hz.
func DefaultConfig() Config {
	return Config{
		SampleRate:     12000,
		DecodeAttempts: 10,
		FromFreq:       0,
		ToFreq:         3000,
	}
}

// Decoder demodulates a stream of PCM samples into FT8 messages. It is
// not safe for concurrent use: callers feeding samples from multiple
// goroutines must synchronize externally.
type Decoder struct {
	cfg   Config
	demod *demodulator
	table *CallsignTable
}

// NewDecoder builds a Decoder from cfg. A zero Config is invalid; use
// DefaultConfig as a starting point.
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{
		cfg:   cfg,
		demod: newDemodulator(cfg.SampleRate, cfg.FromFreq, cfg.ToFreq),
		table: NewCallsignTable(),
	}
}

// InsertCallsign seeds the decoder's callsign hash table so that later
// hashed-callsign references in decoded messages resolve to call.
func (d *Decoder) InsertCallsign(call string) uint32 {
	return d.table.Insert(call)
}

// Decode feeds samples through the demodulator and returns the messages
// recovered during this call, deduplicated by rendered text (keeping the
// highest-SNR candidate of each). Decode may be called repeatedly on
// successive chunks of a longer stream; state persists across calls.
func (d *Decoder) Decode(samples []float64) []Message {
	candidates := d.demod.feed(samples)
	if len(candidates) == 0 {
		return nil
	}

	messages := make([]Message, 0, len(candidates))
	for _, cand := range candidates {
		codeword, ok := ldpcDecode(cand.bits, d.cfg.DecodeAttempts)
		if !ok {
			continue
		}
		if allZero(codeword) {
			continue
		}
		payload, crcOK := splitAndCheckCRC(codeword)
		if !crcOK {
			log.Printf("[ft8] dropping candidate at %dHz: CRC mismatch", cand.freqHz)
			continue
		}
		messages = append(messages, newMessage(cand.snr(), cand.freqHz, cand.timeOffsetMs, payload, d.table))
	}
	return deduplicateMessages(messages)
}

func allZero(bits [ldpcN]bool) bool {
	for _, b := range bits {
		if b {
			return false
		}
	}
	return true
}

// splitAndCheckCRC splits a decoded 174-bit LDPC codeword into its
// 77-bit payload and verifies the trailing CRC-14 against it.
func splitAndCheckCRC(codeword [ldpcN]bool) (payload [77]bool, ok bool) {
	copy(payload[:], codeword[:77])
	var gotCRC uint16
	for i := 0; i < 14; i++ {
		if codeword[77+i] {
			gotCRC |= 1 << (13 - i)
		}
	}
	return payload, crc14(payload) == gotCRC
}
