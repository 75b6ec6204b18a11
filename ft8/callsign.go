package ft8

import "fmt"

/*
 * Standard (C28) and non-standard (C58) callsign encodings, plus the
 * hashed-callsign indirection every message variant falls back to when a
 * callsign doesn't fit its 28-bit field.
 */

// Callsign is either a decoded 28-bit standard callsign or a hashed
// reference into the callsign table.
type Callsign struct {
	standard *Callsign28
	hashed   *HashedCallsign
}

// NewCallsignFromU32 decodes a 28-bit callsign field. Values in
// [2063592, 6257896) are hashed-callsign references; everything else is
// a standard callsign, optionally carrying a "/R" or "/P" suffix.
func NewCallsignFromU32(n uint32, suffix byte, table *CallsignTable) Callsign {
	if n >= 2063592 && n < 6257896 {
		return Callsign{hashed: NewHashedCallsign(n-2063592, 22, table)}
	}
	return Callsign{standard: &Callsign28{Value: n, Suffix: suffix}}
}

func (c Callsign) String() string {
	if c.hashed != nil {
		return c.hashed.String()
	}
	return c.standard.String()
}

// Callsign28 is the 28-bit standard callsign encoding.
type Callsign28 struct {
	Value  uint32
	Suffix byte // 0 when absent
}

func (c Callsign28) String() string {
	call := callsign28ToCall(c.Value)
	if c.Suffix != 0 {
		return fmt.Sprintf("%s/%c", call, c.Suffix)
	}
	return call
}

func callsign28ToCall(n uint32) string {
	switch {
	case n == 0:
		return "DE"
	case n == 1:
		return "QRZ"
	case n == 2:
		return "CQ"
	case n < 1004:
		return fmt.Sprintf("CQ %03d", n-3)
	case n < 2063592:
		return "CQ " + callsign28NumToStr(n-1003)
	case n < 6257896:
		return fmt.Sprintf("<%d>", n-2063592)
	default:
		return callsign28ToStandardCall(n - 6257896)
	}
}

func callsign28NumToStr(n uint32) string {
	var s []byte
	for n > 0 {
		s = append(s, charLookup(int(n%27), charsetAlphaSpace))
		n /= 27
	}
	trimmed := trimSpaces(s)
	reverseBytes(trimmed)
	return string(trimmed)
}

func callsign28ToStandardCall(n uint32) string {
	call := make([]byte, 6)
	call[0] = charLookup(int(n%27), charsetAlphaSpace)
	n /= 27
	call[1] = charLookup(int(n%27), charsetAlphaSpace)
	n /= 27
	call[2] = charLookup(int(n%27), charsetAlphaSpace)
	n /= 27
	call[3] = charLookup(int(n%10), charsetNumeric)
	n /= 10
	call[4] = charLookup(int(n%36), charsetAlphaNum)
	n /= 36
	call[5] = charLookup(int(n%37), charsetAlphaNumSpace)

	trimmed := trimSpaces(call)
	reverseBytes(trimmed)
	return string(trimmed)
}

func trimSpaces(b []byte) []byte {
	start := 0
	for start < len(b) && b[start] == ' ' {
		start++
	}
	end := len(b)
	for end > start && b[end-1] == ' ' {
		end--
	}
	return b[start:end]
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Callsign58 is the 58-bit free-form callsign encoding: 11 characters
// over the 38-symbol alphabet " 0-9A-Z/", base-38.
type Callsign58 struct {
	Value uint64
}

func (c Callsign58) String() string {
	n := c.Value
	text := make([]byte, 11)
	for i := 10; i >= 0; i-- {
		text[i] = charLookup(int(n%38), charsetNonStdCall)
		n /= 38
	}
	return string(trimSpaces(text))
}

// HashedCallsign renders as the callsign the table resolves it to, or as
// "<hash>" when the table has no matching entry.
type HashedCallsign struct {
	hash     uint32
	callsign string
	resolved bool
}

// NewHashedCallsign resolves hash (of the given bit width: 10, 12 or 22)
// against table.
func NewHashedCallsign(hash uint32, width int, table *CallsignTable) *HashedCallsign {
	h := &HashedCallsign{hash: hash}
	if table == nil {
		return h
	}
	switch width {
	case 10:
		h.callsign, h.resolved = table.Get10(uint16(hash))
	case 12:
		h.callsign, h.resolved = table.Get12(uint16(hash))
	case 22:
		h.callsign, h.resolved = table.Get22(hash)
	}
	return h
}

func (h *HashedCallsign) String() string {
	if h.resolved {
		return h.callsign
	}
	return fmt.Sprintf("<%d>", h.hash)
}
