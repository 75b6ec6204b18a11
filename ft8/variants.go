package ft8

import (
	"fmt"
	"math/big"
)

/*
 * The ten FT8 message variants. Each new* constructor slices the raw
 * 77-bit payload per the field layout in the original decoder; a
 * String() method renders the variant's canonical text.
 */

// ---- FreeText (i3=0, n3=0) ----

// FreeText is 71 free-form bits over a 13-character base-42 alphabet.
type FreeText struct {
	Text string
}

func newFreeText(payload [77]bool) FreeText {
	return FreeText{Text: freeTextDecode(payload[:71])}
}

func freeTextDecode(bits []bool) string {
	val := bitsToBigInt(bits)
	base := big.NewInt(42)
	digit := new(big.Int)
	text := make([]byte, 13)
	for i := 12; i >= 0; i-- {
		val.DivMod(val, base, digit)
		text[i] = charLookup(int(digit.Int64()), charsetFreeText)
	}
	return string(text)
}

// bitsToBigInt packs bits MSB-first into an arbitrary-width integer, for
// fields (FreeText, Telemetry) too wide for a single uint64.
func bitsToBigInt(bits []bool) *big.Int {
	hi, lo := packBits128(bits)
	val := new(big.Int).SetUint64(hi)
	val.Lsh(val, 64)
	val.Or(val, new(big.Int).SetUint64(lo))
	return val
}

func (f FreeText) String() string     { return f.Text }
func (f FreeText) Callsigns() []string { return nil }
func (f FreeText) TypeName() string    { return "FreeText" }

// ---- Telemetry (i3=0, n3=5) ----

// Telemetry is 71 free-form bits rendered as 18 hex digits.
type Telemetry struct {
	Text string
}

func newTelemetry(payload [77]bool) Telemetry {
	val := bitsToBigInt(payload[:71])
	base := big.NewInt(16)
	digit := new(big.Int)
	text := make([]byte, 18)
	for i := 17; i >= 0; i-- {
		val.DivMod(val, base, digit)
		text[i] = charLookup(int(digit.Int64()), charsetTelemetry)
	}
	return Telemetry{Text: string(text)}
}

func (t Telemetry) String() string     { return t.Text }
func (t Telemetry) Callsigns() []string { return nil }
func (t Telemetry) TypeName() string    { return "Telemetry" }

// ---- Unknown (i3=0,n3∉{0,1,3,4,5}; i3∈{6,7}) ----

// Unknown carries the raw 77 payload bits, rendered as a binary string.
type Unknown struct {
	Bits [77]bool
}

func newUnknown(payload [77]bool) Unknown {
	return Unknown{Bits: payload}
}

func (u Unknown) String() string {
	text := make([]byte, len(u.Bits))
	for i, b := range u.Bits {
		if b {
			text[i] = '1'
		} else {
			text[i] = '0'
		}
	}
	return string(text)
}
func (u Unknown) Callsigns() []string { return nil }
func (u Unknown) TypeName() string    { return "Unknown" }

// ---- Dxpedition (i3=0, n3=1) ----

// Dxpedition carries two standard callsigns, a 10-bit hashed callsign
// reference, and a signal-strength report in dB.
type Dxpedition struct {
	Callsign1      Callsign
	Callsign2      Callsign
	HashedCallsign *HashedCallsign
	StrengthRaw    uint8
}

func newDxpedition(payload [77]bool, table *CallsignTable) Dxpedition {
	return Dxpedition{
		Callsign1:      NewCallsignFromU32(packBits[uint32](payload[0:28]), 0, table),
		Callsign2:      NewCallsignFromU32(packBits[uint32](payload[28:56]), 0, table),
		HashedCallsign: NewHashedCallsign(packBits[uint32](payload[56:66]), 10, table),
		StrengthRaw:    packBits[uint8](payload[66:71]),
	}
}

func (d Dxpedition) String() string {
	return fmt.Sprintf("%s %s %s %d", d.Callsign1, d.Callsign2, d.HashedCallsign, int(d.StrengthRaw)*2-30)
}
func (d Dxpedition) Callsigns() []string {
	return []string{d.Callsign1.String(), d.Callsign2.String(), d.HashedCallsign.String()}
}
func (d Dxpedition) TypeName() string { return "Dxpedition" }

// ---- FieldDay (i3=0, n3∈{3,4}) ----

// FieldDay carries two standard callsigns, an optional relay flag, a
// transmitter count, an operating class letter, and a RAC section.
type FieldDay struct {
	Callsign1    Callsign
	Callsign2    Callsign
	HasR         bool
	Transmitters uint8
	Class        byte
	RACSection   uint8
}

func newFieldDay(payload [77]bool, transmitterOffset uint8, table *CallsignTable) FieldDay {
	return FieldDay{
		Callsign1:    NewCallsignFromU32(packBits[uint32](payload[0:28]), 0, table),
		Callsign2:    NewCallsignFromU32(packBits[uint32](payload[28:56]), 0, table),
		HasR:         payload[56],
		Transmitters: packBits[uint8](payload[57:60]) + transmitterOffset,
		Class:        'A' + packBits[uint8](payload[60:63]),
		RACSection:   packBits[uint8](payload[63:70]),
	}
}

func (f FieldDay) String() string {
	section := "DX"
	if int(f.RACSection) < len(racSections) {
		section = racSections[f.RACSection]
	}
	r := ""
	if f.HasR {
		r = "R "
	}
	return fmt.Sprintf("%s %s %s%d%c %s", f.Callsign1, f.Callsign2, r, f.Transmitters, f.Class, section)
}
func (f FieldDay) Callsigns() []string { return []string{f.Callsign1.String(), f.Callsign2.String()} }
func (f FieldDay) TypeName() string    { return "FieldDay" }

// ---- Standard (i3=1 "/R", i3=2 "/P") ----

// Standard carries two standard callsigns (optionally suffixed /R or
// /P) and a 4-character grid locator (which doubles as a signal report
// or RRR/RR73/73 carrier).
type Standard struct {
	Callsign1 Callsign
	Callsign2 Callsign
	Grid      Grid4
}

func newStandard(payload [77]bool, suffix byte, table *CallsignTable) Standard {
	var suffix1, suffix2 byte
	if payload[28] {
		suffix1 = suffix
	}
	if payload[57] {
		suffix2 = suffix
	}
	hasR := payload[58]
	return Standard{
		Callsign1: NewCallsignFromU32(packBits[uint32](payload[0:28]), suffix1, table),
		Callsign2: NewCallsignFromU32(packBits[uint32](payload[29:57]), suffix2, table),
		Grid:      Grid4{Value: packBits[uint16](payload[59:74]), HasR: hasR},
	}
}

func (s Standard) String() string {
	return fmt.Sprintf("%s %s %s", s.Callsign1, s.Callsign2, s.Grid)
}
func (s Standard) Callsigns() []string { return []string{s.Callsign1.String(), s.Callsign2.String()} }
func (s Standard) TypeName() string    { return "Standard" }

// ---- RTTYRU (i3=3) ----

// RTTYRU is the RTTY Roundup contest message: an optional "thank you"
// flag, two standard callsigns, an optional relay flag, a signal
// report, and a serial-or-section field.
type RTTYRU struct {
	HasTU     bool
	Callsign1 Callsign
	Callsign2 Callsign
	HasR      bool
	Strength  uint8
	S13       S13
}

func newRTTYRU(payload [77]bool, table *CallsignTable) RTTYRU {
	return RTTYRU{
		HasTU:     payload[0],
		Callsign1: NewCallsignFromU32(packBits[uint32](payload[1:29]), 0, table),
		Callsign2: NewCallsignFromU32(packBits[uint32](payload[29:57]), 0, table),
		HasR:      payload[57],
		Strength:  packBits[uint8](payload[58:61]),
		S13:       newS13(packBits[uint16](payload[61:74])),
	}
}

func (r RTTYRU) String() string {
	tu := ""
	if r.HasTU {
		tu = "TU "
	}
	return fmt.Sprintf("%s%s %s %d %s", tu, r.Callsign1, r.Callsign2, uint16(r.Strength)*10+529, r.S13)
}
func (r RTTYRU) Callsigns() []string { return []string{r.Callsign1.String(), r.Callsign2.String()} }
func (r RTTYRU) TypeName() string    { return "RTTYRU" }

// ---- NonStdCall (i3=4) ----

// NonStdCall carries a 12-bit hashed callsign and a 58-bit non-standard
// free-form callsign, with a swap flag controlling display order.
type NonStdCall struct {
	Callsign1    *HashedCallsign
	Callsign2    Callsign58
	CallsignSwap bool
	MessageWord  uint8
	HasCQ        bool
}

func newNonStdCall(payload [77]bool, table *CallsignTable) NonStdCall {
	return NonStdCall{
		Callsign1:    NewHashedCallsign(packBits[uint32](payload[0:12]), 12, table),
		Callsign2:    Callsign58{Value: packBits[uint64](payload[12:70])},
		CallsignSwap: payload[70],
		MessageWord:  packBits[uint8](payload[71:73]),
		HasCQ:        payload[73],
	}
}

func nonStdMessageWordText(w uint8) string {
	switch w {
	case 0:
		return ""
	case 1:
		return "RRR"
	case 2:
		return "RR73"
	case 3:
		return "73"
	default:
		return "???"
	}
}

func (n NonStdCall) String() string {
	word := nonStdMessageWordText(n.MessageWord)
	if n.CallsignSwap {
		first := n.Callsign2.String()
		if n.HasCQ {
			first = "CQ"
		}
		return fmt.Sprintf("%s %s %s", first, n.Callsign1, word)
	}
	first := n.Callsign1.String()
	if n.HasCQ {
		first = "CQ"
	}
	return fmt.Sprintf("%s %s %s", first, n.Callsign2, word)
}
func (n NonStdCall) Callsigns() []string {
	return []string{n.Callsign1.String(), n.Callsign2.String()}
}
func (n NonStdCall) TypeName() string { return "NonStdCall" }

// ---- EUVHF (i3=5) ----

// EUVHF is the European VHF contest message: two hashed callsigns, an
// optional relay flag, a signal report, a serial number and a
// 6-character grid locator.
type EUVHF struct {
	Callsign1  *HashedCallsign
	Callsign2  *HashedCallsign
	HasR       bool
	Strength   uint8
	SerialNum  uint16
	Grid       Grid6
}

func newEUVHF(payload [77]bool, table *CallsignTable) EUVHF {
	return EUVHF{
		Callsign1: NewHashedCallsign(packBits[uint32](payload[0:12]), 12, table),
		Callsign2: NewHashedCallsign(packBits[uint32](payload[12:34]), 22, table),
		HasR:      payload[34],
		Strength:  packBits[uint8](payload[35:38]),
		SerialNum: packBits[uint16](payload[38:49]),
		Grid:      Grid6{Value: packBits[uint32](payload[49:74])},
	}
}

func (e EUVHF) String() string {
	r := ""
	if e.HasR {
		r = "R "
	}
	return fmt.Sprintf("%s %s %s%d%04d %s", e.Callsign1, e.Callsign2, r, e.Strength+52, e.SerialNum, e.Grid)
}
func (e EUVHF) Callsigns() []string {
	return []string{e.Callsign1.String(), e.Callsign2.String()}
}
func (e EUVHF) TypeName() string { return "EUVHF" }
