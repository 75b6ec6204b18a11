package ft8

import "fmt"

/*
 * Message unpacker: dispatches the 77-bit FT8 payload to one of ten
 * message variants by its i3/n3 selector bits, and provides the
 * canonical text rendering and deduplication used by the decoder facade.
 */

// MessageData is the decoded payload of an FT8 transmission: one of ten
// variants (FreeText, Dxpedition, FieldDay, Telemetry, StandardR,
// StandardP, RTTYRU, NonStdCall, EUVHF, Unknown), sharing a rendering
// and callsign-extraction contract.
type MessageData interface {
	fmt.Stringer
	// Callsigns returns the callsigns referenced by this message, for
	// feeding back into the callsign table.
	Callsigns() []string
	// TypeName names the message variant, e.g. "FreeText".
	TypeName() string
}

// unpackMessage decodes the 77-bit payload into its MessageData variant,
// selecting on the trailing i3 (and, for i3==0, n3) bits.
func unpackMessage(payload [77]bool, table *CallsignTable) MessageData {
	i3 := packBits[uint8](payload[74:77])
	switch i3 {
	case 0:
		n3 := packBits[uint8](payload[71:74])
		switch n3 {
		case 0:
			return newFreeText(payload)
		case 1:
			return newDxpedition(payload, table)
		case 3:
			return newFieldDay(payload, 1, table)
		case 4:
			return newFieldDay(payload, 17, table)
		case 5:
			return newTelemetry(payload)
		default:
			return newUnknown(payload)
		}
	case 1:
		return newStandard(payload, 'R', table)
	case 2:
		return newStandard(payload, 'P', table)
	case 3:
		return newRTTYRU(payload, table)
	case 4:
		return newNonStdCall(payload, table)
	case 5:
		return newEUVHF(payload, table)
	default:
		return newUnknown(payload)
	}
}

// Message is a single decoded FT8 transmission.
type Message struct {
	SNR         float32
	FreqHz      uint32
	TimeOffsetMs int64
	Data        MessageData
}

// newMessage decodes a 77-bit payload into a Message, resolving hashed
// callsigns against table.
func newMessage(snr float32, freqHz uint32, timeOffsetMs int64, payload [77]bool, table *CallsignTable) Message {
	return Message{
		SNR:          snr,
		FreqHz:       freqHz,
		TimeOffsetMs: timeOffsetMs,
		Data:         unpackMessage(payload, table),
	}
}

// Callsigns returns the callsigns carried by this message's payload.
func (m Message) Callsigns() []string {
	return m.Data.Callsigns()
}

// String renders the message in its canonical textual form:
// "{snr:5.1} {time_s:.1} {freq:4} {payload}".
func (m Message) String() string {
	return fmt.Sprintf("%5.1f %.1f %4d %s", m.SNR, float32(m.TimeOffsetMs)/1000.0, m.FreqHz, m.Data.String())
}

// deduplicateMessages keeps, for every distinct rendered payload text,
// only the candidate with the highest SNR.
func deduplicateMessages(messages []Message) []Message {
	best := make(map[string]Message, len(messages))
	order := make([]string, 0, len(messages))
	for _, m := range messages {
		key := m.Data.String()
		if existing, ok := best[key]; !ok || m.SNR > existing.SNR {
			if !ok {
				order = append(order, key)
			}
			best[key] = m
		}
	}
	out := make([]Message, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// S13 is the 13-bit RTTYRU field: either a serial number (< 8001) or an
// index into the 65-entry US/Canada state-province table.
type S13 struct {
	value uint16
}

func newS13(n uint16) S13 {
	return S13{value: n}
}

func (s S13) String() string {
	if s.value < 8001 {
		return fmt.Sprintf("%04d", s.value)
	}
	idx := s.value - 8001
	if idx < 65 {
		return statesAndProvinces[idx]
	}
	return ""
}
