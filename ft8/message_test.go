package ft8

import "testing"

func payloadFromBitString(t *testing.T, s string) [77]bool {
	t.Helper()
	if len(s) != 77 {
		t.Fatalf("fixture has %d bits, want 77", len(s))
	}
	var payload [77]bool
	for i, c := range s {
		payload[i] = c == '1'
	}
	return payload
}

func TestUnpackMessageFreeTextScenario(t *testing.T) {
	payload := payloadFromBitString(t, "01100011111011011100111011100010101001001010111000000111111101010000000000000")
	data := unpackMessage(payload, NewCallsignTable())
	ft, ok := data.(FreeText)
	if !ok {
		t.Fatalf("unpackMessage dispatched to %T, want FreeText", data)
	}
	if got := ft.String(); got != "TNX BOB 73 GL" {
		t.Errorf("FreeText.String() = %q, want %q", got, "TNX BOB 73 GL")
	}
}

func TestUnpackMessageDispatch(t *testing.T) {
	mk := func(i3, n3 uint8) [77]bool {
		var p [77]bool
		for i := 0; i < 3; i++ {
			p[71+i] = (n3>>(2-i))&1 != 0
			p[74+i] = (i3>>(2-i))&1 != 0
		}
		return p
	}
	cases := []struct {
		i3, n3 uint8
		want   string
	}{
		{0, 0, "FreeText"},
		{0, 1, "Dxpedition"},
		{0, 3, "FieldDay"},
		{0, 4, "FieldDay"},
		{0, 5, "Telemetry"},
		{0, 2, "Unknown"},
		{1, 0, "Standard"},
		{2, 0, "Standard"},
		{3, 0, "RTTYRU"},
		{4, 0, "NonStdCall"},
		{5, 0, "EUVHF"},
		{6, 0, "Unknown"},
	}
	table := NewCallsignTable()
	for _, c := range cases {
		data := unpackMessage(mk(c.i3, c.n3), table)
		if got := data.TypeName(); got != c.want {
			t.Errorf("i3=%d n3=%d: dispatched to %s, want %s", c.i3, c.n3, got, c.want)
		}
	}
}

func TestMessageStringFormat(t *testing.T) {
	m := newMessage(12.3, 1500, 1200, payloadFromBitString(t, "01100011111011011100111011100010101001001010111000000111111101010000000000000"), NewCallsignTable())
	want := " 12.3 1.2 1500 TNX BOB 73 GL"
	if got := m.String(); got != want {
		t.Errorf("Message.String() = %q, want %q", got, want)
	}
}

func TestDeduplicateMessagesKeepsMaxSNR(t *testing.T) {
	table := NewCallsignTable()
	payload := payloadFromBitString(t, "01100011111011011100111011100010101001001010111000000111111101010000000000000")
	low := newMessage(1.0, 1000, 0, payload, table)
	high := newMessage(9.0, 1000, 0, payload, table)

	got := deduplicateMessages([]Message{low, high})
	if len(got) != 1 {
		t.Fatalf("deduplicateMessages: got %d messages, want 1", len(got))
	}
	if got[0].SNR != 9.0 {
		t.Errorf("deduplicateMessages kept SNR %v, want 9.0", got[0].SNR)
	}
}

func TestDeduplicateMessagesPreservesDistinctText(t *testing.T) {
	table := NewCallsignTable()
	a := payloadFromBitString(t, "01100011111011011100111011100010101001001010111000000111111101010000000000000")
	b := a
	b[0] = !b[0]

	msgs := []Message{newMessage(1, 1000, 0, a, table), newMessage(2, 1000, 0, b, table)}
	got := deduplicateMessages(msgs)
	if len(got) != 2 {
		t.Fatalf("deduplicateMessages: got %d messages, want 2", len(got))
	}
}

func TestS13Serial(t *testing.T) {
	s := newS13(42)
	if got := s.String(); got != "0042" {
		t.Errorf("S13(42).String() = %q, want %q", got, "0042")
	}
}

func TestS13StateProvince(t *testing.T) {
	s := newS13(8001)
	if got := s.String(); got != statesAndProvinces[0] {
		t.Errorf("S13(8001).String() = %q, want %q", got, statesAndProvinces[0])
	}
}
