package ft8

import "testing"

func TestCRC14Deterministic(t *testing.T) {
	var payload [77]bool
	for i := range payload {
		payload[i] = i%5 == 0
	}
	if crc14(payload) != crc14(payload) {
		t.Fatal("crc14 must be a pure function of its input")
	}
}

func TestCRC14SensitiveToPayload(t *testing.T) {
	var a, b [77]bool
	for i := range a {
		a[i] = i%5 == 0
	}
	b = a
	b[0] = !b[0]
	if crc14(a) == crc14(b) {
		t.Fatal("flipping a payload bit should change the CRC with overwhelming probability")
	}
}

func TestCRC14FitsWidth(t *testing.T) {
	var payload [77]bool
	for i := range payload {
		payload[i] = true
	}
	if got := crc14(payload); got >= 1<<14 {
		t.Fatalf("crc14 = %#x, expected a 14-bit value", got)
	}
}
