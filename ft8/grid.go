package ft8

import "fmt"

/*
 * Maidenhead grid locator encodings used by Standard and EUVHF messages.
 */

// Grid4 is the 15-bit compressed 4-character Maidenhead locator field
// used by Standard messages, which also doubles as a signal report /
// RRR/RR73/73 carrier when its value is out of the grid range.
type Grid4 struct {
	Value uint16
	HasR  bool
}

func (g Grid4) String() string {
	rendered := grid4Text(g.Value)
	if g.HasR {
		return "R" + rendered
	}
	return rendered
}

func grid4Text(n uint16) string {
	if n <= 32400 {
		var chars [4]byte
		chars[3] = byte('0' + n%10)
		n /= 10
		chars[2] = byte('0' + n%10)
		n /= 10
		chars[1] = byte('A' + n%18)
		n /= 18
		chars[0] = byte('A' + n%18)
		return string(chars[:])
	}
	n -= 32400
	switch n {
	case 1:
		return ""
	case 2:
		return "RRR"
	case 3:
		return "RR73"
	case 4:
		return "73"
	}
	if n < 35 {
		return fmt.Sprintf("-%02d", 35-n)
	}
	return fmt.Sprintf("+%02d", n-35)
}

// Grid6 is the 25-bit 6-character Maidenhead locator used by EUVHF
// messages.
type Grid6 struct {
	Value uint32
}

func (g Grid6) String() string {
	n := g.Value
	var chars [6]byte
	chars[5] = byte('A' + n%24)
	n /= 24
	chars[4] = byte('A' + n%24)
	n /= 24
	chars[3] = byte('0' + n%10)
	n /= 10
	chars[2] = byte('0' + n%10)
	n /= 10
	chars[1] = byte('A' + n%18)
	n /= 18
	chars[0] = byte('A' + n%18)
	return string(chars[:])
}
