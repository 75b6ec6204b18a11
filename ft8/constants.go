package ft8

/*
 * FT8 protocol constants.
 *
 * Costas sync array, callsign/text alphabets, RAC section and US/Canada
 * state-province tables, and the (174,91) LDPC parity-check graph. These
 * mirror the protocol constants carried by the original decoder; see
 * DESIGN.md for how the LDPC graph tables were reproduced.
 */

// costasPattern is the 7-symbol FT8 synchronization tone sequence, placed
// at symbol positions 0..6, 36..42 and 72..78 of every transmission.
var costasPattern = [7]int{3, 1, 4, 0, 6, 5, 2}

// absentVariable marks an unused 7th slot in a degree-6 LDPC check row.
const absentVariable = 255

// ldpcNM holds, for each of the 83 check nodes, the up-to-7 incident
// variable-node indices (absentVariable sentinel when a row has degree 6).
var ldpcNM = [83][7]uint8{
	{118, 49, 149, 53, 54, 35, 255},
	{64, 114, 159, 6, 31, 40, 129},
	{98, 39, 12, 44, 173, 19, 255},
	{86, 59, 16, 69, 57, 111, 255},
	{149, 69, 100, 30, 101, 158, 127},
	{28, 158, 148, 132, 23, 4, 255},
	{161, 57, 28, 122, 170, 74, 255},
	{20, 87, 120, 154, 0, 164, 255},
	{60, 90, 46, 149, 166, 36, 101},
	{1, 80, 113, 46, 10, 155, 255},
	{60, 76, 115, 81, 88, 150, 255},
	{63, 131, 82, 33, 94, 116, 65},
	{173, 71, 128, 26, 1, 112, 255},
	{82, 97, 61, 137, 66, 140, 48},
	{8, 135, 21, 112, 145, 18, 255},
	{50, 124, 45, 11, 68, 83, 255},
	{7, 34, 136, 113, 33, 90, 255},
	{171, 117, 55, 93, 74, 121, 255},
	{126, 139, 124, 135, 152, 168, 255},
	{141, 15, 115, 96, 44, 109, 255},
	{142, 137, 62, 22, 95, 106, 75},
	{160, 22, 144, 127, 37, 11, 255},
	{50, 96, 151, 29, 17, 74, 153},
	{29, 143, 168, 20, 77, 126, 99},
	{119, 89, 136, 43, 135, 11, 255},
	{79, 105, 14, 66, 83, 146, 255},
	{92, 48, 10, 47, 147, 12, 75},
	{88, 127, 80, 54, 121, 41, 255},
	{78, 0, 93, 169, 118, 138, 255},
	{12, 102, 86, 156, 103, 16, 255},
	{139, 172, 130, 61, 117, 67, 255},
	{131, 106, 39, 104, 19, 60, 255},
	{24, 134, 2, 5, 102, 65, 255},
	{167, 46, 157, 45, 98, 34, 255},
	{108, 79, 73, 120, 40, 17, 255},
	{155, 97, 85, 81, 106, 123, 77},
	{36, 133, 67, 147, 138, 81, 255},
	{112, 157, 35, 3, 104, 68, 255},
	{38, 162, 91, 32, 31, 105, 255},
	{173, 75, 121, 161, 95, 147, 114},
	{114, 42, 84, 131, 21, 20, 255},
	{153, 100, 119, 13, 170, 25, 255},
	{63, 115, 13, 141, 84, 59, 255},
	{91, 136, 19, 144, 71, 55, 255},
	{162, 139, 142, 164, 53, 150, 255},
	{158, 148, 42, 78, 87, 123, 255},
	{99, 151, 66, 76, 111, 8, 168},
	{92, 128, 160, 148, 159, 150, 37},
	{166, 22, 163, 84, 9, 27, 23},
	{15, 146, 8, 62, 94, 64, 255},
	{95, 107, 169, 129, 17, 76, 145},
	{52, 39, 124, 72, 78, 152, 80},
	{145, 32, 134, 4, 119, 18, 26},
	{27, 165, 14, 56, 71, 126, 255},
	{25, 164, 34, 142, 2, 9, 255},
	{2, 69, 129, 103, 83, 30, 255},
	{5, 51, 14, 16, 160, 138, 255},
	{45, 70, 0, 116, 137, 57, 143},
	{132, 15, 67, 13, 63, 3, 255},
	{41, 62, 87, 132, 130, 116, 255},
	{40, 97, 49, 155, 43, 56, 255},
	{90, 99, 55, 31, 171, 133, 255},
	{37, 104, 51, 92, 110, 163, 157},
	{167, 156, 143, 108, 125, 100, 21},
	{36, 41, 65, 9, 72, 140, 255},
	{18, 163, 169, 128, 10, 6, 255},
	{77, 107, 167, 86, 59, 73, 255},
	{33, 152, 7, 25, 105, 1, 255},
	{24, 172, 154, 93, 118, 54, 28},
	{79, 58, 171, 29, 133, 91, 255},
	{47, 140, 165, 120, 108, 130, 255},
	{101, 35, 49, 47, 103, 26, 53},
	{6, 107, 85, 42, 166, 44, 255},
	{88, 96, 123, 153, 58, 144, 255},
	{5, 141, 58, 82, 43, 3, 50},
	{122, 162, 156, 70, 159, 72, 255},
	{125, 85, 94, 151, 109, 117, 255},
	{61, 125, 51, 161, 23, 172, 255},
	{102, 52, 48, 38, 134, 165, 255},
	{110, 30, 111, 154, 170, 27, 255},
	{70, 109, 7, 89, 110, 4, 255},
	{73, 146, 64, 56, 32, 38, 68},
	{98, 89, 122, 113, 24, 52, 255},
}

// ldpcNMC holds, for each edge in ldpcNM, which of the 3 message slots at
// that variable node the edge occupies.
var ldpcNMC = [83][7]uint8{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{1, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 2, 0, 0, 1},
	{0, 0, 0, 1, 0, 0, 0},
	{1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 0, 1, 0, 0},
	{1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 1, 1, 0},
	{0, 0, 0, 0, 1, 0, 0},
	{0, 0, 1, 1, 0, 0, 0},
	{0, 0, 1, 0, 1, 0, 0},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 1, 0, 1, 0},
	{1, 1, 0, 0, 0, 2, 0},
	{1, 0, 1, 1, 0, 1, 0},
	{0, 0, 1, 0, 2, 2, 0},
	{0, 0, 0, 1, 1, 0, 0},
	{0, 1, 1, 0, 0, 1, 1},
	{1, 2, 1, 1, 1, 0, 0},
	{0, 1, 1, 0, 1, 0, 0},
	{2, 0, 1, 0, 0, 1, 0},
	{1, 0, 0, 1, 1, 0, 0},
	{1, 1, 1, 0, 1, 2, 0},
	{0, 0, 0, 0, 1, 1, 0},
	{0, 2, 0, 1, 1, 1, 0},
	{0, 1, 0, 1, 1, 1, 0},
	{1, 1, 0, 1, 2, 0, 1},
	{1, 0, 1, 1, 1, 2, 0},
	{2, 1, 1, 0, 1, 1, 0},
	{0, 0, 0, 0, 1, 1, 0},
	{2, 2, 2, 1, 1, 2, 1},
	{2, 0, 0, 2, 1, 2, 0},
	{1, 1, 1, 0, 1, 0, 0},
	{1, 2, 1, 1, 1, 1, 0},
	{1, 2, 2, 1, 1, 1, 0},
	{1, 2, 1, 1, 1, 1, 0},
	{2, 1, 1, 1, 1, 1, 0},
	{1, 1, 2, 1, 1, 1, 2},
	{1, 1, 1, 2, 1, 2, 1},
	{1, 2, 0, 2, 0, 0, 1},
	{1, 1, 2, 1, 1, 1, 0},
	{2, 0, 1, 1, 2, 2, 1},
	{0, 2, 2, 0, 2, 1, 2},
	{2, 1, 1, 1, 2, 1, 1},
	{1, 0, 1, 0, 2, 2, 0},
	{1, 2, 2, 2, 1, 1, 0},
	{2, 2, 2, 1, 2, 1, 0},
	{1, 0, 2, 2, 2, 2, 0},
	{2, 0, 2, 1, 2, 2, 1},
	{1, 2, 2, 2, 2, 1, 0},
	{1, 2, 2, 2, 1, 2, 0},
	{2, 2, 1, 2, 1, 1, 0},
	{2, 2, 2, 2, 1, 1, 0},
	{2, 2, 1, 2, 0, 1, 2},
	{1, 1, 2, 1, 0, 2, 2},
	{2, 2, 2, 2, 1, 1, 0},
	{2, 2, 2, 2, 2, 1, 0},
	{2, 1, 2, 2, 2, 1, 0},
	{2, 2, 1, 2, 2, 2, 0},
	{1, 1, 1, 2, 2, 2, 2},
	{2, 0, 2, 2, 2, 2, 0},
	{1, 2, 1, 2, 2, 2, 0},
	{2, 2, 2, 2, 2, 2, 2},
	{2, 2, 1, 2, 2, 2, 0},
	{2, 2, 2, 2, 1, 2, 0},
	{2, 2, 2, 2, 2, 2, 2},
	{1, 2, 2, 1, 2, 2, 0},
	{1, 2, 2, 2, 1, 2, 0},
	{2, 2, 2, 2, 2, 2, 0},
	{2, 1, 2, 1, 2, 2, 0},
	{1, 2, 2, 2, 2, 2, 0},
	{2, 2, 2, 1, 2, 2, 0},
	{2, 2, 2, 2, 2, 2, 2},
	{2, 2, 2, 2, 2, 2, 0},
}

// ldpcMN holds, for each of the 174 variable nodes, its 3 incident check
// node indices.
var ldpcMN = [174][3]uint8{
	{7, 28, 57},
	{9, 12, 67},
	{32, 54, 55},
	{37, 58, 74},
	{5, 52, 80},
	{32, 56, 74},
	{1, 65, 72},
	{16, 67, 80},
	{14, 46, 49},
	{48, 54, 64},
	{9, 26, 65},
	{15, 21, 24},
	{2, 26, 29},
	{41, 42, 58},
	{25, 53, 56},
	{19, 49, 58},
	{3, 29, 56},
	{22, 34, 50},
	{14, 52, 65},
	{2, 31, 43},
	{7, 23, 40},
	{14, 40, 63},
	{20, 21, 48},
	{5, 48, 77},
	{32, 68, 82},
	{41, 54, 67},
	{12, 52, 71},
	{48, 53, 79},
	{5, 6, 68},
	{22, 23, 69},
	{4, 55, 79},
	{1, 38, 61},
	{38, 52, 81},
	{11, 16, 67},
	{16, 33, 54},
	{0, 37, 71},
	{8, 36, 64},
	{21, 47, 62},
	{38, 78, 81},
	{2, 31, 51},
	{1, 34, 60},
	{27, 59, 64},
	{40, 45, 72},
	{24, 60, 74},
	{2, 19, 72},
	{15, 33, 57},
	{8, 9, 33},
	{26, 70, 71},
	{13, 26, 78},
	{0, 60, 71},
	{15, 22, 74},
	{56, 62, 77},
	{51, 78, 82},
	{0, 44, 71},
	{0, 27, 68},
	{17, 43, 61},
	{53, 60, 81},
	{3, 6, 57},
	{69, 73, 74},
	{3, 42, 66},
	{8, 10, 31},
	{13, 30, 77},
	{20, 49, 59},
	{11, 42, 58},
	{1, 49, 81},
	{11, 32, 64},
	{13, 25, 46},
	{30, 36, 58},
	{15, 37, 81},
	{3, 4, 55},
	{57, 75, 80},
	{12, 43, 53},
	{51, 64, 75},
	{34, 66, 81},
	{6, 17, 22},
	{20, 26, 39},
	{10, 46, 50},
	{23, 35, 66},
	{28, 45, 51},
	{25, 34, 69},
	{9, 27, 51},
	{10, 35, 36},
	{11, 13, 74},
	{15, 25, 55},
	{40, 42, 48},
	{35, 72, 76},
	{3, 29, 66},
	{7, 45, 59},
	{10, 27, 73},
	{24, 80, 82},
	{8, 16, 61},
	{38, 43, 69},
	{26, 47, 62},
	{17, 28, 68},
	{11, 49, 76},
	{20, 39, 50},
	{19, 22, 73},
	{13, 35, 60},
	{2, 33, 82},
	{23, 46, 61},
	{4, 41, 63},
	{4, 8, 71},
	{29, 32, 78},
	{29, 55, 71},
	{31, 37, 62},
	{25, 38, 67},
	{20, 31, 35},
	{50, 66, 72},
	{34, 63, 70},
	{19, 76, 80},
	{62, 79, 80},
	{3, 46, 79},
	{12, 14, 37},
	{9, 16, 82},
	{1, 39, 40},
	{10, 19, 42},
	{11, 57, 59},
	{17, 30, 76},
	{0, 28, 68},
	{24, 41, 52},
	{7, 34, 70},
	{17, 27, 39},
	{6, 75, 82},
	{35, 45, 73},
	{15, 18, 51},
	{63, 76, 77},
	{18, 23, 53},
	{4, 21, 27},
	{12, 47, 65},
	{1, 50, 55},
	{30, 59, 70},
	{11, 31, 40},
	{5, 58, 59},
	{36, 61, 69},
	{32, 52, 78},
	{14, 18, 24},
	{16, 24, 43},
	{13, 20, 57},
	{28, 36, 56},
	{18, 30, 44},
	{13, 64, 70},
	{19, 42, 74},
	{20, 44, 54},
	{23, 57, 63},
	{21, 43, 73},
	{14, 50, 52},
	{25, 49, 81},
	{26, 36, 39},
	{5, 45, 47},
	{0, 4, 8},
	{10, 44, 47},
	{22, 46, 76},
	{18, 51, 67},
	{22, 41, 73},
	{7, 68, 79},
	{9, 35, 60},
	{29, 63, 75},
	{33, 37, 62},
	{4, 5, 45},
	{1, 47, 75},
	{21, 47, 56},
	{6, 39, 77},
	{38, 44, 75},
	{48, 62, 65},
	{7, 44, 54},
	{53, 70, 78},
	{8, 48, 72},
	{33, 63, 66},
	{18, 23, 46},
	{28, 50, 65},
	{6, 41, 79},
	{17, 61, 69},
	{30, 68, 77},
	{2, 12, 39},
}

// ldpcMNV holds, for each edge in ldpcMN, the reverse slot index into
// ldpcNM/ldpcNMC.
var ldpcMNV = [174][3]uint8{
	{4, 1, 2},
	{0, 4, 5},
	{2, 4, 0},
	{3, 5, 5},
	{5, 3, 5},
	{3, 0, 0},
	{3, 5, 0},
	{0, 2, 2},
	{0, 5, 2},
	{4, 5, 3},
	{4, 2, 4},
	{3, 5, 5},
	{2, 5, 0},
	{3, 2, 3},
	{2, 2, 2},
	{1, 0, 1},
	{2, 5, 3},
	{4, 5, 4},
	{5, 5, 0},
	{5, 4, 2},
	{0, 3, 5},
	{2, 4, 6},
	{3, 1, 1},
	{4, 6, 4},
	{0, 0, 4},
	{5, 0, 3},
	{3, 6, 5},
	{5, 0, 5},
	{0, 2, 6},
	{3, 0, 3},
	{3, 5, 1},
	{4, 4, 3},
	{3, 1, 4},
	{3, 4, 0},
	{1, 5, 2},
	{5, 2, 1},
	{5, 0, 0},
	{4, 6, 0},
	{0, 3, 5},
	{1, 2, 1},
	{5, 4, 0},
	{5, 0, 1},
	{1, 2, 3},
	{3, 4, 4},
	{3, 4, 5},
	{2, 3, 0},
	{2, 3, 1},
	{3, 0, 3},
	{6, 1, 2},
	{1, 2, 2},
	{0, 0, 6},
	{1, 2, 2},
	{0, 1, 5},
	{3, 4, 6},
	{4, 3, 5},
	{2, 5, 2},
	{3, 5, 3},
	{4, 1, 5},
	{1, 4, 2},
	{1, 5, 4},
	{0, 0, 5},
	{2, 3, 0},
	{2, 3, 1},
	{0, 0, 4},
	{0, 5, 2},
	{6, 5, 2},
	{4, 3, 2},
	{5, 2, 2},
	{4, 5, 6},
	{3, 1, 1},
	{1, 3, 0},
	{1, 4, 4},
	{3, 4, 5},
	{2, 5, 0},
	{5, 4, 5},
	{6, 6, 1},
	{1, 3, 5},
	{4, 6, 0},
	{0, 3, 4},
	{0, 1, 0},
	{1, 2, 6},
	{3, 3, 5},
	{2, 0, 3},
	{5, 4, 4},
	{2, 4, 3},
	{2, 2, 1},
	{0, 2, 3},
	{1, 4, 2},
	{4, 0, 0},
	{1, 3, 1},
	{1, 5, 0},
	{2, 0, 5},
	{0, 0, 3},
	{3, 2, 3},
	{4, 4, 2},
	{4, 4, 0},
	{3, 1, 1},
	{1, 1, 1},
	{0, 4, 0},
	{6, 0, 1},
	{2, 1, 5},
	{4, 6, 0},
	{1, 4, 0},
	{4, 3, 4},
	{3, 4, 1},
	{1, 5, 4},
	{5, 1, 4},
	{1, 1, 1},
	{0, 3, 4},
	{5, 4, 1},
	{4, 0, 4},
	{5, 4, 2},
	{5, 3, 0},
	{2, 3, 3},
	{1, 6, 0},
	{2, 2, 1},
	{5, 3, 5},
	{1, 4, 5},
	{0, 4, 4},
	{0, 2, 4},
	{2, 3, 3},
	{5, 4, 2},
	{3, 0, 2},
	{5, 5, 2},
	{1, 2, 2},
	{4, 0, 1},
	{0, 5, 5},
	{6, 3, 1},
	{2, 1, 3},
	{6, 3, 2},
	{2, 4, 5},
	{1, 0, 3},
	{3, 0, 3},
	{1, 5, 4},
	{1, 2, 4},
	{1, 3, 4},
	{2, 2, 1},
	{3, 1, 4},
	{5, 4, 5},
	{1, 0, 1},
	{5, 5, 1},
	{0, 3, 1},
	{0, 2, 3},
	{1, 6, 2},
	{2, 3, 5},
	{4, 6, 0},
	{5, 1, 1},
	{4, 3, 5},
	{2, 1, 3},
	{2, 0, 3},
	{5, 5, 5},
	{2, 1, 3},
	{4, 5, 1},
	{6, 0, 3},
	{3, 2, 3},
	{5, 0, 3},
	{3, 1, 2},
	{2, 1, 6},
	{5, 1, 0},
	{2, 4, 4},
	{0, 2, 4},
	{0, 3, 3},
	{1, 0, 1},
	{2, 5, 1},
	{5, 3, 1},
	{1, 2, 5},
	{4, 0, 4},
	{0, 0, 2},
	{5, 2, 6},
	{3, 2, 2},
	{4, 4, 4},
	{0, 4, 2},
	{1, 1, 5},
	{4, 0, 0},
}

// Character alphabets used throughout the message unpacker.
const (
	charsetCallsignHash  = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ/"
	charsetAlphaNum      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsetAlphaNumSpace = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsetAlphaSpace    = " ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsetNumeric       = "0123456789"
	charsetNonStdCall    = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ/"
	charsetFreeText      = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ+-./?"
	charsetTelemetry     = "0123456789ABCDEF"
)

// racSections lists the 84 RAC (Radio Amateurs of Canada) / ARRL
// operating sections used by FieldDay messages, in protocol index order.
var racSections = [84]string{
	"AB", "AK", "AL", "AR", "AZ", "BC", "CO", "CT", "DE", "EB", "EMA", "ENY", "EPA",
	"EWA", "GA", "GTA", "IA", "ID", "IL", "IN", "KS", "KY", "LA", "LAX", "MAR", "MB",
	"MDC", "ME", "MI", "MN", "MO", "MS", "MT", "NC", "ND", "NE", "NFL", "NH", "NL",
	"NLI", "NM", "NNJ", "NNY", "NT", "NTX", "NV", "OH", "OK", "ONE", "ONN", "ONS", "OR",
	"ORG", "PAC", "PR", "QC", "RI", "SB", "SC", "SCV", "SD", "SDG", "SF", "SFL", "SJV",
	"SK", "SNJ", "STX", "SV", "TN", "UT", "VA", "VI", "VT", "WCF", "WI", "WMA", "WNY",
	"WPA", "WTX", "WV", "WWA", "WY", "DX",
}

// statesAndProvinces lists the 65 US state / Canadian province entries
// used by RTTYRU's S13 field when its value is not a serial number. Each
// entry is rendered verbatim (3 characters, space-padded) — unlike
// racSections, the protocol does not trim this field.
var statesAndProvinces = [65]string{
	"AL ", "AK ", "AZ ", "AR ", "CA ", "CO ", "CT ", "DE ", "FL ", "GA ", "HI ", "ID ", "IL ",
	"IN ", "IA ", "KS ", "KY ", "LA ", "ME ", "MD ", "MA ", "MI ", "MN ", "MS ", "MO ", "MT ",
	"NE ", "NV ", "NH ", "NJ ", "NM ", "NY ", "NC ", "ND ", "OH ", "OK ", "OR ", "PA ", "RI ",
	"SC ", "SD ", "TN ", "TX ", "UT ", "VT ", "VA ", "WA ", "WV ", "WI ", "WY ", "NB ", "NS ",
	"QC ", "ON ", "MB ", "SK ", "AB ", "BC ", "NWT", "NF ", "LB ", "NU ", "YT ", "PEI", "DC ",
}
