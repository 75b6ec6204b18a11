package ft8

/*
 * Belief-propagation decoder for the FT8 (174,91) LDPC code.
 *
 * Operates entirely in probability space (unlike the log-likelihood/tanh
 * formulation used elsewhere): messages are probabilities in [0,1] and
 * the check-node update relies on the leave-one-out product routine in
 * bits.go. Grounded on the original decoder's ldpc.rs.
 */

const (
	ldpcN = 174
	ldpcK = 91
	ldpcM = 83
)

// ldpcDecode runs up to maxIters rounds of belief propagation over bits,
// a 174-entry vector of channel priors (probability the bit is 1). It
// returns the decoded 174-bit codeword on the first iteration whose
// parity check passes. An all-zero codeword on any iteration, or
// exhausting maxIters without a clean parity check, is reported as
// failure.
func ldpcDecode(bits [ldpcN]float32, maxIters int) ([ldpcN]bool, bool) {
	var v [ldpcN][3]float32
	var c [ldpcM][7]float32
	var out [ldpcN]bool

	for i := 0; i < ldpcN; i++ {
		v[i][0] = bits[i]
		v[i][1] = bits[i]
		v[i][2] = bits[i]
	}

	for iter := 0; iter < maxIters; iter++ {
		for check := 0; check < ldpcM; check++ {
			var mults [7]float32
			degree7 := ldpcNM[check][6] != absentVariable
			n := 6
			if degree7 {
				n = 7
			}
			for i := 0; i < n; i++ {
				vr := ldpcNM[check][i]
				slot := ldpcNMC[check][i]
				mults[i] = 1.0 - 2.0*v[vr][slot]
			}
			var result [7]float32
			if degree7 {
				result = leaveOneOutProduct7(mults)
			} else {
				result = leaveOneOutProduct6(mults)
			}
			for i := 0; i < n; i++ {
				c[check][i] = (1.0 - result[i]) / 2.0
			}
		}

		for vr := 0; vr < ldpcN; vr++ {
			for checkID := 0; checkID < 3; checkID++ {
				is1 := float32(1.0)
				is0 := float32(1.0)
				for other := 0; other < 3; other++ {
					if other == checkID {
						continue
					}
					check2 := ldpcMN[vr][other]
					varID := ldpcMNV[vr][other]
					is1 *= c[check2][varID]
					is0 *= 1.0 - c[check2][varID]
				}
				is1 *= bits[vr]
				is0 *= 1.0 - bits[vr]
				v[vr][checkID] = is1 / (is0 + is1 + 1e-12)
			}
		}

		for i := 0; i < ldpcN; i++ {
			p0, p1, p2 := v[i][0], v[i][1], v[i][2]
			is1 := bits[i] * p0 * p1 * p2
			is0 := (1.0 - bits[i]) * (1.0 - p0) * (1.0 - p1) * (1.0 - p2)
			out[i] = is1 > is0
		}

		if allZero(out) {
			return out, false
		}
		if ldpcParityOK(out) {
			return out, true
		}
	}
	return out, false
}

// ldpcParityOK reports whether every one of the 83 check rows XORs to
// zero over codeword.
func ldpcParityOK(codeword [ldpcN]bool) bool {
	for check := 0; check < ldpcM; check++ {
		var x bool
		n := 6
		if ldpcNM[check][6] != absentVariable {
			n = 7
		}
		for i := 0; i < n; i++ {
			x = x != codeword[ldpcNM[check][i]]
		}
		if x {
			return false
		}
	}
	return true
}
