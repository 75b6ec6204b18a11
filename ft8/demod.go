package ft8

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

/*
 * Streaming demodulator: turns a stream of PCM samples into candidate
 * 174-bit soft codewords. Grounded on the original decoder's ft8.rs —
 * a sliding, 75%-overlapping FFT window builds up a rolling per-bin
 * power history; once a full 79-symbol transmission's worth of frames
 * has accumulated, every base frequency bin in range is demodulated
 * into soft bits and handed off for LDPC decoding and CRC checking.
 */

const (
	costasSymbols    = 7
	totalSymbols     = 79
	dataSymbols      = 58 // 79 - 3*7
	bitsPerSymbol    = 3
	tonesPerSymbol   = 8
	binsPerTone      = 2 // 6.25 Hz tone spacing at a 3.125 Hz bin width
)

// grayMap is the FT8 tone-to-symbol Gray code: grayMap[tone] gives the
// 3-bit value (b2 b1 b0) that tone encodes.
var grayMap = [tonesPerSymbol]int{0, 1, 3, 2, 5, 6, 4, 7}

// costasOffsets are the starting symbol indices of the three 7-symbol
// Costas sync blocks within a 79-symbol transmission.
var costasOffsets = [3]int{0, 36, 72}

// dataSymbolPositions are the 58 symbol indices, in order, that carry
// payload data rather than Costas sync tones.
var dataSymbolPositions = buildDataSymbolPositions()

func buildDataSymbolPositions() [dataSymbols]int {
	isCostas := make(map[int]bool, 21)
	for _, base := range costasOffsets {
		for i := 0; i < costasSymbols; i++ {
			isCostas[base+i] = true
		}
	}
	var out [dataSymbols]int
	n := 0
	for i := 0; i < totalSymbols; i++ {
		if !isCostas[i] {
			out[n] = i
			n++
		}
	}
	return out
}

func sigmoid(x float32) float32 {
	return 1.0 / (1.0 + float32(math.Exp(float64(-x))))
}

// candidate is a demodulated 174-bit soft codeword awaiting LDPC decode.
// signalSum and noiseSum are the per-symbol winning-tone and
// other-tone log powers summed over the 58 data symbols; the decoder
// facade folds them into an SNR only once LDPC and CRC have both
// succeeded, since computing it earlier would cost wasted work on
// candidates that never pan out.
type candidate struct {
	bits         [ldpcN]float32
	signalSum    float64
	noiseSum     float64
	freqHz       uint32
	timeOffsetMs int64
}

// demodulator maintains the rolling FFT frame history for one decode pass.
type demodulator struct {
	sampleRate int
	fftSize    int
	hop        int
	binWidthHz float64
	fromBin    int
	toBin      int

	fft    *fourier.FFT
	window []float64

	pending []float64
	frames  [][]float64 // rolling log-power spectra, oldest first
	total   int64        // total samples consumed, for time-offset calc

	framesPerTransmission int
}

func newDemodulator(sampleRate int, fromFreqHz, toFreqHz float64) *demodulator {
	fftSize := int(math.Round(float64(sampleRate) * 2 * 1920 / 12000))
	hop := fftSize / 4
	binWidth := float64(sampleRate) / float64(fftSize)

	window := make([]float64, fftSize)
	for n := 0; n < fftSize; n++ {
		window[n] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(n)/float64(fftSize-1))
	}

	symbolSamples := fftSize / 2
	framesPerSymbol := symbolSamples / hop
	framesPerTransmission := totalSymbols * framesPerSymbol

	return &demodulator{
		sampleRate:            sampleRate,
		fftSize:               fftSize,
		hop:                   hop,
		binWidthHz:            binWidth,
		fromBin:               int(fromFreqHz / binWidth),
		toBin:                 int(toFreqHz / binWidth),
		fft:                   fourier.NewFFT(fftSize),
		window:                window,
		framesPerTransmission: framesPerTransmission,
	}
}

// feed appends samples to the pending buffer and processes every full
// fftSize-long window it can, advancing one hop between windows and
// returning any candidates found along the way.
func (d *demodulator) feed(samples []float64) []candidate {
	d.pending = append(d.pending, samples...)
	var out []candidate
	for len(d.pending) >= d.fftSize {
		out = append(out, d.processFrame(d.pending[:d.fftSize])...)
		d.pending = d.pending[d.hop:]
		d.total += int64(d.hop)
	}
	return out
}

func (d *demodulator) processFrame(frame []float64) []candidate {
	windowed := make([]float64, d.fftSize)
	for i, s := range frame {
		windowed[i] = s * d.window[i]
	}
	spectrum := d.fft.Coefficients(nil, windowed)

	logPower := make([]float64, len(spectrum))
	for i, c := range spectrum {
		power := real(c)*real(c) + imag(c)*imag(c)
		logPower[i] = 10 * math.Log10(power+1e-12)
	}

	d.frames = append(d.frames, logPower)
	if len(d.frames) > d.framesPerTransmission {
		d.frames = d.frames[len(d.frames)-d.framesPerTransmission:]
	}
	if len(d.frames) < d.framesPerTransmission {
		return nil
	}
	return d.scanCandidates()
}

// symbolPower returns the log power of tone in the given symbol column,
// at base frequency bin baseBin.
func (d *demodulator) symbolPower(baseBin, symbolIdx, tone int) float64 {
	symbolSamples := d.fftSize / 2
	frameIdx := symbolIdx * symbolSamples / d.hop
	if frameIdx >= len(d.frames) {
		frameIdx = len(d.frames) - 1
	}
	bin := baseBin + tone*binsPerTone
	spectrum := d.frames[frameIdx]
	if bin < 0 || bin >= len(spectrum) {
		return -1e12
	}
	return spectrum[bin]
}

// scanCandidates attempts demodulation at every bin in the configured
// band; LDPC convergence and the CRC gate are what reject the bins
// that don't carry a real transmission.
func (d *demodulator) scanCandidates() []candidate {
	var out []candidate
	for j := d.fromBin; j < d.toBin; j++ {
		out = append(out, d.demodulateAt(j))
	}
	return out
}

func (d *demodulator) demodulateAt(baseBin int) candidate {
	var bits [ldpcN]float32
	bitIdx := 0
	var signalSum, noiseSum float64
	for _, sym := range dataSymbolPositions {
		powers := [tonesPerSymbol]float64{}
		for t := 0; t < tonesPerSymbol; t++ {
			powers[t] = d.symbolPower(baseBin, sym, t)
		}

		winner := 0
		for t := 1; t < tonesPerSymbol; t++ {
			if powers[t] > powers[winner] {
				winner = t
			}
		}
		var otherSum float64
		for t := 0; t < tonesPerSymbol; t++ {
			if t != winner {
				otherSum += powers[t]
			}
		}
		signalSum += powers[winner]
		noiseSum += otherSum / float64(tonesPerSymbol-1)

		for plane := 0; plane < bitsPerSymbol; plane++ {
			shift := bitsPerSymbol - 1 - plane
			max1, max0 := math.Inf(-1), math.Inf(-1)
			for t := 0; t < tonesPerSymbol; t++ {
				bit := (grayMap[t] >> shift) & 1
				if bit == 1 {
					if powers[t] > max1 {
						max1 = powers[t]
					}
				} else if powers[t] > max0 {
					max0 = powers[t]
				}
			}
			bits[bitIdx] = sigmoid(float32(max1 - max0))
			bitIdx++
		}
	}

	freqHz := uint32(baseBin) * 625 / 200
	timeOffsetMs := (d.total - int64(71*d.fftSize/2)) * 1000 / int64(d.sampleRate)

	return candidate{bits: bits, signalSum: signalSum, noiseSum: noiseSum, freqHz: freqHz, timeOffsetMs: timeOffsetMs}
}

// snr folds a candidate's summed winning-tone and other-tone log
// powers into a single decibel figure, per the reference SNR formula.
func (c candidate) snr() float32 {
	return float32(10 * math.Log10((c.signalSum-c.noiseSum)/c.noiseSum))
}
