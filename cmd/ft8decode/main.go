// Command ft8decode decodes FT8 transmissions from a mono 16-bit PCM
// wav file and prints each recovered message, one per line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/wav"

	"github.com/cwsl/ft8core/ft8"
)

func main() {
	sampleRate := flag.Int("rate", 12000, "expected PCM sample rate in Hz")
	fromFreq := flag.Float64("from", 0, "lower bound of the scanned audio band, in Hz")
	toFreq := flag.Float64("to", 3000, "upper bound of the scanned audio band, in Hz")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ft8decode <wav-file>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("[ft8decode] opening input: %v", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		log.Fatalf("[ft8decode] reading wav: %v", err)
	}

	cfg := ft8.DefaultConfig()
	cfg.SampleRate = *sampleRate
	cfg.FromFreq = *fromFreq
	cfg.ToFreq = *toFreq
	ft8dec := ft8.NewDecoder(cfg)

	samples := make([]float64, len(buf.Data))
	maxAmp := float64(int(1) << (buf.SourceBitDepth - 1))
	for i, s := range buf.Data {
		samples[i] = float64(s) / maxAmp
	}

	for _, msg := range ft8dec.Decode(samples) {
		fmt.Println(msg.String())
	}
}
