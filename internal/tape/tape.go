// Package tape renders a tokenized program image as a Datassette style
// cassette recording in WAV form: square pulses of three lengths, a leader,
// a sync countdown and the data block written twice with per byte parity.
// The encoding follows the ROM loader conventions close enough for pulse
// level tools, it does not aim to be cycle exact.
package tape

import (
	"fmt"
	"io"

	"github.com/youpy/go-wav"
)

// WAV output parameters: mono, 8 bit, 44.1 kHz.
const (
	sampleRate    = 44100
	numChannels   = 1
	bitsPerSample = 8
)

// pulse is one full square wave cycle, measured in samples.
type pulse int

// The three Datassette pulse lengths at 44.1 kHz.
const (
	shortPulse  pulse = 16
	mediumPulse pulse = 24
	longPulse   pulse = 32
)

const (
	leaderPulses  = 1500
	trailerPulses = 80
)

// Write encodes the program image and writes the complete WAV recording.
func Write(w io.Writer, image []byte) error {
	pulses := pulseStream(image)

	numSamples := uint32(0)
	for _, p := range pulses {
		numSamples += uint32(p)
	}

	writer := wav.NewWriter(w, numSamples, numChannels, sampleRate, bitsPerSample)

	high := make([]wav.Sample, 0, int(longPulse)/2)
	low := make([]wav.Sample, 0, int(longPulse)/2)
	for range int(longPulse) / 2 {
		high = append(high, wav.Sample{Values: [2]int{255, 255}})
		low = append(low, wav.Sample{Values: [2]int{0, 0}})
	}

	for _, p := range pulses {
		half := int(p) / 2
		if err := writer.WriteSamples(high[:half]); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
		if err := writer.WriteSamples(low[:half]); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}
	return nil
}

// pulseStream builds the full pulse sequence for an image.
func pulseStream(image []byte) []pulse {
	var pulses []pulse

	appendPulses := func(ps ...pulse) {
		pulses = append(pulses, ps...)
	}
	appendByte := func(b byte) {
		// byte marker
		appendPulses(longPulse, mediumPulse)

		parity := byte(1)
		for bit := range 8 {
			value := b >> bit & 1
			parity ^= value
			if value == 0 {
				appendPulses(shortPulse, mediumPulse)
			} else {
				appendPulses(mediumPulse, shortPulse)
			}
		}
		if parity == 0 {
			appendPulses(shortPulse, mediumPulse)
		} else {
			appendPulses(mediumPulse, shortPulse)
		}
	}
	appendBlock := func(countdownHigh bool) {
		countdown := byte(0x09)
		if countdownHigh {
			countdown = 0x89
		}
		for i := range byte(9) {
			appendByte(countdown - i)
		}

		check := byte(0)
		for _, b := range image {
			appendByte(b)
			check ^= b
		}
		appendByte(check)

		// end of data marker
		appendPulses(longPulse, shortPulse)
	}

	for range leaderPulses {
		appendPulses(shortPulse)
	}
	appendBlock(true)
	appendBlock(false)
	for range trailerPulses {
		appendPulses(shortPulse)
	}

	return pulses
}
