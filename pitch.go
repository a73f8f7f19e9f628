package gensyn

import "math"

// Pitch samples in [-1,1] map log-linearly onto [MinPitchHz, MaxPitchHz], so
// equal steps in the sample are equal musical intervals.
const (
	MinPitchHz = 16.35   // C0
	MaxPitchHz = 7902.08 // B8
)

// PitchToHz converts a pitch sample to a frequency in Hz. Samples outside
// [-1,1] are clamped.
func PitchToHz(p float32) float64 {
	x := (float64(clampf(p, -1, 1)) + 1) / 2
	return MinPitchHz * math.Pow(MaxPitchHz/MinPitchHz, x)
}

// HzToPitch is the inverse of PitchToHz.
func HzToPitch(hz float64) float32 {
	if hz <= MinPitchHz {
		return -1
	}
	if hz >= MaxPitchHz {
		return 1
	}
	return float32(2*math.Log(hz/MinPitchHz)/math.Log(MaxPitchHz/MinPitchHz) - 1)
}

// NoteToHz returns the equal-tempered frequency of a MIDI note number, A4 (69)
// being 440 Hz.
func NoteToHz(note uint8) float64 {
	return 440 * math.Pow(2, (float64(note)-69)/12)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
