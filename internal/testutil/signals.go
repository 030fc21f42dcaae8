package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Range returns n evenly spaced values start, start+step, ...
func Range(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// EvokedResponse models a stimulus-locked potential: a damped oscillation
// starting at onset plus a small baseline drift. Values before onset carry
// only the drift.
func EvokedResponse(times []float64, onset, amplitude float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = 0.01 * t / (1 + math.Abs(t))
		if dt := t - onset; dt >= 0 {
			out[i] += amplitude * math.Exp(-dt/8) * math.Sin(2*math.Pi*dt/12)
		}
	}
	return out
}
