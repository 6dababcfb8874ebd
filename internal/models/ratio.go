package models

import "fmt"

// Ratio is the original-to-stream frame rate ratio, kept as a reduced
// rational so sample mapping stays exact at any frame count.
type Ratio struct {
	Num int // original frames
	Den int // stream samples
}

// NewRatio reduces originalFPS:streamFPS to lowest terms
func NewRatio(originalFPS, streamFPS int) (Ratio, error) {
	if originalFPS <= 0 || streamFPS <= 0 {
		return Ratio{}, fmt.Errorf("frame rates must be positive, got %d:%d", originalFPS, streamFPS)
	}

	if streamFPS > originalFPS {
		return Ratio{}, fmt.Errorf("stream rate %d exceeds original rate %d", streamFPS, originalFPS)
	}

	g := gcd(originalFPS, streamFPS)
	return Ratio{Num: originalFPS / g, Den: streamFPS / g}, nil
}

// SourceIndex maps stream sample k onto the original frame it was taken from.
// The mapping is floor(k * Num / Den), so it never drifts on non-integer strides.
func (r Ratio) SourceIndex(sampleIndex int) int {
	return sampleIndex * r.Num / r.Den
}

// ScaleCount converts a stream sample count into the original frame count it spans
func (r Ratio) ScaleCount(sampleCount int) int {
	return sampleCount * r.Num / r.Den
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
