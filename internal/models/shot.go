package models

// Outcome is the curated result of a shot
type Outcome string

const (
	OutcomeGoal Outcome = "goal"
	OutcomeSave Outcome = "save"
	OutcomeMiss Outcome = "miss"
)

// Valid reports whether the outcome is one of the known results
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeGoal, OutcomeSave, OutcomeMiss:
		return true
	}
	return false
}

// ShotStatus places a frame relative to the shot windows around it
type ShotStatus string

const (
	StatusIdle       ShotStatus = "idle"
	StatusPreShot    ShotStatus = "pre_shot"
	StatusInFlight   ShotStatus = "in_flight"
	StatusPostResult ShotStatus = "post_result"
)

// ShotEvent is one hand-curated shot: a closed frame interval plus its result.
// ID is the 1-based position in the validated table, UID a deterministic
// fingerprint of the event's content.
type ShotEvent struct {
	ID         int     `json:"id"`
	UID        string  `json:"uid"`
	StartFrame int     `json:"start_frame"`
	EndFrame   int     `json:"end_frame"`
	Outcome    Outcome `json:"outcome"`
	TargetZone string  `json:"target_zone"`
	Foot       string  `json:"foot,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// Covers reports whether the frame lies inside the event's closed interval
func (e ShotEvent) Covers(frameIndex int) bool {
	return frameIndex >= e.StartFrame && frameIndex <= e.EndFrame
}

// Span returns the event length in frames (end minus start)
func (e ShotEvent) Span() int {
	return e.EndFrame - e.StartFrame
}

// Phase maps the frame onto the shot's progress: 0.0 at the start frame,
// 1.0 at the end frame, clamped outside the interval.
func (e ShotEvent) Phase(frameIndex int) float64 {
	if frameIndex <= e.StartFrame {
		return 0.0
	}
	if frameIndex >= e.EndFrame {
		return 1.0
	}
	return float64(frameIndex-e.StartFrame) / float64(e.Span())
}

// ShotArtifact mirrors the hand-authored shot definitions JSON
type ShotArtifact struct {
	Shots []ShotArtifactEvent `json:"shots"`
}

type ShotArtifactEvent struct {
	StartFrame int    `json:"start_frame"`
	EndFrame   int    `json:"end_frame"`
	Outcome    string `json:"outcome"`
	TargetZone string `json:"target_zone"`
	Foot       string `json:"foot,omitempty"`
	Notes      string `json:"notes,omitempty"`
}
