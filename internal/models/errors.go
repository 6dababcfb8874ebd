package models

import "fmt"

// DataLoadError means an input artifact is missing or unparseable.
// It is fatal: the run aborts before anything is written.
type DataLoadError struct {
	Artifact string // "pose" | "descriptions" | "shots"
	Path     string
	Err      error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("loading %s artifact %q: %v", e.Artifact, e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// InvalidShotEventError means a hand-authored shot definition is malformed.
// It is fatal and names the offending event so the curator can fix it.
type InvalidShotEventError struct {
	ShotID int // 1-based position in the shot table
	Reason string
}

func (e *InvalidShotEventError) Error() string {
	return fmt.Sprintf("shot event %d: %s", e.ShotID, e.Reason)
}

// OutOfRangeSampleError means a direct sample maps to a frame outside the
// configured range. Recoverable: the sample is dropped and counted, the run
// continues.
type OutOfRangeSampleError struct {
	Stream      string
	SampleIndex int
	FrameIndex  int
	TotalFrames int
}

func (e *OutOfRangeSampleError) Error() string {
	return fmt.Sprintf("%s sample %d maps to frame %d, outside [0, %d)",
		e.Stream, e.SampleIndex, e.FrameIndex, e.TotalFrames)
}
