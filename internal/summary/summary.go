package summary

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
)

// Build aggregates the validated shot table and the fused timeline into the
// session report the coach panel shows
func Build(originalFPS int, events []models.ShotEvent, records []models.TimelineRecord) models.SummaryStats {
	s := models.SummaryStats{TotalShots: len(events)}

	durations := make([]float64, 0, len(events))
	for _, e := range events {
		switch e.Outcome {
		case models.OutcomeGoal:
			s.Goals++
		case models.OutcomeSave:
			s.Saves++
		case models.OutcomeMiss:
			s.Misses++
		}
		durations = append(durations, float64(e.Span())/float64(originalFPS))
	}

	if len(durations) > 0 {
		s.MeanShotDurationSec = stat.Mean(durations, nil)
	}
	if len(durations) > 1 {
		// StdDev needs at least two values, a single shot has no spread
		s.StdDevShotDurationSec = stat.StdDev(durations, nil)
	}

	var confidences []float64
	poseFrames := 0
	describedFrames := 0

	for _, rec := range records {
		if rec.Pose != nil {
			poseFrames++

			// Only fresh observations count toward confidence, a carried
			// sample would be weighed once per frame it covers.
			if rec.Pose.SourceFrame == rec.FrameIndex {
				for _, name := range models.KeypointNames {
					if kp, ok := rec.Pose.Joints[name]; ok {
						confidences = append(confidences, kp.Confidence)
					}
				}
			}
		}
		if rec.Description != nil {
			describedFrames++
		}
	}

	if len(records) > 0 {
		s.PoseCoverage = float64(poseFrames) / float64(len(records))
		s.DescriptionCoverage = float64(describedFrames) / float64(len(records))
	}

	if len(confidences) > 0 {
		s.MeanKeypointConfidence = stat.Mean(confidences, nil)
		s.MinKeypointConfidence = floats.Min(confidences)
		s.MaxKeypointConfidence = floats.Max(confidences)
	}

	return s
}
