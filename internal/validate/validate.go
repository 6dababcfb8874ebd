package validate

import (
	"errors"
	"fmt"

	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
)

// ValidateMetadata performs final consistency checks on the assembled
// artifact before it is written for the renderer
func ValidateMetadata(meta *models.Metadata) error {

	if meta.VideoInfo.TotalFrames <= 0 {
		return errors.New("invalid total frame count")
	}

	if err := validateShots(meta); err != nil {
		return err
	}

	if err := validateTimeline(meta); err != nil {
		return err
	}

	if err := validateCaptions(meta); err != nil {
		return err
	}

	if err := validateSummary(meta); err != nil {
		return err
	}

	return nil
}

// validateShots ensures the embedded shot table is ordered and in bounds
func validateShots(meta *models.Metadata) error {

	lastEnd := -1

	for i, e := range meta.Shots {

		if e.ID != i+1 {
			return fmt.Errorf("shot %d has id %d, ids must be sequential", i, e.ID)
		}

		if e.UID == "" {
			return fmt.Errorf("shot %d has no uid", e.ID)
		}

		if !e.Outcome.Valid() {
			return fmt.Errorf("shot %d has unknown outcome %q", e.ID, e.Outcome)
		}

		if e.StartFrame < 0 || e.StartFrame >= e.EndFrame {
			return fmt.Errorf("shot %d has invalid frame range [%d, %d]", e.ID, e.StartFrame, e.EndFrame)
		}

		if e.EndFrame >= meta.VideoInfo.TotalFrames {
			return fmt.Errorf("shot %d exceeds video bounds", e.ID)
		}

		if e.StartFrame <= lastEnd {
			return fmt.Errorf("shot %d overlaps previous shot", e.ID)
		}

		lastEnd = e.EndFrame
	}

	return nil
}

// validateTimeline ensures the record sequence is dense and every reference
// into the shot table holds
func validateTimeline(meta *models.Metadata) error {

	if len(meta.Timeline) != meta.VideoInfo.TotalFrames {
		return fmt.Errorf("timeline has %d records for %d frames",
			len(meta.Timeline), meta.VideoInfo.TotalFrames)
	}

	for i, rec := range meta.Timeline {

		if rec.FrameIndex != i {
			return fmt.Errorf("timeline record %d has frame index %d", i, rec.FrameIndex)
		}

		if rec.ShotID < 0 || rec.ShotID > len(meta.Shots) {
			return fmt.Errorf("timeline record %d references invalid shot %d", i, rec.ShotID)
		}

		if rec.ShotID == 0 && rec.ShotPhase != nil {
			return fmt.Errorf("timeline record %d has a phase outside any shot", i)
		}

		if rec.ShotID != 0 {
			if rec.ShotPhase == nil {
				return fmt.Errorf("timeline record %d is inside shot %d but has no phase", i, rec.ShotID)
			}
			if *rec.ShotPhase < 0 || *rec.ShotPhase > 1 {
				return fmt.Errorf("timeline record %d has phase %f outside [0, 1]", i, *rec.ShotPhase)
			}
			if !meta.Shots[rec.ShotID-1].Covers(i) {
				return fmt.Errorf("timeline record %d claims shot %d which does not cover it", i, rec.ShotID)
			}
		}

		switch rec.Status {
		case models.StatusIdle, models.StatusPreShot, models.StatusInFlight, models.StatusPostResult:
		default:
			return fmt.Errorf("timeline record %d has unknown status %q", i, rec.Status)
		}

		if rec.Status == models.StatusIdle && rec.StatusShotID != 0 {
			return fmt.Errorf("timeline record %d is idle but references shot %d", i, rec.StatusShotID)
		}

		if rec.Status != models.StatusIdle {
			if rec.StatusShotID < 1 || rec.StatusShotID > len(meta.Shots) {
				return fmt.Errorf("timeline record %d status references invalid shot %d", i, rec.StatusShotID)
			}
		}

		if rec.Status == models.StatusInFlight && rec.StatusShotID != rec.ShotID {
			return fmt.Errorf("timeline record %d is in flight for shot %d but covered by shot %d",
				i, rec.StatusShotID, rec.ShotID)
		}

		// Fills only ever look backward
		if rec.Pose != nil && rec.Pose.SourceFrame > i {
			return fmt.Errorf("timeline record %d carries a pose from future frame %d", i, rec.Pose.SourceFrame)
		}
		if rec.Description != nil && rec.Description.SourceFrame > i {
			return fmt.Errorf("timeline record %d carries a description from future frame %d",
				i, rec.Description.SourceFrame)
		}
	}

	return nil
}

// validateCaptions ensures cues of the same kind are ordered and never
// overlap, so the overlay can play them back with a single cursor each
func validateCaptions(meta *models.Metadata) error {

	lastEnd := map[string]int{}

	for i, c := range meta.Captions {

		if c.Kind != "banner" && c.Kind != "detail" {
			return fmt.Errorf("caption %d has unknown kind %q", i, c.Kind)
		}

		if c.Text == "" {
			return fmt.Errorf("caption %d has no text", i)
		}

		if c.StartFrame < 0 || c.StartFrame > c.EndFrame {
			return fmt.Errorf("caption %d has invalid frame range [%d, %d]", i, c.StartFrame, c.EndFrame)
		}

		if c.EndFrame >= meta.VideoInfo.TotalFrames {
			return fmt.Errorf("caption %d exceeds video bounds", i)
		}

		if prev, seen := lastEnd[c.Kind]; seen && c.StartFrame <= prev {
			return fmt.Errorf("caption %d overlaps the previous %s cue", i, c.Kind)
		}

		lastEnd[c.Kind] = c.EndFrame
	}

	return nil
}

// validateSummary ensures the aggregates match the data they describe
func validateSummary(meta *models.Metadata) error {

	s := meta.Summary

	if s.TotalShots != len(meta.Shots) {
		return fmt.Errorf("summary counts %d shots, table has %d", s.TotalShots, len(meta.Shots))
	}

	if s.Goals+s.Saves+s.Misses != s.TotalShots {
		return fmt.Errorf("summary outcomes %d+%d+%d do not sum to %d shots",
			s.Goals, s.Saves, s.Misses, s.TotalShots)
	}

	if s.PoseCoverage < 0 || s.PoseCoverage > 1 || s.DescriptionCoverage < 0 || s.DescriptionCoverage > 1 {
		return fmt.Errorf("summary coverage out of [0, 1]: pose %f, description %f",
			s.PoseCoverage, s.DescriptionCoverage)
	}

	if meta.Run.Records != len(meta.Timeline) {
		return fmt.Errorf("run info counts %d records, timeline has %d", meta.Run.Records, len(meta.Timeline))
	}

	if meta.Run.RunID == "" {
		return errors.New("run info has no run id")
	}

	return nil
}
