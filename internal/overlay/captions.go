package overlay

import (
	"fmt"

	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
)

const (
	ToneWarmup = "warmup"
	ToneLive   = "live"
	ToneInfo   = "info"
)

// BuildCaptions run-length encodes the fused status columns into render-ready
// overlay cues. Banner cues track the window status, detail cues hold the
// authored context for the whole stretch a shot owns.
func BuildCaptions(records []models.TimelineRecord, events []models.ShotEvent) []models.Caption {
	captions := bannerCaptions(records, events)
	return append(captions, detailCaptions(records, events)...)
}

// bannerCaptions emits one cue per unbroken (status, shot) run. Idle frames
// carry no banner.
func bannerCaptions(records []models.TimelineRecord, events []models.ShotEvent) []models.Caption {
	var captions []models.Caption

	runStart := -1
	var runStatus models.ShotStatus
	runShot := 0

	flush := func(endFrame int) {
		if runStart < 0 || runStatus == models.StatusIdle {
			return
		}
		e := eventByID(events, runShot)
		if e == nil {
			return
		}
		captions = append(captions, models.Caption{
			Kind:       "banner",
			StartFrame: runStart,
			EndFrame:   endFrame,
			Text:       bannerText(runStatus, *e),
			Tone:       bannerTone(runStatus, *e),
		})
	}

	for i, rec := range records {
		if rec.Status == runStatus && rec.StatusShotID == runShot && runStart >= 0 {
			continue
		}
		flush(i - 1)
		runStart, runStatus, runShot = i, rec.Status, rec.StatusShotID
	}
	flush(len(records) - 1)

	return captions
}

// detailCaptions emits one cue per shot spanning every frame the shot owns,
// buildup through result, holding the curator's zone and notes.
func detailCaptions(records []models.TimelineRecord, events []models.ShotEvent) []models.Caption {
	var captions []models.Caption

	runStart := -1
	runShot := 0

	flush := func(endFrame int) {
		if runStart < 0 || runShot == 0 {
			return
		}
		e := eventByID(events, runShot)
		if e == nil {
			return
		}
		text := detailText(*e)
		if text == "" {
			return
		}
		captions = append(captions, models.Caption{
			Kind:       "detail",
			StartFrame: runStart,
			EndFrame:   endFrame,
			Text:       text,
			Tone:       ToneInfo,
		})
	}

	for i, rec := range records {
		if rec.StatusShotID == runShot && runStart >= 0 {
			continue
		}
		flush(i - 1)
		runStart, runShot = i, rec.StatusShotID
	}
	flush(len(records) - 1)

	return captions
}

// bannerText renders the big status line the overlay shows for a run
func bannerText(status models.ShotStatus, e models.ShotEvent) string {
	switch status {

	case models.StatusPreShot:
		return fmt.Sprintf("SHOT #%d PREPARING...", e.ID)

	case models.StatusInFlight:
		return fmt.Sprintf("SHOT #%d IN PROGRESS", e.ID)

	case models.StatusPostResult:
		switch e.Outcome {
		case models.OutcomeGoal:
			return fmt.Sprintf("SHOT #%d: GOAL!", e.ID)
		case models.OutcomeSave:
			return fmt.Sprintf("SHOT #%d: SAVED!", e.ID)
		default:
			return fmt.Sprintf("SHOT #%d: MISSED!", e.ID)
		}
	}

	return ""
}

// bannerTone picks the styling bucket: warmup before the kick, live during,
// then the outcome itself colors the result banner.
func bannerTone(status models.ShotStatus, e models.ShotEvent) string {
	switch status {
	case models.StatusPreShot:
		return ToneWarmup
	case models.StatusInFlight:
		return ToneLive
	case models.StatusPostResult:
		return string(e.Outcome)
	}
	return ToneInfo
}

// detailText joins the authored target zone and notes, either may be empty
func detailText(e models.ShotEvent) string {
	switch {
	case e.TargetZone != "" && e.Notes != "":
		return e.TargetZone + " - " + e.Notes
	case e.TargetZone != "":
		return e.TargetZone
	default:
		return e.Notes
	}
}

// eventByID resolves a 1-based shot id against the validated table
func eventByID(events []models.ShotEvent, id int) *models.ShotEvent {
	if id < 1 || id > len(events) {
		return nil
	}
	return &events[id-1]
}
