package overlay

import (
	"testing"

	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
)

// statusRecords expands a compact (status, shotID, count) script into records
func statusRecords(script []struct {
	status models.ShotStatus
	shotID int
	count  int
}) []models.TimelineRecord {
	var records []models.TimelineRecord
	frame := 0
	for _, step := range script {
		for i := 0; i < step.count; i++ {
			records = append(records, models.TimelineRecord{
				FrameIndex:   frame,
				Status:       step.status,
				StatusShotID: step.shotID,
			})
			frame++
		}
	}
	return records
}

func TestBuildCaptionsSingleShot(t *testing.T) {
	events := []models.ShotEvent{
		{ID: 1, StartFrame: 4, EndFrame: 6, Outcome: models.OutcomeGoal, TargetZone: "top left", Notes: "good curl"},
	}
	records := statusRecords([]struct {
		status models.ShotStatus
		shotID int
		count  int
	}{
		{models.StatusIdle, 0, 2},
		{models.StatusPreShot, 1, 2},
		{models.StatusInFlight, 1, 3},
		{models.StatusPostResult, 1, 2},
		{models.StatusIdle, 0, 3},
	})

	captions := BuildCaptions(records, events)

	want := []models.Caption{
		{Kind: "banner", StartFrame: 2, EndFrame: 3, Text: "SHOT #1 PREPARING...", Tone: ToneWarmup},
		{Kind: "banner", StartFrame: 4, EndFrame: 6, Text: "SHOT #1 IN PROGRESS", Tone: ToneLive},
		{Kind: "banner", StartFrame: 7, EndFrame: 8, Text: "SHOT #1: GOAL!", Tone: "goal"},
		{Kind: "detail", StartFrame: 2, EndFrame: 8, Text: "top left - good curl", Tone: ToneInfo},
	}

	if len(captions) != len(want) {
		t.Fatalf("got %d captions, want %d: %+v", len(captions), len(want), captions)
	}
	for i, w := range want {
		if captions[i] != w {
			t.Errorf("caption %d = %+v, want %+v", i, captions[i], w)
		}
	}
}

func TestBuildCaptionsOutcomeBanners(t *testing.T) {
	tests := []struct {
		outcome models.Outcome
		text    string
	}{
		{models.OutcomeGoal, "SHOT #1: GOAL!"},
		{models.OutcomeSave, "SHOT #1: SAVED!"},
		{models.OutcomeMiss, "SHOT #1: MISSED!"},
	}

	for _, tt := range tests {
		events := []models.ShotEvent{{ID: 1, Outcome: tt.outcome, TargetZone: "center"}}
		records := statusRecords([]struct {
			status models.ShotStatus
			shotID int
			count  int
		}{
			{models.StatusPostResult, 1, 2},
		})

		captions := BuildCaptions(records, events)
		if len(captions) == 0 {
			t.Fatalf("%s: no captions", tt.outcome)
		}
		if captions[0].Text != tt.text || captions[0].Tone != string(tt.outcome) {
			t.Errorf("%s: banner = %q/%q, want %q/%q",
				tt.outcome, captions[0].Text, captions[0].Tone, tt.text, tt.outcome)
		}
	}
}

func TestBuildCaptionsIdleOnly(t *testing.T) {
	records := statusRecords([]struct {
		status models.ShotStatus
		shotID int
		count  int
	}{
		{models.StatusIdle, 0, 10},
	})

	if captions := BuildCaptions(records, nil); len(captions) != 0 {
		t.Errorf("idle timeline produced captions: %+v", captions)
	}
}

func TestBuildCaptionsBackToBackShots(t *testing.T) {
	events := []models.ShotEvent{
		{ID: 1, StartFrame: 0, EndFrame: 2, Outcome: models.OutcomeSave, TargetZone: "low"},
		{ID: 2, StartFrame: 8, EndFrame: 10, Outcome: models.OutcomeGoal, TargetZone: "high"},
	}

	// Shot 1's result window runs straight into shot 2's buildup.
	records := statusRecords([]struct {
		status models.ShotStatus
		shotID int
		count  int
	}{
		{models.StatusInFlight, 1, 3},
		{models.StatusPostResult, 1, 3},
		{models.StatusPreShot, 2, 2},
		{models.StatusInFlight, 2, 3},
	})

	captions := BuildCaptions(records, events)

	var details []models.Caption
	for _, c := range captions {
		if c.Kind == "detail" {
			details = append(details, c)
		}
	}

	if len(details) != 2 {
		t.Fatalf("got %d detail cues, want 2: %+v", len(details), details)
	}
	if details[0].EndFrame != 5 || details[1].StartFrame != 6 {
		t.Errorf("detail cues not split at the ownership change: %+v", details)
	}
	if details[0].Text != "low" || details[1].Text != "high" {
		t.Errorf("detail texts = %q, %q, want low, high", details[0].Text, details[1].Text)
	}
}

func TestBuildCaptionsSkipsEmptyDetail(t *testing.T) {
	events := []models.ShotEvent{{ID: 1, Outcome: models.OutcomeMiss}}
	records := statusRecords([]struct {
		status models.ShotStatus
		shotID int
		count  int
	}{
		{models.StatusInFlight, 1, 3},
	})

	for _, c := range BuildCaptions(records, events) {
		if c.Kind == "detail" {
			t.Errorf("detail cue emitted with nothing to say: %+v", c)
		}
	}
}
