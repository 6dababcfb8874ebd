package streams

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
)

func ratio30to12(t *testing.T) models.Ratio {
	t.Helper()
	r, err := models.NewRatio(30, 12)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestReadDescriptionArtifactMissingFile(t *testing.T) {
	_, err := ReadDescriptionArtifact(filepath.Join(t.TempDir(), "nope.json"))

	var loadErr *models.DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("got %v, want *models.DataLoadError", err)
	}
	if loadErr.Artifact != "descriptions" {
		t.Errorf("artifact = %q, want descriptions", loadErr.Artifact)
	}
}

func TestReadDescriptionArtifactRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descriptions.json")
	body := `{
		"video_info": {"fps": 30, "frame_count": 660},
		"frames": [
			{"frame_number": 0, "action_description": "Player approaches the ball"},
			{"frame_number": 1, "action_description": "Plant foot lands", "kick_analysis": {"is_kick": true, "foot_part": "instep", "comment": "good contact"}}
		]
	}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	art, err := ReadDescriptionArtifact(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(art.Frames) != 2 {
		t.Fatalf("decoded %d frames, want 2", len(art.Frames))
	}
	if art.Frames[1].Kick == nil || !art.Frames[1].Kick.IsKick {
		t.Error("kick analysis lost in decode")
	}
}

func TestNewDescriptionStreamMapsSamples(t *testing.T) {
	art := &models.DescriptionArtifact{
		Frames: []models.DescriptionArtifactFrame{
			{FrameNumber: 0, Description: "approach"},
			{FrameNumber: 1, Description: "plant"},
			{FrameNumber: 2, Description: "strike"},
		},
	}

	// 30:12 reduces to 5:2, so samples 0, 1, 2 land on frames 0, 2, 5.
	s := NewDescriptionStream(art, ratio30to12(t), 660)

	if s.Samples != 3 || s.Dropped != 0 {
		t.Fatalf("kept %d dropped %d, want 3 and 0", s.Samples, s.Dropped)
	}

	for frame, want := range map[int]string{0: "approach", 2: "plant", 5: "strike"} {
		d := s.DescriptionAt(frame)
		if d == nil {
			t.Fatalf("frame %d: no direct sample", frame)
		}
		if d.Text != want {
			t.Errorf("frame %d: text = %q, want %q", frame, d.Text, want)
		}
		if d.SourceFrame != frame {
			t.Errorf("frame %d: source frame = %d", frame, d.SourceFrame)
		}
	}

	if d := s.DescriptionAt(3); d != nil {
		t.Errorf("frame 3 reported a direct sample: %+v", d)
	}
}

func TestNewDescriptionStreamDropsNoise(t *testing.T) {
	art := &models.DescriptionArtifact{
		Frames: []models.DescriptionArtifactFrame{
			{FrameNumber: 0, Description: "   "},                // blank text
			{FrameNumber: 400, Description: "way past the end"}, // frame 1000
			{FrameNumber: 2, Description: "strike"},
		},
	}

	s := NewDescriptionStream(art, ratio30to12(t), 660)

	if s.Samples != 1 || s.Dropped != 2 {
		t.Fatalf("kept %d dropped %d, want 1 and 2", s.Samples, s.Dropped)
	}
	if d := s.DescriptionAt(5); d == nil || d.Text != "strike" {
		t.Error("surviving sample missing at frame 5")
	}
}

func TestNewDescriptionStreamTrimsText(t *testing.T) {
	art := &models.DescriptionArtifact{
		Frames: []models.DescriptionArtifactFrame{
			{FrameNumber: 0, Description: "  run up begins  "},
		},
	}

	s := NewDescriptionStream(art, ratio30to12(t), 660)

	if d := s.DescriptionAt(0); d == nil || d.Text != "run up begins" {
		t.Errorf("text not trimmed: %+v", s.DescriptionAt(0))
	}
}

func TestNewDescriptionStreamKeepsKickAnalysis(t *testing.T) {
	art := &models.DescriptionArtifact{
		Frames: []models.DescriptionArtifactFrame{
			{
				FrameNumber: 1,
				Description: "ball struck with the instep",
				Kick:        &models.KickAnalysis{IsKick: true, FootPart: "instep", Comment: "laces through the ball"},
			},
		},
	}

	s := NewDescriptionStream(art, ratio30to12(t), 660)

	d := s.DescriptionAt(2)
	if d == nil || d.Kick == nil {
		t.Fatal("kick analysis dropped")
	}
	if d.Kick.FootPart != "instep" {
		t.Errorf("foot part = %q, want instep", d.Kick.FootPart)
	}
}
