package metadata

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AI4Exercise/Coach4FreeKick/internal/config"
	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
	"github.com/AI4Exercise/Coach4FreeKick/internal/shots"
	"github.com/AI4Exercise/Coach4FreeKick/internal/streams"
	"github.com/AI4Exercise/Coach4FreeKick/internal/timeline"
)

func fixtureConfig() config.Config {
	return config.Config{
		OriginalFPS:    30,
		PoseFPS:        10,
		DescriptionFPS: 15,
		TotalFrames:    12,
		LeadInFrames:   2,
		LeadOutFrames:  2,
	}
}

// fixtureMetadata runs a miniature end to end fusion and assembles the artifact
func fixtureMetadata(t *testing.T, cfg config.Config) *models.Metadata {
	t.Helper()

	poseRatio, err := cfg.PoseRatio()
	if err != nil {
		t.Fatal(err)
	}
	descRatio, err := cfg.DescriptionRatio()
	if err != nil {
		t.Fatal(err)
	}

	joints := make([][]float64, len(models.KeypointNames))
	for i := range joints {
		joints[i] = []float64{5, 6, 0.9}
	}

	poseArt := &models.PoseArtifact{
		VideoInfo: models.SourceVideoInfo{FPS: 30, Width: 1920, Height: 1080, FrameCount: 12},
		Frames: []models.PoseArtifactFrame{
			{FrameNumber: 0, PoseEstimation: [][][]float64{joints}},
		},
	}
	descArt := &models.DescriptionArtifact{
		Frames: []models.DescriptionArtifactFrame{
			{FrameNumber: 1, Description: "run up begins"},
		},
	}
	shotArt := &models.ShotArtifact{
		Shots: []models.ShotArtifactEvent{
			{StartFrame: 4, EndFrame: 6, Outcome: "goal", TargetZone: "top left"},
		},
	}

	table, err := shots.NewTable(shotArt, cfg.TotalFrames)
	if err != nil {
		t.Fatal(err)
	}

	poses := streams.NewPoseStream(poseArt, poseRatio, cfg.TotalFrames)
	descriptions := streams.NewDescriptionStream(descArt, descRatio, cfg.TotalFrames)
	records := timeline.NewFuser(cfg, poses, descriptions, table).Run()

	summary := models.SummaryStats{TotalShots: 1, Goals: 1}
	return Build(cfg, poses, descriptions, table, records, summary, nil)
}

func TestBuildPopulatesArtifact(t *testing.T) {
	meta := fixtureMetadata(t, fixtureConfig())

	if meta.VideoInfo.TotalFrames != 12 || meta.VideoInfo.OriginalFPS != 30 {
		t.Errorf("video info = %+v", meta.VideoInfo)
	}
	if meta.VideoInfo.Width != 1920 || meta.VideoInfo.Height != 1080 {
		t.Errorf("source dimensions lost: %+v", meta.VideoInfo)
	}
	if len(meta.Shots) != 1 || meta.Shots[0].UID == "" {
		t.Errorf("shot table not embedded: %+v", meta.Shots)
	}
	if len(meta.Timeline) != 12 {
		t.Errorf("timeline has %d records, want 12", len(meta.Timeline))
	}
	if meta.Run.PoseSamples != 1 || meta.Run.DescriptionSamples != 1 || meta.Run.Records != 12 {
		t.Errorf("run accounting = %+v", meta.Run)
	}
	if meta.Run.RunID == "" {
		t.Error("run id missing")
	}
}

func TestRunIDDeterministic(t *testing.T) {
	a := fixtureMetadata(t, fixtureConfig())
	b := fixtureMetadata(t, fixtureConfig())

	if a.Run.RunID != b.Run.RunID {
		t.Errorf("identical runs got different ids: %q vs %q", a.Run.RunID, b.Run.RunID)
	}

	cfg := fixtureConfig()
	cfg.LeadInFrames = 3
	c := fixtureMetadata(t, cfg)

	if c.Run.RunID == a.Run.RunID {
		t.Error("configuration change did not change the run id")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	meta := fixtureMetadata(t, fixtureConfig())
	path := filepath.Join(t.TempDir(), "analysis", "meta_data.json")

	if err := Write(path, meta); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded models.Metadata
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact not valid JSON: %v", err)
	}

	if decoded.Run.RunID != meta.Run.RunID {
		t.Errorf("run id = %q, want %q", decoded.Run.RunID, meta.Run.RunID)
	}
	if len(decoded.Timeline) != len(meta.Timeline) {
		t.Errorf("timeline length = %d, want %d", len(decoded.Timeline), len(meta.Timeline))
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta_data.json")

	if err := Write(path, fixtureMetadata(t, fixtureConfig())); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".meta-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want just the artifact", len(entries))
	}
}

func TestWriteReplacesExistingArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta_data.json")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, fixtureMetadata(t, fixtureConfig())); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(data, []byte("stale")) {
		t.Error("existing artifact not replaced")
	}
}

func TestWriteByteIdentical(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")

	if err := Write(first, fixtureMetadata(t, fixtureConfig())); err != nil {
		t.Fatal(err)
	}
	if err := Write(second, fixtureMetadata(t, fixtureConfig())); err != nil {
		t.Fatal(err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Error("identical runs wrote different bytes")
	}
}
