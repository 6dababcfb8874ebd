package metadata

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AI4Exercise/Coach4FreeKick/internal/config"
	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
	"github.com/AI4Exercise/Coach4FreeKick/internal/shots"
	"github.com/AI4Exercise/Coach4FreeKick/internal/streams"
)

// runNamespace seeds the deterministic v5 run ids
var runNamespace = uuid.MustParse("e3d94c21-4f6b-5a07-9c38-2fb7d1a6e850")

// Build assembles the final artifact from the run's parts. Everything that
// shapes the output feeds the run id, so re-running over the same inputs
// reproduces the artifact byte for byte.
func Build(
	cfg config.Config,
	poses *streams.PoseStream,
	descriptions *streams.DescriptionStream,
	table *shots.Table,
	records []models.TimelineRecord,
	summary models.SummaryStats,
	captions []models.Caption,
) *models.Metadata {

	return &models.Metadata{
		VideoInfo: models.VideoInfo{
			OriginalFPS:    cfg.OriginalFPS,
			TotalFrames:    cfg.TotalFrames,
			Width:          poses.Info.Width,
			Height:         poses.Info.Height,
			PoseFPS:        cfg.PoseFPS,
			DescriptionFPS: cfg.DescriptionFPS,
		},
		Summary:  summary,
		Shots:    table.Events(),
		Captions: captions,
		Run: models.RunInfo{
			RunID:                     runID(cfg, poses, descriptions, table, len(records)),
			PoseSamples:               poses.Samples,
			DescriptionSamples:        descriptions.Samples,
			DroppedPoseSamples:        poses.Dropped,
			DroppedDescriptionSamples: descriptions.Dropped,
			Records:                   len(records),
		},
		Timeline: records,
	}
}

// runID fingerprints the run: the configuration, the shot table content and
// the sample accounting. Same inputs, same id.
func runID(
	cfg config.Config,
	poses *streams.PoseStream,
	descriptions *streams.DescriptionStream,
	table *shots.Table,
	recordCount int,
) string {

	var b strings.Builder
	b.WriteString(cfg.Fingerprint())

	for _, e := range table.Events() {
		b.WriteString("|")
		b.WriteString(e.UID)
	}

	fmt.Fprintf(&b, "|pose=%d/%d|desc=%d/%d|records=%d",
		poses.Samples, poses.Dropped,
		descriptions.Samples, descriptions.Dropped,
		recordCount)

	return uuid.NewSHA1(runNamespace, []byte(b.String())).String()
}
