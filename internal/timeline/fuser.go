package timeline

import (
	"github.com/cheggaaa/pb/v3"

	"github.com/AI4Exercise/Coach4FreeKick/internal/config"
	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
	"github.com/AI4Exercise/Coach4FreeKick/internal/shots"
	"github.com/AI4Exercise/Coach4FreeKick/internal/streams"
)

// Fuser walks every original frame once and fuses the pose stream, the
// description stream and the shot table into the master timeline.
type Fuser struct {
	cfg          config.Config
	poses        *streams.PoseStream
	descriptions *streams.DescriptionStream
	table        *shots.Table
}

// NewFuser wires the loaded inputs to a fusion run
func NewFuser(
	cfg config.Config,
	poses *streams.PoseStream,
	descriptions *streams.DescriptionStream,
	table *shots.Table,
) *Fuser {
	return &Fuser{
		cfg:          cfg,
		poses:        poses,
		descriptions: descriptions,
		table:        table,
	}
}

// Run produces one record per original frame in [0, TotalFrames), in order,
// with no gaps. The walk is single pass and carries only the fill state, so
// identical inputs always produce identical records.
func (f *Fuser) Run() []models.TimelineRecord {
	records := make([]models.TimelineRecord, 0, f.cfg.TotalFrames)

	var bar *pb.ProgressBar
	if f.cfg.ShowProgress {
		bar = pb.StartNew(f.cfg.TotalFrames)
		defer bar.Finish()
	}

	var carriedPose *models.PoseSample
	var carriedDescription *models.DescriptionSample
	activeShotID := 0

	for frame := 0; frame < f.cfg.TotalFrames; frame++ {
		if bar != nil {
			bar.Increment()
		}

		// 1. Resolve the active shot first: the description fill needs to
		// know whether the shot context flipped on this frame.
		event := f.table.EventCovering(frame)
		shotID := 0
		if event != nil {
			shotID = event.ID
		}
		shotChanged := shotID != activeShotID
		activeShotID = shotID

		// 2. Pose: direct sample wins, otherwise forward fill.
		direct, hasDirect := f.poses.PoseAt(frame)
		carriedPose = resolvePose(carriedPose, direct, hasDirect)

		// 3. Description: sticky within the shot context, cleared on change.
		carriedDescription = resolveDescription(
			carriedDescription,
			f.descriptions.DescriptionAt(frame),
			shotChanged,
		)

		rec := models.TimelineRecord{
			FrameIndex:  frame,
			Pose:        carriedPose,
			Description: carriedDescription,
		}

		// 4. Shot context and progress through the kick.
		if event != nil {
			rec.ShotID = event.ID
			phase := event.Phase(frame)
			rec.ShotPhase = &phase
		}

		// 5. Window status for the overlay banners.
		rec.Status, rec.StatusShotID = f.table.StatusAt(frame, f.cfg.LeadInFrames, f.cfg.LeadOutFrames)

		records = append(records, rec)
	}

	return records
}
