package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/AI4Exercise/Coach4FreeKick/internal/config"
	"github.com/AI4Exercise/Coach4FreeKick/internal/metadata"
	"github.com/AI4Exercise/Coach4FreeKick/internal/overlay"
	"github.com/AI4Exercise/Coach4FreeKick/internal/shots"
	"github.com/AI4Exercise/Coach4FreeKick/internal/streams"
	"github.com/AI4Exercise/Coach4FreeKick/internal/summary"
	"github.com/AI4Exercise/Coach4FreeKick/internal/timeline"
	"github.com/AI4Exercise/Coach4FreeKick/internal/validate"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] No .env file found, using system environment variables")
	} else {
		log.Println("[INFO] Loaded environment variables from .env file")
	}

	cfg := config.FromEnv()

	flag.StringVar(&cfg.PoseArtifactPath, "pose", cfg.PoseArtifactPath, "pose analysis artifact")
	flag.StringVar(&cfg.DescriptionArtifactPath, "descriptions", cfg.DescriptionArtifactPath, "action description artifact")
	flag.StringVar(&cfg.ShotArtifactPath, "shots", cfg.ShotArtifactPath, "hand-authored shot definitions")
	flag.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "fused metadata destination")
	flag.IntVar(&cfg.OriginalFPS, "fps", cfg.OriginalFPS, "original video frame rate")
	flag.IntVar(&cfg.PoseFPS, "pose-fps", cfg.PoseFPS, "pose sampling rate")
	flag.IntVar(&cfg.DescriptionFPS, "description-fps", cfg.DescriptionFPS, "description sampling rate")
	flag.IntVar(&cfg.TotalFrames, "total-frames", cfg.TotalFrames, "original frame count, 0 derives it from the pose artifact")
	flag.IntVar(&cfg.LeadInFrames, "lead-in", cfg.LeadInFrames, "buildup window before each shot, in frames")
	flag.IntVar(&cfg.LeadOutFrames, "lead-out", cfg.LeadOutFrames, "result window after each shot, in frames")
	flag.BoolVar(&cfg.ShowProgress, "progress", cfg.ShowProgress, "show a progress bar during the fusion walk")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

// run drives one fusion pass: load, index, fuse, derive, self-check, publish
func run(cfg config.Config) error {

	// 1. Load the three input artifacts, any absence is fatal
	poseArt, err := streams.ReadPoseArtifact(cfg.PoseArtifactPath)
	if err != nil {
		return err
	}

	descArt, err := streams.ReadDescriptionArtifact(cfg.DescriptionArtifactPath)
	if err != nil {
		return err
	}

	shotArt, err := shots.ReadArtifact(cfg.ShotArtifactPath)
	if err != nil {
		return err
	}

	// 2. Resolve the sampling ratios and the frame range. The fusion core
	// always gets an explicit count; deriving one from the pose header is a
	// command line convenience.
	poseRatio, err := cfg.PoseRatio()
	if err != nil {
		return err
	}

	descRatio, err := cfg.DescriptionRatio()
	if err != nil {
		return err
	}

	if cfg.TotalFrames == 0 {
		cfg.TotalFrames = poseRatio.ScaleCount(poseArt.VideoInfo.FrameCount)
		log.Printf("[INFO] Derived total frame count %d from the pose artifact header", cfg.TotalFrames)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// 3. Index the streams by original frame and validate the shot table
	poses := streams.NewPoseStream(poseArt, poseRatio, cfg.TotalFrames)
	descriptions := streams.NewDescriptionStream(descArt, descRatio, cfg.TotalFrames)

	table, err := shots.NewTable(shotArt, cfg.TotalFrames)
	if err != nil {
		return err
	}

	log.Printf("[INFO] Loaded %d pose samples (%d dropped), %d descriptions (%d dropped), %d shots",
		poses.Samples, poses.Dropped, descriptions.Samples, descriptions.Dropped, table.Len())

	// 4. Fuse everything into the master timeline
	records := timeline.NewFuser(cfg, poses, descriptions, table).Run()

	// 5. Derive the session report and the overlay cues
	stats := summary.Build(cfg.OriginalFPS, table.Events(), records)
	captions := overlay.BuildCaptions(records, table.Events())

	// 6. Assemble, self-check, publish
	meta := metadata.Build(cfg, poses, descriptions, table, records, stats, captions)

	if err := validate.ValidateMetadata(meta); err != nil {
		return err
	}

	if err := metadata.Write(cfg.OutputPath, meta); err != nil {
		return err
	}

	log.Printf("[INFO] Fused %d frames: %d goals, %d saves, %d misses (run %s)",
		len(records), stats.Goals, stats.Saves, stats.Misses, meta.Run.RunID)
	log.Printf("[INFO] Metadata written to %s", cfg.OutputPath)

	return nil
}
