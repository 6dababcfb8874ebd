package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
)

const (
	DefaultPoseArtifact        = "analysis/yolo_analysis_4fps.json"
	DefaultDescriptionArtifact = "analysis/vlm_action_descriptions_12fps.json"
	DefaultShotArtifact        = "analysis/shot_events.json"
	DefaultOutputPath          = "analysis/meta_data.json"

	DefaultOriginalFPS    = 30
	DefaultPoseFPS        = 4
	DefaultDescriptionFPS = 12

	DefaultLeadInFrames  = 45 // 1.5s of buildup at 30fps
	DefaultLeadOutFrames = 30 // 1.0s of result banner at 30fps
)

// Config is the explicit run configuration handed to the fusion pipeline.
// It is a plain value: the pipeline itself never reads ambient state.
type Config struct {
	PoseArtifactPath        string
	DescriptionArtifactPath string
	ShotArtifactPath        string
	OutputPath              string

	OriginalFPS    int
	PoseFPS        int
	DescriptionFPS int

	// TotalFrames is the original frame count the timeline spans. Zero means
	// the caller derives it from the pose artifact header before running.
	TotalFrames int

	LeadInFrames  int
	LeadOutFrames int

	ShowProgress bool
}

// FromEnv builds a Config from COACH_* environment variables, falling back
// to the defaults above
func FromEnv() Config {
	return Config{
		PoseArtifactPath:        getEnv("COACH_POSE_ARTIFACT", DefaultPoseArtifact),
		DescriptionArtifactPath: getEnv("COACH_DESCRIPTION_ARTIFACT", DefaultDescriptionArtifact),
		ShotArtifactPath:        getEnv("COACH_SHOT_ARTIFACT", DefaultShotArtifact),
		OutputPath:              getEnv("COACH_OUTPUT", DefaultOutputPath),
		OriginalFPS:             getEnvInt("COACH_ORIGINAL_FPS", DefaultOriginalFPS),
		PoseFPS:                 getEnvInt("COACH_POSE_FPS", DefaultPoseFPS),
		DescriptionFPS:          getEnvInt("COACH_DESCRIPTION_FPS", DefaultDescriptionFPS),
		TotalFrames:             getEnvInt("COACH_TOTAL_FRAMES", 0),
		LeadInFrames:            getEnvInt("COACH_LEAD_IN_FRAMES", DefaultLeadInFrames),
		LeadOutFrames:           getEnvInt("COACH_LEAD_OUT_FRAMES", DefaultLeadOutFrames),
		ShowProgress:            getEnvBool("COACH_PROGRESS", false),
	}
}

// Validate checks that the configuration can drive a run. TotalFrames must
// already be resolved by this point.
func (c Config) Validate() error {
	if c.PoseArtifactPath == "" {
		return fmt.Errorf("pose artifact path is required")
	}
	if c.DescriptionArtifactPath == "" {
		return fmt.Errorf("description artifact path is required")
	}
	if c.ShotArtifactPath == "" {
		return fmt.Errorf("shot artifact path is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}

	if c.OriginalFPS <= 0 {
		return fmt.Errorf("original fps must be positive, got %d", c.OriginalFPS)
	}
	if c.PoseFPS <= 0 || c.PoseFPS > c.OriginalFPS {
		return fmt.Errorf("pose fps %d must be in [1, %d]", c.PoseFPS, c.OriginalFPS)
	}
	if c.DescriptionFPS <= 0 || c.DescriptionFPS > c.OriginalFPS {
		return fmt.Errorf("description fps %d must be in [1, %d]", c.DescriptionFPS, c.OriginalFPS)
	}

	if c.TotalFrames <= 0 {
		return fmt.Errorf("total frame count must be positive, got %d", c.TotalFrames)
	}

	if c.LeadInFrames < 0 {
		return fmt.Errorf("lead-in frames must not be negative, got %d", c.LeadInFrames)
	}
	if c.LeadOutFrames < 0 {
		return fmt.Errorf("lead-out frames must not be negative, got %d", c.LeadOutFrames)
	}

	return nil
}

// PoseRatio returns the original-to-pose sampling ratio
func (c Config) PoseRatio() (models.Ratio, error) {
	return models.NewRatio(c.OriginalFPS, c.PoseFPS)
}

// DescriptionRatio returns the original-to-description sampling ratio
func (c Config) DescriptionRatio() (models.Ratio, error) {
	return models.NewRatio(c.OriginalFPS, c.DescriptionFPS)
}

// Fingerprint renders the parameters that shape the output into a canonical
// string, used to derive the deterministic run id.
func (c Config) Fingerprint() string {
	return fmt.Sprintf("v1|fps=%d/%d/%d|frames=%d|lead=%d/%d",
		c.OriginalFPS, c.PoseFPS, c.DescriptionFPS,
		c.TotalFrames, c.LeadInFrames, c.LeadOutFrames)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
