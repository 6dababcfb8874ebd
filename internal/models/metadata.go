package models

// VideoInfo describes the source video and the sampling rates the analyzers
// ran at
type VideoInfo struct {
	OriginalFPS    int `json:"original_fps"`
	TotalFrames    int `json:"total_frames"`
	Width          int `json:"width,omitempty"`
	Height         int `json:"height,omitempty"`
	PoseFPS        int `json:"pose_fps"`
	DescriptionFPS int `json:"description_fps"`
}

// SummaryStats aggregates the run for the session report panel
type SummaryStats struct {
	TotalShots int `json:"total_shots"`
	Goals      int `json:"goals"`
	Saves      int `json:"saves"`
	Misses     int `json:"misses"`

	MeanShotDurationSec   float64 `json:"mean_shot_duration_sec"`
	StdDevShotDurationSec float64 `json:"stddev_shot_duration_sec"`

	PoseCoverage        float64 `json:"pose_coverage"`
	DescriptionCoverage float64 `json:"description_coverage"`

	MeanKeypointConfidence float64 `json:"mean_keypoint_confidence"`
	MinKeypointConfidence  float64 `json:"min_keypoint_confidence"`
	MaxKeypointConfidence  float64 `json:"max_keypoint_confidence"`
}

// Caption is a render-ready overlay cue spanning a closed frame range.
// Cues of the same kind never overlap.
type Caption struct {
	Kind       string `json:"kind"` // "banner" | "detail"
	StartFrame int    `json:"start_frame"`
	EndFrame   int    `json:"end_frame"`
	Text       string `json:"text"`
	Tone       string `json:"tone"`
}

// RunInfo identifies the fusion run and accounts for every input sample
type RunInfo struct {
	RunID                     string `json:"run_id"`
	PoseSamples               int    `json:"pose_samples"`
	DescriptionSamples        int    `json:"description_samples"`
	DroppedPoseSamples        int    `json:"dropped_pose_samples"`
	DroppedDescriptionSamples int    `json:"dropped_description_samples"`
	Records                   int    `json:"records"`
}

// Metadata is the single artifact the renderer consumes
type Metadata struct {
	VideoInfo VideoInfo        `json:"video_info"`
	Summary   SummaryStats     `json:"summary"`
	Shots     []ShotEvent      `json:"shot_info"`
	Captions  []Caption        `json:"captions"`
	Run       RunInfo          `json:"run_info"`
	Timeline  []TimelineRecord `json:"timeline_mappings"`
}
