package models

// TimelineRecord is the fused view of a single original frame. The sequence
// of records is dense: one per frame, no gaps, no duplicates, so a renderer
// never needs to re-query the source streams.
type TimelineRecord struct {
	FrameIndex   int                `json:"frame_index"`
	Pose         *PoseSample        `json:"pose,omitempty"`
	Description  *DescriptionSample `json:"description,omitempty"`
	ShotID       int                `json:"shot_id,omitempty"`
	ShotPhase    *float64           `json:"shot_phase,omitempty"`
	Status       ShotStatus         `json:"status"`
	StatusShotID int                `json:"status_shot_id,omitempty"`
}
