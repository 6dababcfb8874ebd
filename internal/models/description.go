package models

// KickAnalysis is the action model's kick form assessment, present only on
// frames where it judged a kick to be happening
type KickAnalysis struct {
	IsKick   bool   `json:"is_kick"`
	FootPart string `json:"foot_part,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// DescriptionSample is one action description observed at a kept frame.
// SourceFrame is the original frame index it was generated from.
type DescriptionSample struct {
	SourceFrame int           `json:"source_frame"`
	Text        string        `json:"text"`
	Kick        *KickAnalysis `json:"kick_analysis,omitempty"`
}

// DescriptionArtifact mirrors the action description analyzer's JSON output
type DescriptionArtifact struct {
	VideoInfo SourceVideoInfo            `json:"video_info"`
	Frames    []DescriptionArtifactFrame `json:"frames"`
}

type DescriptionArtifactFrame struct {
	FrameNumber int           `json:"frame_number"`
	Description string        `json:"action_description"`
	Kick        *KickAnalysis `json:"kick_analysis,omitempty"`
}
