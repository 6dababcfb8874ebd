package models

// KeypointNames lists the 17 body joints in the order the upstream pose
// model emits them
var KeypointNames = []string{
	"nose",
	"left_eye", "right_eye",
	"left_ear", "right_ear",
	"left_shoulder", "right_shoulder",
	"left_elbow", "right_elbow",
	"left_wrist", "right_wrist",
	"left_hip", "right_hip",
	"left_knee", "right_knee",
	"left_ankle", "right_ankle",
}

// Keypoint is one body joint observation in pixel space
type Keypoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// PoseSample holds the kicker's keypoints observed at one kept frame.
// SourceFrame is the original frame index the sample was taken from, so a
// renderer can tell a fresh observation from a carried one.
type PoseSample struct {
	SourceFrame int                 `json:"source_frame"`
	Joints      map[string]Keypoint `json:"joints"`
}

// SourceVideoInfo is the header block the upstream analyzers copy from the
// source video
type SourceVideoInfo struct {
	Path       string  `json:"path,omitempty"`
	FPS        float64 `json:"fps"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FrameCount int     `json:"frame_count"`
}

// PoseArtifact mirrors the pose analyzer's JSON output: a video header plus
// one entry per kept sample. PoseEstimation is persons x joints x [x, y, conf].
type PoseArtifact struct {
	VideoInfo SourceVideoInfo     `json:"video_info"`
	Frames    []PoseArtifactFrame `json:"frames"`
}

type PoseArtifactFrame struct {
	FrameNumber    int           `json:"frame_number"`
	PoseEstimation [][][]float64 `json:"pose_estimation"`
}
