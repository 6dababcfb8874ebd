package streams

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
)

// ReadPoseArtifact loads and decodes the pose analyzer's JSON output
func ReadPoseArtifact(path string) (*models.PoseArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.DataLoadError{Artifact: "pose", Path: path, Err: err}
	}

	var art models.PoseArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, &models.DataLoadError{Artifact: "pose", Path: path, Err: err}
	}

	if len(art.Frames) == 0 {
		return nil, &models.DataLoadError{
			Artifact: "pose",
			Path:     path,
			Err:      errors.New("artifact contains no frames"),
		}
	}

	return &art, nil
}

// PoseStream answers point lookups from original frame indices into the kept
// pose samples. A present key with a nil sample is a direct "nobody visible"
// observation, which is different from the frame not being sampled at all.
type PoseStream struct {
	samples map[int]*models.PoseSample

	Info    models.SourceVideoInfo
	Samples int // kept samples, including empty observations
	Dropped int // malformed or out-of-range samples
}

// NewPoseStream maps every artifact sample onto its original frame index.
// Samples that fall outside [0, totalFrames) or fail to decode are dropped
// and counted, never fatal.
func NewPoseStream(art *models.PoseArtifact, ratio models.Ratio, totalFrames int) *PoseStream {
	s := &PoseStream{
		samples: make(map[int]*models.PoseSample, len(art.Frames)),
		Info:    art.VideoInfo,
	}

	for _, fr := range art.Frames {
		frame := ratio.SourceIndex(fr.FrameNumber)

		if frame < 0 || frame >= totalFrames {
			rangeErr := &models.OutOfRangeSampleError{
				Stream:      "pose",
				SampleIndex: fr.FrameNumber,
				FrameIndex:  frame,
				TotalFrames: totalFrames,
			}
			log.Printf("[WARN] %v, sample dropped", rangeErr)
			s.Dropped++
			continue
		}

		if _, dup := s.samples[frame]; dup {
			log.Printf("[WARN] pose sample %d duplicates frame %d, sample dropped", fr.FrameNumber, frame)
			s.Dropped++
			continue
		}

		sample, err := poseFromDetections(frame, fr.PoseEstimation)
		if err != nil {
			log.Printf("[WARN] pose sample %d: %v, sample dropped", fr.FrameNumber, err)
			s.Dropped++
			continue
		}

		s.samples[frame] = sample
		s.Samples++
	}

	return s
}

// PoseAt returns the direct sample at an original frame index. ok is true
// when the frame was kept by the pose downsample; the sample itself is nil
// when the analyzer saw nobody there.
func (s *PoseStream) PoseAt(frameIndex int) (*models.PoseSample, bool) {
	sample, ok := s.samples[frameIndex]
	return sample, ok
}

// poseFromDetections converts one raw detection entry into a named-joint
// sample. Only the first detected person matters: the camera frames the
// kicker, extra detections are bystanders.
func poseFromDetections(frame int, persons [][][]float64) (*models.PoseSample, error) {
	if len(persons) == 0 {
		return nil, nil // nobody visible, still a direct observation
	}

	person := persons[0]
	if len(person) != len(models.KeypointNames) {
		return nil, fmt.Errorf("expected %d joints, got %d", len(models.KeypointNames), len(person))
	}

	joints := make(map[string]models.Keypoint, len(person))
	for i, kp := range person {
		switch len(kp) {
		case 3:
			joints[models.KeypointNames[i]] = models.Keypoint{X: kp[0], Y: kp[1], Confidence: kp[2]}
		case 2:
			// Some exports omit confidence, treat the joint as certain
			joints[models.KeypointNames[i]] = models.Keypoint{X: kp[0], Y: kp[1], Confidence: 1.0}
		default:
			return nil, fmt.Errorf("joint %q has %d values, want 2 or 3", models.KeypointNames[i], len(kp))
		}
	}

	return &models.PoseSample{SourceFrame: frame, Joints: joints}, nil
}
