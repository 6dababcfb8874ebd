package streams

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
)

// ReadDescriptionArtifact loads and decodes the action description JSON
func ReadDescriptionArtifact(path string) (*models.DescriptionArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.DataLoadError{Artifact: "descriptions", Path: path, Err: err}
	}

	var art models.DescriptionArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, &models.DataLoadError{Artifact: "descriptions", Path: path, Err: err}
	}

	if len(art.Frames) == 0 {
		return nil, &models.DataLoadError{
			Artifact: "descriptions",
			Path:     path,
			Err:      errors.New("artifact contains no frames"),
		}
	}

	return &art, nil
}

// DescriptionStream answers point lookups from original frame indices into
// the kept action descriptions
type DescriptionStream struct {
	samples map[int]*models.DescriptionSample

	Samples int
	Dropped int
}

// NewDescriptionStream maps every artifact sample onto its original frame
// index, dropping and counting out-of-range or empty entries.
func NewDescriptionStream(art *models.DescriptionArtifact, ratio models.Ratio, totalFrames int) *DescriptionStream {
	s := &DescriptionStream{
		samples: make(map[int]*models.DescriptionSample, len(art.Frames)),
	}

	for _, fr := range art.Frames {
		frame := ratio.SourceIndex(fr.FrameNumber)

		if frame < 0 || frame >= totalFrames {
			rangeErr := &models.OutOfRangeSampleError{
				Stream:      "descriptions",
				SampleIndex: fr.FrameNumber,
				FrameIndex:  frame,
				TotalFrames: totalFrames,
			}
			log.Printf("[WARN] %v, sample dropped", rangeErr)
			s.Dropped++
			continue
		}

		text := strings.TrimSpace(fr.Description)
		if text == "" {
			log.Printf("[WARN] description sample %d has no text, sample dropped", fr.FrameNumber)
			s.Dropped++
			continue
		}

		if _, dup := s.samples[frame]; dup {
			log.Printf("[WARN] description sample %d duplicates frame %d, sample dropped", fr.FrameNumber, frame)
			s.Dropped++
			continue
		}

		s.samples[frame] = &models.DescriptionSample{
			SourceFrame: frame,
			Text:        text,
			Kick:        fr.Kick,
		}
		s.Samples++
	}

	return s
}

// DescriptionAt returns the direct sample at an original frame index, or nil
// when the frame carries none
func (s *DescriptionStream) DescriptionAt(frameIndex int) *models.DescriptionSample {
	return s.samples[frameIndex]
}
