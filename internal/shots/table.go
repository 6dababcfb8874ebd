package shots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/AI4Exercise/Coach4FreeKick/internal/models"
)

// shotNamespace seeds the deterministic v5 UIDs assigned to shot events
var shotNamespace = uuid.MustParse("7d4ab3f2-9c51-5e28-b7a4-51f06bd0c3ea")

// ReadArtifact loads and decodes the hand-authored shot definitions
func ReadArtifact(path string) (*models.ShotArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.DataLoadError{Artifact: "shots", Path: path, Err: err}
	}

	var art models.ShotArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, &models.DataLoadError{Artifact: "shots", Path: path, Err: err}
	}

	if len(art.Shots) == 0 {
		return nil, &models.DataLoadError{
			Artifact: "shots",
			Path:     path,
			Err:      errors.New("artifact contains no shots"),
		}
	}

	return &art, nil
}

// Table is the validated shot event table, ordered by start frame. Events
// never overlap, so any frame is covered by at most one of them.
type Table struct {
	events []models.ShotEvent
}

// NewTable validates every authored event and assembles the table. Shots are
// curated by hand, so any defect is fatal and names the offending event.
func NewTable(art *models.ShotArtifact, totalFrames int) (*Table, error) {
	events := make([]models.ShotEvent, 0, len(art.Shots))

	for i, raw := range art.Shots {
		id := i + 1

		outcome := models.Outcome(strings.ToLower(strings.TrimSpace(raw.Outcome)))
		if !outcome.Valid() {
			return nil, &models.InvalidShotEventError{
				ShotID: id,
				Reason: fmt.Sprintf("unknown outcome %q", raw.Outcome),
			}
		}

		if raw.StartFrame < 0 {
			return nil, &models.InvalidShotEventError{
				ShotID: id,
				Reason: fmt.Sprintf("start frame %d is negative", raw.StartFrame),
			}
		}

		if raw.StartFrame >= raw.EndFrame {
			return nil, &models.InvalidShotEventError{
				ShotID: id,
				Reason: fmt.Sprintf("start frame %d not before end frame %d", raw.StartFrame, raw.EndFrame),
			}
		}

		if raw.EndFrame >= totalFrames {
			return nil, &models.InvalidShotEventError{
				ShotID: id,
				Reason: fmt.Sprintf("end frame %d outside video bounds [0, %d)", raw.EndFrame, totalFrames),
			}
		}

		if i > 0 {
			prev := events[i-1]
			if raw.StartFrame < prev.StartFrame {
				return nil, &models.InvalidShotEventError{
					ShotID: id,
					Reason: fmt.Sprintf("start frame %d not sorted after shot event %d", raw.StartFrame, prev.ID),
				}
			}
			if raw.StartFrame <= prev.EndFrame {
				return nil, &models.InvalidShotEventError{
					ShotID: id,
					Reason: fmt.Sprintf("frames [%d, %d] overlap shot event %d", raw.StartFrame, raw.EndFrame, prev.ID),
				}
			}
		}

		e := models.ShotEvent{
			ID:         id,
			StartFrame: raw.StartFrame,
			EndFrame:   raw.EndFrame,
			Outcome:    outcome,
			TargetZone: strings.TrimSpace(raw.TargetZone),
			Foot:       strings.TrimSpace(raw.Foot),
			Notes:      strings.TrimSpace(raw.Notes),
		}
		e.UID = eventUID(e)

		events = append(events, e)
	}

	return &Table{events: events}, nil
}

// eventUID derives a stable fingerprint from the validated content, so
// reruns over the same table produce identical artifacts.
func eventUID(e models.ShotEvent) string {
	seed := fmt.Sprintf("%d|%d|%d|%s|%s", e.ID, e.StartFrame, e.EndFrame, e.Outcome, e.TargetZone)
	return uuid.NewSHA1(shotNamespace, []byte(seed)).String()
}

// Events returns the validated events in start order
func (t *Table) Events() []models.ShotEvent {
	return t.events
}

// Len returns the number of shots in the table
func (t *Table) Len() int {
	return len(t.events)
}

// EventCovering returns the event whose closed interval contains the frame,
// or nil. Lookup is a binary search over the sorted starts.
func (t *Table) EventCovering(frameIndex int) *models.ShotEvent {
	idx := t.lastStartedBefore(frameIndex)
	if idx >= 0 && t.events[idx].Covers(frameIndex) {
		return &t.events[idx]
	}
	return nil
}

// StatusAt classifies the frame against the shot windows. Covered frames are
// in flight; otherwise a result window after the previous shot wins over a
// buildup window before the next one, matching how the overlay keeps the
// outcome banner up through an immediate next buildup.
func (t *Table) StatusAt(frameIndex, leadInFrames, leadOutFrames int) (models.ShotStatus, int) {
	idx := t.lastStartedBefore(frameIndex)

	if idx >= 0 && t.events[idx].Covers(frameIndex) {
		return models.StatusInFlight, t.events[idx].ID
	}

	if idx >= 0 && frameIndex <= t.events[idx].EndFrame+leadOutFrames {
		return models.StatusPostResult, t.events[idx].ID
	}

	if idx+1 < len(t.events) && frameIndex >= t.events[idx+1].StartFrame-leadInFrames {
		return models.StatusPreShot, t.events[idx+1].ID
	}

	return models.StatusIdle, 0
}

// lastStartedBefore returns the index of the last event with
// StartFrame <= frameIndex, or -1
func (t *Table) lastStartedBefore(frameIndex int) int {
	return sort.Search(len(t.events), func(i int) bool {
		return t.events[i].StartFrame > frameIndex
	}) - 1
}
