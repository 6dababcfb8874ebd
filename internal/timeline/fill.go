package timeline

import "github.com/AI4Exercise/Coach4FreeKick/internal/models"

// resolvePose applies the forward fill for the skeleton overlay: a direct
// sample replaces the carried one, otherwise the last observation persists.
// A direct "nobody visible" observation is a nil sample with hasDirect true,
// and it clears the carry rather than extending it.
func resolvePose(carried, direct *models.PoseSample, hasDirect bool) *models.PoseSample {
	if hasDirect {
		return direct
	}
	return carried
}

// resolveDescription applies the sticky fill for the commentary panel: a
// description persists only while the shot context it was observed in stays
// the same. A direct sample always wins, even on the frame the context
// changes, so commentary about a finished play never lingers into the next.
func resolveDescription(carried, direct *models.DescriptionSample, shotChanged bool) *models.DescriptionSample {
	if direct != nil {
		return direct
	}
	if shotChanged {
		return nil
	}
	return carried
}
