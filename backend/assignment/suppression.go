package assignment

import (
	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/common/logger"
)

// Suppression freezes the filter's view of the assignments while the user
// edits the image the viewer is showing. Without it, removing the category
// that defines the active filter would immediately refilter and yank the
// viewer to another image mid-edit.
//
// The snapshot is taken once, before the first viewer-driven mutation of an
// episode, and stays authoritative for filtering until the next explicit
// navigation clears it.
type Suppression struct {
	suppressed bool
	snapshot   apitype.AssignmentView
}

func NewSuppression() *Suppression {
	return &Suppression{}
}

// Activate snapshots the live mapping unless an episode is already running.
// Must be called before the mutation is applied to the live store.
func (s *Suppression) Activate(live apitype.AssignmentView) {
	if s.snapshot != nil {
		return
	}
	logger.Trace.Print("Suppressing refilter, snapshotting assignments")
	s.snapshot = live.Clone()
	s.suppressed = true
}

func (s *Suppression) Suppressed() bool {
	return s.suppressed
}

// View picks the mapping the filter should read: the snapshot while
// suppression is active, the live mapping otherwise.
func (s *Suppression) View(live apitype.AssignmentView) apitype.AssignmentView {
	if s.suppressed && s.snapshot != nil {
		return s.snapshot
	}
	return live
}

// Clear ends the episode, making the live mapping authoritative again.
func (s *Suppression) Clear() {
	if s.suppressed {
		logger.Trace.Print("Clearing refilter suppression")
	}
	s.suppressed = false
	s.snapshot = nil
}
