package thread

import (
	"travelthreads/app/ids"
	"travelthreads/app/models"
)

// Replay re-applies recorded mutations to t in order and returns the result
// with the number of mutations that changed it. Created nodes get the
// identifiers, viewer and time labels that were recorded, so replaying a
// journal on top of the tree it started from reproduces the same tree.
func Replay(t Tree, mutations []*models.Mutation) (Tree, int) {
	applied := 0
	for _, rec := range mutations {
		if rec == nil {
			continue
		}
		m := NewMutator(
			WithIDs(ids.NewSequence(nil, rec.NodeID)),
			WithViewer(rec.Author, rec.Handle),
			WithTimeLabel(func() string { return rec.Time }),
		)

		var changed *models.Mutation
		t, changed = m.Apply(t, OpFromMutation(rec))
		if changed != nil {
			applied++
		}
	}
	return t, applied
}
