// Package selection tracks which mission profile the operator has picked.
package selection

import (
	"slices"

	"github.com/ksts/profileselector/internal/evaluator"
	"github.com/ksts/profileselector/internal/projector"
)

// Registry is the authoritative profile collection a selection is checked against.
type Registry interface {
	Has(id uint) bool
}

// Controller holds the selected profile identity between projection passes.
// It is either unselected or selected with one profile ID. A Controller is
// not safe for concurrent use.
type Controller struct {
	registry Registry
	selected *uint
}

// NewController creates an unselected Controller backed by reg.
func NewController(reg Registry) *Controller {
	return &Controller{registry: reg}
}

// Reconcile clears the selection if the selected profile no longer exists.
// It returns true if the selection was cleared.
func (c *Controller) Reconcile() bool {
	if c.selected == nil || c.registry.Has(*c.selected) {
		return false
	}
	c.selected = nil
	return true
}

// Current returns the selected profile ID.
func (c *Controller) Current() (uint, bool) {
	c.Reconcile()
	if c.selected == nil {
		return 0, false
	}
	return *c.selected, true
}

// Selected returns the selected profile ID as a pointer for projector.Project, or nil.
func (c *Controller) Selected() *uint {
	id, ok := c.Current()
	if !ok {
		return nil
	}
	return &id
}

// Deselect returns to the unselected state.
func (c *Controller) Deselect() {
	c.selected = nil
}

// Select picks a profile by identity. Unknown IDs are ignored.
func (c *Controller) Select(id uint) bool {
	c.Reconcile()
	if !c.registry.Has(id) {
		return false
	}
	c.selected = &id
	return true
}

// SelectByVisibleIndex picks the profile at index in visible. Picking the
// entry that is already selected, an entry listed in invalid, or an index
// outside visible leaves the selection unchanged. It returns true if the
// selection changed.
func (c *Controller) SelectByVisibleIndex(index int, visible []evaluator.EvaluatedProfile, invalid []int) bool {
	c.Reconcile()

	if index < 0 || index >= len(visible) {
		return false
	}
	if index == c.positionIn(visible) {
		return false
	}
	if slices.Contains(invalid, index) {
		return false
	}

	id := visible[index].Profile.ID
	// The list may be older than the registry.
	if !c.registry.Has(id) {
		return false
	}
	c.selected = &id
	return true
}

// SelectFromProjection is SelectByVisibleIndex over a projection's visible and invalid entries.
func (c *Controller) SelectFromProjection(index int, p projector.Projection) bool {
	return c.SelectByVisibleIndex(index, p.Visible, p.InvalidIndices)
}

func (c *Controller) positionIn(visible []evaluator.EvaluatedProfile) int {
	if c.selected == nil {
		return -1
	}
	for i, e := range visible {
		if e.Profile.ID == *c.selected {
			return i
		}
	}
	return -1
}
