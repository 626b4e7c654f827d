package pricing

import (
	"fmt"

	"storefront/entity"
)

// Pick is one chosen step item, snapshotted with its effective price
// (override if set, else the underlying item's price) as of config load.
type Pick struct {
	StepItemID uint   `json:"stepItemId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
}

// BuilderSession generalizes Session to N ordered steps, each with its own
// min/max cardinality. Step keys are opaque here; only the materializer's
// naming convention knows about "base" and "protein".
type BuilderSession struct {
	item  entity.MenuItem
	steps []entity.BuilderStep
	picks map[string][]Pick // step key -> picks in selection order
}

func NewBuilderSession(item entity.MenuItem, steps []entity.BuilderStep) *BuilderSession {
	return &BuilderSession{
		item:  item,
		steps: steps,
		picks: make(map[string][]Pick),
	}
}

// Select applies one user tap on a step item.
//
// single:   replace the step's selection
// multiple: toggle-off if already picked; append while under max_selections;
//           at the cap the add is a silent no-op (block submission, not
//           interaction — min_selections is only checked in ValidateComplete)
func (b *BuilderSession) Select(stepKey string, stepItemID uint) error {
	st, ok := b.findStep(stepKey)
	if !ok {
		return fmt.Errorf("unknown builder step %q", stepKey)
	}
	it, ok := findStepItem(st, stepItemID)
	if !ok {
		return fmt.Errorf("item %d not available in step %q", stepItemID, stepKey)
	}
	gt, err := ParseGroupType(st.Type)
	if err != nil {
		return fmt.Errorf("step %q: %w", stepKey, err)
	}

	pick := Pick{
		StepItemID: it.ID,
		MenuItemID: it.MenuItemID,
		Name:       it.MenuItem.Name,
		Price:      it.EffectivePrice(),
	}

	switch gt {
	case GroupSingle, GroupSingleOptional:
		b.picks[stepKey] = []Pick{pick}
	case GroupMultiple:
		cur := b.picks[stepKey]
		for i, p := range cur {
			if p.StepItemID == stepItemID {
				b.picks[stepKey] = append(cur[:i:i], cur[i+1:]...)
				return nil
			}
		}
		if st.MaxSelections != nil && len(cur) >= *st.MaxSelections {
			return nil // cap reached; deliberately silent
		}
		b.picks[stepKey] = append(cur, pick)
	}
	return nil
}

// Total sums effective prices over all picked items, optionally adding the
// base item's own price (per builder config).
func (b *BuilderSession) Total(includeBaseItemPrice bool) int64 {
	var total int64
	if includeBaseItemPrice {
		total = b.item.Price
	}
	for _, picks := range b.picks {
		for _, p := range picks {
			total += p.Price
		}
	}
	return total
}

// ValidateComplete checks every step's cardinality. Required steps must have
// a count within [min_selections, max_selections]; optional steps only get
// the upper bound, and only when something is picked.
func (b *BuilderSession) ValidateComplete() error {
	for _, st := range b.steps {
		n := len(b.picks[st.StepKey])
		if st.IsRequired {
			min := st.MinSelections
			if min <= 0 {
				min = 1
			}
			if n < min {
				return IncompleteSelectionError{StepKey: st.StepKey}
			}
		}
		if st.MaxSelections != nil && n > *st.MaxSelections {
			return IncompleteSelectionError{StepKey: st.StepKey}
		}
	}
	return nil
}

// Materialize returns the picks grouped by step key. Call only after
// ValidateComplete succeeds; the map is a copy and safe to hand off.
func (b *BuilderSession) Materialize() map[string][]Pick {
	out := make(map[string][]Pick, len(b.picks))
	for key, picks := range b.picks {
		if len(picks) == 0 {
			continue
		}
		cp := make([]Pick, len(picks))
		copy(cp, picks)
		out[key] = cp
	}
	return out
}

// Picks returns the current selection for one step, in selection order.
func (b *BuilderSession) Picks(stepKey string) []Pick {
	cur := b.picks[stepKey]
	out := make([]Pick, len(cur))
	copy(out, cur)
	return out
}

func (b *BuilderSession) findStep(stepKey string) (entity.BuilderStep, bool) {
	for _, st := range b.steps {
		if st.StepKey == stepKey {
			return st, true
		}
	}
	return entity.BuilderStep{}, false
}

func findStepItem(st entity.BuilderStep, stepItemID uint) (entity.BuilderStepItem, bool) {
	for _, it := range st.Items {
		if it.ID == stepItemID && it.IsActive {
			return it, true
		}
	}
	return entity.BuilderStepItem{}, false
}
