package pricing

import (
	"fmt"

	"storefront/entity"
)

// Selected is one chosen (group, option) pair. Names and price are snapshots
// taken at selection time; later catalog edits never rebase an open session.
type Selected struct {
	GroupID    uint   `json:"groupId"`
	OptionID   uint   `json:"optionId"`
	GroupName  string `json:"groupName"`
	OptionName string `json:"optionName"`
	PriceDelta int64  `json:"priceDelta"`
}

// Session tracks the chosen options for a single menu item while the user is
// customizing it. One session per item, built and discarded within a request;
// nothing here is shared between sessions.
type Session struct {
	item       entity.MenuItem
	groups     []entity.CustomizationGroup
	selections []Selected
}

// NewSession freezes the item's groups/prices and pre-selects the default
// option of every single-cardinality group.
func NewSession(item entity.MenuItem) (*Session, error) {
	s := &Session{item: item, groups: item.Groups}

	for _, g := range s.groups {
		gt, err := ParseGroupType(g.Type)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		if !gt.IsSingle() {
			continue
		}
		for _, o := range g.Options {
			if o.IsDefault {
				s.selections = append(s.selections, snapshot(g, o))
				break // at most one default per single group
			}
		}
	}
	return s, nil
}

func snapshot(g entity.CustomizationGroup, o entity.CustomizationOption) Selected {
	return Selected{
		GroupID:    g.ID,
		OptionID:   o.ID,
		GroupName:  g.Name,
		OptionName: o.Name,
		PriceDelta: o.AdditionalPrice,
	}
}

// Toggle applies one user toggle of (group, option).
//
// single:          replace the group's current selection
// single_optional: replace, or clear when the already-selected option (or
//                  optionID 0) is toggled — deselect-to-none
// multiple:        toggle membership, no upper bound at this layer
func (s *Session) Toggle(groupID, optionID uint) error {
	g, ok := s.findGroup(groupID)
	if !ok {
		return fmt.Errorf("group %d not found on item %q", groupID, s.item.Name)
	}
	gt, err := ParseGroupType(g.Type)
	if err != nil {
		return fmt.Errorf("group %q: %w", g.Name, err)
	}

	switch gt {
	case GroupSingle, GroupSingleOptional:
		wasSelected := s.has(groupID, optionID)
		s.removeGroup(groupID)
		if gt == GroupSingleOptional && (optionID == 0 || wasSelected) {
			return nil // left empty on purpose
		}
		o, ok := findOption(g, optionID)
		if !ok {
			return fmt.Errorf("option %d not found in group %q", optionID, g.Name)
		}
		s.selections = append(s.selections, snapshot(g, o))
	case GroupMultiple:
		if s.has(groupID, optionID) {
			s.remove(groupID, optionID)
			return nil
		}
		o, ok := findOption(g, optionID)
		if !ok {
			return fmt.Errorf("option %d not found in group %q", optionID, g.Name)
		}
		s.selections = append(s.selections, snapshot(g, o))
	}
	return nil
}

// Total recomputes from scratch on every call. Selection counts are single
// digits to low tens, caching buys nothing.
func (s *Session) Total() int64 {
	total := s.item.Price
	for _, sel := range s.selections {
		total += sel.PriceDelta
	}
	return total
}

// Selections returns a copy of the current selection set in toggle order.
func (s *Session) Selections() []Selected {
	out := make([]Selected, len(s.selections))
	copy(out, s.selections)
	return out
}

// Validate gates add-to-cart: every required group needs at least one
// selection, and a stock-tracked item must cover the requested quantity.
// A required group with zero options is a catalog data error and fails the
// same way as a missing selection. Returns the snapshot consumed by the
// materializer.
func (s *Session) Validate(qty int) ([]Selected, error) {
	for _, g := range s.groups {
		if !g.IsRequired {
			continue
		}
		if !s.hasGroup(g.ID) {
			return nil, ValidationError{MissingGroup: g.Name}
		}
	}
	if s.item.StockTracked && s.item.CurrentStock != nil && qty > *s.item.CurrentStock {
		return nil, StockError{Requested: qty, Available: *s.item.CurrentStock}
	}
	return s.Selections(), nil
}

func (s *Session) findGroup(groupID uint) (entity.CustomizationGroup, bool) {
	for _, g := range s.groups {
		if g.ID == groupID {
			return g, true
		}
	}
	return entity.CustomizationGroup{}, false
}

func findOption(g entity.CustomizationGroup, optionID uint) (entity.CustomizationOption, bool) {
	for _, o := range g.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return entity.CustomizationOption{}, false
}

func (s *Session) has(groupID, optionID uint) bool {
	for _, sel := range s.selections {
		if sel.GroupID == groupID && sel.OptionID == optionID {
			return true
		}
	}
	return false
}

func (s *Session) hasGroup(groupID uint) bool {
	for _, sel := range s.selections {
		if sel.GroupID == groupID {
			return true
		}
	}
	return false
}

func (s *Session) remove(groupID, optionID uint) {
	out := s.selections[:0]
	for _, sel := range s.selections {
		if sel.GroupID == groupID && sel.OptionID == optionID {
			continue
		}
		out = append(out, sel)
	}
	s.selections = out
}

func (s *Session) removeGroup(groupID uint) {
	out := s.selections[:0]
	for _, sel := range s.selections {
		if sel.GroupID == groupID {
			continue
		}
		out = append(out, sel)
	}
	s.selections = out
}
