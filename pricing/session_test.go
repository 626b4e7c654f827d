package pricing

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"storefront/entity"
)

// wrapItem builds the running example: base 6.00, required single "Size"
// (Small +0.00 default, Large +1.50), optional multiple "Extras"
// (Cheese +0.50, Bacon +1.00). Prices in cents.
func wrapItem() entity.MenuItem {
	return entity.MenuItem{
		Model: gorm.Model{ID: 1},
		Name:  "Wrap",
		Price: 600,
		Groups: []entity.CustomizationGroup{
			{
				Model:      gorm.Model{ID: 10},
				Name:       "Size",
				Type:       "single",
				IsRequired: true,
				Options: []entity.CustomizationOption{
					{Model: gorm.Model{ID: 101}, Name: "Small", AdditionalPrice: 0, IsDefault: true},
					{Model: gorm.Model{ID: 102}, Name: "Large", AdditionalPrice: 150},
				},
			},
			{
				Model: gorm.Model{ID: 20},
				Name:  "Extras",
				Type:  "multiple",
				Options: []entity.CustomizationOption{
					{Model: gorm.Model{ID: 201}, Name: "Cheese", AdditionalPrice: 50},
					{Model: gorm.Model{ID: 202}, Name: "Bacon", AdditionalPrice: 100},
				},
			},
		},
	}
}

func mustSession(t *testing.T, item entity.MenuItem) *Session {
	t.Helper()
	s, err := NewSession(item)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestDefaultPreselection(t *testing.T) {
	s := mustSession(t, wrapItem())

	if got := s.Total(); got != 600 {
		t.Fatalf("initial total = %d, want 600", got)
	}
	sels := s.Selections()
	if len(sels) != 1 || sels[0].OptionName != "Small" {
		t.Fatalf("expected Small preselected, got %+v", sels)
	}
}

func TestWrapPricingScenario(t *testing.T) {
	s := mustSession(t, wrapItem())

	steps := []struct {
		groupID, optionID uint
		wantTotal         int64
	}{
		{10, 102, 750}, // Large replaces Small
		{20, 201, 800}, // + Cheese
		{20, 202, 900}, // + Bacon
	}
	for _, st := range steps {
		if err := s.Toggle(st.groupID, st.optionID); err != nil {
			t.Fatalf("toggle(%d,%d): %v", st.groupID, st.optionID, err)
		}
		if got := s.Total(); got != st.wantTotal {
			t.Fatalf("after toggle(%d,%d) total = %d, want %d", st.groupID, st.optionID, got, st.wantTotal)
		}
	}

	if _, err := s.Validate(1); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSingleGroupExclusivity(t *testing.T) {
	s := mustSession(t, wrapItem())

	// arbitrary toggle sequence on the single group
	for _, opt := range []uint{102, 101, 102, 102, 101} {
		if err := s.Toggle(10, opt); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		count := 0
		for _, sel := range s.Selections() {
			if sel.GroupID == 10 {
				count++
			}
		}
		if count > 1 {
			t.Fatalf("single group holds %d selections after toggling %d", count, opt)
		}
	}
}

func TestMultipleToggleIdempotence(t *testing.T) {
	s := mustSession(t, wrapItem())
	before := s.Selections()

	if err := s.Toggle(20, 201); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if err := s.Toggle(20, 201); err != nil {
		t.Fatalf("toggle off: %v", err)
	}

	after := s.Selections()
	if len(after) != len(before) {
		t.Fatalf("selection set changed: before %d, after %d", len(before), len(after))
	}
	if s.Total() != 600 {
		t.Fatalf("total drifted to %d", s.Total())
	}
}

func TestSingleOptionalDeselect(t *testing.T) {
	item := wrapItem()
	item.Groups = append(item.Groups, entity.CustomizationGroup{
		Model: gorm.Model{ID: 30},
		Name:  "Add a Drink",
		Type:  "single_optional",
		Options: []entity.CustomizationOption{
			{Model: gorm.Model{ID: 301}, Name: "Cola", AdditionalPrice: 250},
		},
	})
	s := mustSession(t, item)

	if err := s.Toggle(30, 301); err != nil {
		t.Fatalf("select drink: %v", err)
	}
	if s.Total() != 850 {
		t.Fatalf("total = %d, want 850", s.Total())
	}

	// toggling the selected option again leaves the group empty
	if err := s.Toggle(30, 301); err != nil {
		t.Fatalf("deselect drink: %v", err)
	}
	for _, sel := range s.Selections() {
		if sel.GroupID == 30 {
			t.Fatalf("optional single group still holds %+v", sel)
		}
	}
	if s.Total() != 600 {
		t.Fatalf("total = %d, want 600", s.Total())
	}
}

func TestValidateMissingRequiredGroup(t *testing.T) {
	// no default on Size simulates an empty required single group
	item := wrapItem()
	item.Groups[0].Options[0].IsDefault = false
	s := mustSession(t, item)

	_, err := s.Validate(1)
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.MissingGroup != "Size" {
		t.Fatalf("missing group = %q, want Size", ve.MissingGroup)
	}
}

func TestValidateRequiredGroupWithoutOptions(t *testing.T) {
	// catalog data error: required group that can never be satisfied
	item := wrapItem()
	item.Groups = append(item.Groups, entity.CustomizationGroup{
		Model:      gorm.Model{ID: 40},
		Name:       "Broken",
		Type:       "single",
		IsRequired: true,
	})
	s := mustSession(t, item)

	_, err := s.Validate(1)
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.MissingGroup != "Broken" {
		t.Fatalf("missing group = %q, want Broken", ve.MissingGroup)
	}
}

func TestValidateStock(t *testing.T) {
	item := wrapItem()
	stock := 2
	item.StockTracked = true
	item.CurrentStock = &stock
	s := mustSession(t, item)

	if _, err := s.Validate(2); err != nil {
		t.Fatalf("qty at stock should pass: %v", err)
	}

	_, err := s.Validate(3)
	var se StockError
	if !errors.As(err, &se) {
		t.Fatalf("expected StockError, got %v", err)
	}
	if se.Requested != 3 || se.Available != 2 {
		t.Fatalf("unexpected StockError %+v", se)
	}

	// selections survive a stock failure so the user can retry
	if len(s.Selections()) == 0 {
		t.Fatal("selections cleared by failed validation")
	}
}

func TestNegativeDeltaTolerated(t *testing.T) {
	item := wrapItem()
	item.Groups[1].Options = append(item.Groups[1].Options, entity.CustomizationOption{
		Model: gorm.Model{ID: 203}, Name: "Loyalty discount", AdditionalPrice: -100,
	})
	s := mustSession(t, item)

	if err := s.Toggle(20, 203); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s.Total() != 500 {
		t.Fatalf("total = %d, want 500", s.Total())
	}
}

func TestUnknownGroupTypeRejected(t *testing.T) {
	item := wrapItem()
	item.Groups[0].Type = "tristate"
	if _, err := NewSession(item); err == nil {
		t.Fatal("expected error for unknown group type")
	}
}
