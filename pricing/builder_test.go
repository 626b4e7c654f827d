package pricing

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"storefront/entity"
)

func intp(n int) *int { return &n }

func stepItem(id, menuID uint, name string, price int64, override *int64) entity.BuilderStepItem {
	return entity.BuilderStepItem{
		Model:         gorm.Model{ID: id},
		MenuItemID:    menuID,
		MenuItem:      entity.MenuItem{Model: gorm.Model{ID: menuID}, Name: name, Price: price},
		OverridePrice: override,
		IsActive:      true,
	}
}

// builderSteps: base (single, required, Pita 0) / protein (single, required,
// Chicken 2.00) / toppings (multiple, optional, max 3).
func builderSteps() []entity.BuilderStep {
	return []entity.BuilderStep{
		{
			Model: gorm.Model{ID: 1}, Name: "Choose a base", StepKey: "base",
			Type: "single", IsRequired: true, MinSelections: 1,
			Items: []entity.BuilderStepItem{
				stepItem(11, 110, "Pita", 0, nil),
				stepItem(12, 120, "Rice", 0, nil),
			},
		},
		{
			Model: gorm.Model{ID: 2}, Name: "Choose a protein", StepKey: "protein",
			Type: "single", IsRequired: true, MinSelections: 1,
			Items: []entity.BuilderStepItem{
				stepItem(21, 210, "Chicken", 200, nil),
				stepItem(22, 220, "Brisket", 300, nil),
			},
		},
		{
			Model: gorm.Model{ID: 3}, Name: "Toppings", StepKey: "toppings",
			Type: "multiple", MinSelections: 0, MaxSelections: intp(3),
			Items: []entity.BuilderStepItem{
				stepItem(31, 310, "Onions", 50, nil),
				stepItem(32, 320, "Pickles", 50, nil),
				stepItem(33, 330, "Jalapenos", 75, nil),
				stepItem(34, 340, "Olives", 75, nil),
			},
		},
	}
}

func buildable() entity.MenuItem {
	return entity.MenuItem{Model: gorm.Model{ID: 99}, Name: "Build Your Own Wrap", Price: 450}
}

func TestBuilderMinimalCompletion(t *testing.T) {
	b := NewBuilderSession(buildable(), builderSteps())

	if err := b.Select("base", 11); err != nil {
		t.Fatalf("select base: %v", err)
	}
	if err := b.Select("protein", 21); err != nil {
		t.Fatalf("select protein: %v", err)
	}

	if err := b.ValidateComplete(); err != nil {
		t.Fatalf("ValidateComplete: %v", err)
	}
	if got := b.Total(false); got != 200 {
		t.Fatalf("Total(false) = %d, want 200", got)
	}
	if got := b.Total(true); got != 650 {
		t.Fatalf("Total(true) = %d, want 650", got)
	}
}

func TestBuilderSingleStepReplaces(t *testing.T) {
	b := NewBuilderSession(buildable(), builderSteps())

	if err := b.Select("protein", 21); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := b.Select("protein", 22); err != nil {
		t.Fatalf("select: %v", err)
	}

	picks := b.Picks("protein")
	if len(picks) != 1 || picks[0].Name != "Brisket" {
		t.Fatalf("expected single Brisket pick, got %+v", picks)
	}
}

func TestBuilderCapIsSilentNoOp(t *testing.T) {
	steps := builderSteps()
	steps[2].MaxSelections = intp(2)
	b := NewBuilderSession(buildable(), steps)

	for _, id := range []uint{31, 32, 33} {
		if err := b.Select("toppings", id); err != nil {
			t.Fatalf("select %d: %v", id, err)
		}
	}

	picks := b.Picks("toppings")
	if len(picks) != 2 {
		t.Fatalf("got %d toppings, want 2 (3rd add is a no-op)", len(picks))
	}
	if picks[0].Name != "Onions" || picks[1].Name != "Pickles" {
		t.Fatalf("cap evicted an earlier pick: %+v", picks)
	}
}

func TestBuilderMultipleToggleOff(t *testing.T) {
	b := NewBuilderSession(buildable(), builderSteps())

	if err := b.Select("toppings", 31); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := b.Select("toppings", 31); err != nil {
		t.Fatalf("deselect: %v", err)
	}
	if picks := b.Picks("toppings"); len(picks) != 0 {
		t.Fatalf("expected empty step after toggle-off, got %+v", picks)
	}
}

func TestBuilderCompletionGating(t *testing.T) {
	b := NewBuilderSession(buildable(), builderSteps())

	err := b.ValidateComplete()
	var ise IncompleteSelectionError
	if !errors.As(err, &ise) {
		t.Fatalf("expected IncompleteSelectionError, got %v", err)
	}
	if ise.StepKey != "base" {
		t.Fatalf("first unsatisfied step = %q, want base", ise.StepKey)
	}

	if err := b.Select("base", 11); err != nil {
		t.Fatalf("select: %v", err)
	}
	err = b.ValidateComplete()
	if !errors.As(err, &ise) || ise.StepKey != "protein" {
		t.Fatalf("expected protein incomplete, got %v", err)
	}

	if err := b.Select("protein", 21); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := b.ValidateComplete(); err != nil {
		t.Fatalf("complete selection rejected: %v", err)
	}
}

func TestBuilderRequiredMinSelections(t *testing.T) {
	steps := builderSteps()
	steps[2].IsRequired = true
	steps[2].MinSelections = 2
	b := NewBuilderSession(buildable(), steps)

	if err := b.Select("base", 11); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := b.Select("protein", 21); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := b.Select("toppings", 31); err != nil {
		t.Fatalf("select: %v", err)
	}

	err := b.ValidateComplete()
	var ise IncompleteSelectionError
	if !errors.As(err, &ise) || ise.StepKey != "toppings" {
		t.Fatalf("expected toppings below min, got %v", err)
	}

	if err := b.Select("toppings", 32); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := b.ValidateComplete(); err != nil {
		t.Fatalf("min met but rejected: %v", err)
	}
}

func TestBuilderOverridePrice(t *testing.T) {
	steps := builderSteps()
	steps[1].Items[0] = stepItem(21, 210, "Chicken", 200, func() *int64 { v := int64(150); return &v }())
	b := NewBuilderSession(buildable(), steps)

	if err := b.Select("protein", 21); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := b.Total(false); got != 150 {
		t.Fatalf("Total = %d, want override 150", got)
	}
}

func TestBuilderInactiveItemRejected(t *testing.T) {
	steps := builderSteps()
	steps[0].Items[0].IsActive = false
	b := NewBuilderSession(buildable(), steps)

	if err := b.Select("base", 11); err == nil {
		t.Fatal("expected error selecting inactive step item")
	}
}

func TestBuilderMaterializeIsACopy(t *testing.T) {
	b := NewBuilderSession(buildable(), builderSteps())
	if err := b.Select("base", 11); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := b.Select("protein", 21); err != nil {
		t.Fatalf("select: %v", err)
	}

	out := b.Materialize()
	out["base"][0].Name = "tampered"

	if b.Picks("base")[0].Name != "Pita" {
		t.Fatal("materialized map aliases session state")
	}
}
