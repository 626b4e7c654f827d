package pricing

import "storefront/entity"

// Conventional step keys used only for composite line naming. The builder
// model itself never branches on these.
const (
	StepKeyBase    = "base"
	StepKeyProtein = "protein"
)

// Line is a materialized cart line: a denormalized snapshot owned by the cart
// store from here on. Corrections are remove + re-add, never mutation.
type Line struct {
	MenuItemID     uint
	ItemName       string
	Qty            int
	UnitPrice      int64
	LineTotal      int64
	Customizations []Selected
	Picks          map[string][]Pick
	IsBuilderItem  bool
}

// MaterializeSimple turns a validated customization selection plus a quantity
// into a cart line. Selections must have passed Session.Validate; the only
// failure left here is the defensive quantity guard.
func MaterializeSimple(item entity.MenuItem, selections []Selected, qty int) (*Line, error) {
	if qty <= 0 {
		return nil, InvalidQuantityError{Qty: qty}
	}

	unit := item.Price
	for _, sel := range selections {
		unit += sel.PriceDelta
	}

	sels := make([]Selected, len(selections))
	copy(sels, selections)

	return &Line{
		MenuItemID:     item.ID,
		ItemName:       item.Name,
		Qty:            qty,
		UnitPrice:      unit,
		LineTotal:      unit * int64(qty),
		Customizations: sels,
	}, nil
}

// MaterializeBuilder turns a validated builder selection into a cart line.
// unitPrice comes from BuilderSession.Total so builder pricing has a single
// source of truth. Picks must have passed ValidateComplete.
func MaterializeBuilder(item entity.MenuItem, picks map[string][]Pick, qty int, unitPrice int64) (*Line, error) {
	if qty <= 0 {
		return nil, InvalidQuantityError{Qty: qty}
	}

	cp := make(map[string][]Pick, len(picks))
	for key, ps := range picks {
		row := make([]Pick, len(ps))
		copy(row, ps)
		cp[key] = row
	}

	return &Line{
		MenuItemID:    item.ID,
		ItemName:      compositeName(item.Name, picks),
		Qty:           qty,
		UnitPrice:     unitPrice,
		LineTotal:     unitPrice * int64(qty),
		Picks:         cp,
		IsBuilderItem: true,
	}, nil
}

// compositeName renders "Wrap - Pita + Chicken" when the conventional base
// and protein steps are both present, else falls back to the item name.
func compositeName(itemName string, picks map[string][]Pick) string {
	base := picks[StepKeyBase]
	protein := picks[StepKeyProtein]
	if len(base) == 0 || len(protein) == 0 {
		return itemName
	}
	return itemName + " - " + base[0].Name + " + " + protein[0].Name
}
