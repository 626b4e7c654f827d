package services

import (
	"errors"
	"strconv"
	"testing"

	"storefront/entity"
	"storefront/pricing"
	"storefront/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CustomizationGroup{}, &entity.CustomizationOption{},
		&entity.BuilderSetting{}, &entity.BuilderStep{}, &entity.BuilderStepItem{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{}, &entity.CartItemBuilderPick{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
		&entity.Discount{}, &entity.StockAdjustment{}, &entity.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedWrap inserts the Wrap fixture: 6.00 base, required single Size
// (Small default / Large +1.50), multiple Extras (Cheese +0.50, Bacon +1.00).
func seedWrap(t *testing.T, db *gorm.DB) (item entity.MenuItem, size, extras entity.CustomizationGroup) {
	t.Helper()

	cat := entity.Category{Name: "Wraps"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	item = entity.MenuItem{Name: "Wrap", Price: 600, IsActive: true, CategoryID: cat.ID}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	size = entity.CustomizationGroup{MenuItemID: item.ID, Name: "Size", Type: "single", IsRequired: true}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("seed group: %v", err)
	}
	opts := []entity.CustomizationOption{
		{GroupID: size.ID, Name: "Small", AdditionalPrice: 0, IsDefault: true, SortOrder: 1},
		{GroupID: size.ID, Name: "Large", AdditionalPrice: 150, SortOrder: 2},
	}
	if err := db.Create(&opts).Error; err != nil {
		t.Fatalf("seed options: %v", err)
	}
	size.Options = opts

	extras = entity.CustomizationGroup{MenuItemID: item.ID, Name: "Extras", Type: "multiple"}
	if err := db.Create(&extras).Error; err != nil {
		t.Fatalf("seed group: %v", err)
	}
	eopts := []entity.CustomizationOption{
		{GroupID: extras.ID, Name: "Cheese", AdditionalPrice: 50, SortOrder: 1},
		{GroupID: extras.ID, Name: "Bacon", AdditionalPrice: 100, SortOrder: 2},
	}
	if err := db.Create(&eopts).Error; err != nil {
		t.Fatalf("seed options: %v", err)
	}
	extras.Options = eopts
	return item, size, extras
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		repository.NewBuilderRepository(db),
	)
}

func TestCartAddComputesServerPrice(t *testing.T) {
	db := testDB(t)
	item, size, extras := seedWrap(t, db)
	svc := newCartService(db)

	in := &AddToCartIn{
		MenuItemID: item.ID,
		Qty:        2,
		Selections: []SelectionIn{
			{GroupID: size.ID, OptionID: size.Options[1].ID},     // Large
			{GroupID: extras.ID, OptionID: extras.Options[0].ID}, // Cheese
		},
	}
	if err := svc.Add(1, in); err != nil {
		t.Fatalf("Add: %v", err)
	}

	cart, subtotal, err := svc.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(cart.Items))
	}
	line := cart.Items[0]
	if line.UnitPrice != 800 {
		t.Fatalf("unit = %d, want 800", line.UnitPrice)
	}
	if line.LineTotal != 1600 || subtotal != 1600 {
		t.Fatalf("line %d / subtotal %d, want 1600", line.LineTotal, subtotal)
	}
	if len(line.Selections) != 2 {
		t.Fatalf("selections = %d, want 2 (Large + Cheese)", len(line.Selections))
	}
}

func TestCartAddMergesIdenticalLines(t *testing.T) {
	db := testDB(t)
	item, size, _ := seedWrap(t, db)
	svc := newCartService(db)

	in := &AddToCartIn{
		MenuItemID: item.ID,
		Qty:        1,
		Selections: []SelectionIn{{GroupID: size.ID, OptionID: size.Options[0].ID}},
	}
	if err := svc.Add(1, in); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(1, in); err != nil {
		t.Fatalf("second add: %v", err)
	}

	cart, _, err := svc.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("identical lines did not merge: %d rows", len(cart.Items))
	}
	if cart.Items[0].Qty != 2 {
		t.Fatalf("merged qty = %d, want 2", cart.Items[0].Qty)
	}
	if cart.Items[0].LineTotal != 1200 {
		t.Fatalf("merged total = %d, want 1200", cart.Items[0].LineTotal)
	}
}

func TestCartAddDifferentSelectionsStaySeparate(t *testing.T) {
	db := testDB(t)
	item, size, _ := seedWrap(t, db)
	svc := newCartService(db)

	small := &AddToCartIn{MenuItemID: item.ID, Qty: 1,
		Selections: []SelectionIn{{GroupID: size.ID, OptionID: size.Options[0].ID}}}
	large := &AddToCartIn{MenuItemID: item.ID, Qty: 1,
		Selections: []SelectionIn{{GroupID: size.ID, OptionID: size.Options[1].ID}}}

	if err := svc.Add(1, small); err != nil {
		t.Fatalf("add small: %v", err)
	}
	if err := svc.Add(1, large); err != nil {
		t.Fatalf("add large: %v", err)
	}

	cart, _, err := svc.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 distinct lines, got %d", len(cart.Items))
	}
}

func TestCartAddMissingRequiredGroup(t *testing.T) {
	db := testDB(t)
	item, size, _ := seedWrap(t, db)
	svc := newCartService(db)

	// remove the default so the posted empty selection leaves Size empty
	if err := db.Model(&entity.CustomizationOption{}).
		Where("group_id = ?", size.ID).
		Update("is_default", false).Error; err != nil {
		t.Fatalf("clear default: %v", err)
	}

	err := svc.Add(1, &AddToCartIn{MenuItemID: item.ID, Qty: 1})
	var ve pricing.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.MissingGroup != "Size" {
		t.Fatalf("missing group = %q, want Size", ve.MissingGroup)
	}
}

func TestCartAddStockExceeded(t *testing.T) {
	db := testDB(t)
	item, _, _ := seedWrap(t, db)
	svc := newCartService(db)

	stock := 1
	if err := db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Updates(map[string]any{"stock_tracked": true, "current_stock": stock}).Error; err != nil {
		t.Fatalf("set stock: %v", err)
	}

	err := svc.Add(1, &AddToCartIn{MenuItemID: item.ID, Qty: 3})
	var se pricing.StockError
	if !errors.As(err, &se) {
		t.Fatalf("expected StockError, got %v", err)
	}
}

// seedBuilder inserts the base/protein/toppings builder config with one
// buildable item, returning the buildable and the step item ids in order.
func seedBuilder(t *testing.T, db *gorm.DB) (buildable entity.MenuItem, stepItems map[string][]uint) {
	t.Helper()

	cat := entity.Category{Name: "Build Your Own"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	buildable = entity.MenuItem{Name: "Build Your Own Wrap", Price: 450, IsActive: true, CategoryID: cat.ID}
	if err := db.Create(&buildable).Error; err != nil {
		t.Fatalf("seed buildable: %v", err)
	}

	componentCat := entity.Category{Name: "Components"}
	if err := db.Create(&componentCat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	three := 3
	steps := []struct {
		name, key, kind string
		required        bool
		max             *int
		items           []struct {
			name  string
			price int64
		}
	}{
		{"Choose a base", "base", "single", true, nil, []struct {
			name  string
			price int64
		}{{"Pita", 0}, {"Rice", 0}}},
		{"Choose a protein", "protein", "single", true, nil, []struct {
			name  string
			price int64
		}{{"Chicken", 200}, {"Brisket", 300}}},
		{"Toppings", "toppings", "multiple", false, &three, []struct {
			name  string
			price int64
		}{{"Onions", 50}, {"Pickles", 50}}},
	}

	stepItems = make(map[string][]uint)
	for si, st := range steps {
		row := entity.BuilderStep{
			Name: st.name, StepKey: st.key, Type: st.kind,
			IsRequired: st.required, MinSelections: 1, MaxSelections: st.max,
			SortOrder: si + 1,
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed step: %v", err)
		}
		for _, it := range st.items {
			component := entity.MenuItem{Name: it.name, Price: it.price, IsActive: true, CategoryID: componentCat.ID}
			if err := db.Create(&component).Error; err != nil {
				t.Fatalf("seed component: %v", err)
			}
			si := entity.BuilderStepItem{StepID: row.ID, MenuItemID: component.ID, IsActive: true}
			if err := db.Create(&si).Error; err != nil {
				t.Fatalf("seed step item: %v", err)
			}
			stepItems[st.key] = append(stepItems[st.key], si.ID)
		}
	}

	setting := entity.BuilderSetting{
		Enabled:              true,
		BuilderCategoryIDs:   strconv.FormatUint(uint64(cat.ID), 10),
		IncludeBaseItemPrice: false,
	}
	if err := db.Create(&setting).Error; err != nil {
		t.Fatalf("seed setting: %v", err)
	}
	return buildable, stepItems
}

func TestCartAddBuilder(t *testing.T) {
	db := testDB(t)
	buildable, stepItems := seedBuilder(t, db)
	svc := newCartService(db)

	in := &AddBuilderIn{
		MenuItemID: buildable.ID,
		Qty:        1,
		BuilderSelection: map[string][]uint{
			"base":    {stepItems["base"][0]},    // Pita
			"protein": {stepItems["protein"][0]}, // Chicken
		},
		BuilderUnitPrice: 200, // client's provisional price, matches server
	}
	if err := svc.AddBuilder(2, in); err != nil {
		t.Fatalf("AddBuilder: %v", err)
	}

	cart, subtotal, err := svc.Get(2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(cart.Items))
	}
	line := cart.Items[0]
	if !line.IsBuilderItem {
		t.Fatal("line not flagged as builder item")
	}
	if line.ItemName != "Build Your Own Wrap - Pita + Chicken" {
		t.Fatalf("composite name = %q", line.ItemName)
	}
	if line.UnitPrice != 200 || subtotal != 200 {
		t.Fatalf("unit %d / subtotal %d, want 200", line.UnitPrice, subtotal)
	}
	if len(line.BuilderPicks) != 2 {
		t.Fatalf("picks = %d, want 2", len(line.BuilderPicks))
	}
}

func TestCartAddBuilderIncompleteSelection(t *testing.T) {
	db := testDB(t)
	buildable, stepItems := seedBuilder(t, db)
	svc := newCartService(db)

	in := &AddBuilderIn{
		MenuItemID: buildable.ID,
		Qty:        1,
		BuilderSelection: map[string][]uint{
			"base": {stepItems["base"][0]}, // protein missing
		},
	}
	err := svc.AddBuilder(2, in)
	var ise pricing.IncompleteSelectionError
	if !errors.As(err, &ise) {
		t.Fatalf("expected IncompleteSelectionError, got %v", err)
	}
	if ise.StepKey != "protein" {
		t.Fatalf("incomplete step = %q, want protein", ise.StepKey)
	}
}

func TestCartAddBuilderPriceMismatch(t *testing.T) {
	db := testDB(t)
	buildable, stepItems := seedBuilder(t, db)
	svc := newCartService(db)

	in := &AddBuilderIn{
		MenuItemID: buildable.ID,
		Qty:        1,
		BuilderSelection: map[string][]uint{
			"base":    {stepItems["base"][0]},
			"protein": {stepItems["protein"][0]},
		},
		BuilderUnitPrice: 999, // stale client price
	}
	if err := svc.AddBuilder(2, in); !errors.Is(err, ErrPriceMismatch) {
		t.Fatalf("expected ErrPriceMismatch, got %v", err)
	}
}

func TestCartAddBuilderNonBuilderItemRejected(t *testing.T) {
	db := testDB(t)
	item, _, _ := seedWrap(t, db)
	_, stepItems := seedBuilder(t, db)
	svc := newCartService(db)

	in := &AddBuilderIn{
		MenuItemID: item.ID, // Wrap's category is not a builder category
		Qty:        1,
		BuilderSelection: map[string][]uint{
			"base":    {stepItems["base"][0]},
			"protein": {stepItems["protein"][0]},
		},
	}
	if err := svc.AddBuilder(2, in); err == nil {
		t.Fatal("expected rejection for non-builder item")
	}
}
