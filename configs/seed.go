package configs

import (
	"fmt"
	"log"

	"storefront/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

type seedOption struct {
	name      string
	price     int64
	isDefault bool
}

// SeedCatalog loads the demo menu: categories, items, and the per-category
// customization groups (spice level, remove items, add-ons, extras, drink).
// Idempotent; skips when any category already exists.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []struct {
		name  string
		items []struct {
			name  string
			price int64
		}
	}{
		{"Most Popular", []struct {
			name  string
			price int64
		}{
			{"Mixed Rice Bowl", 1299},
			{"Mixed Loaded Fries", 1199},
			{"Chicken Grilled Sub", 999},
			{"Brisket Saj Wrap", 1099},
		}},
		{"Saj Wraps", []struct {
			name  string
			price int64
		}{
			{"Chicken Saj Wrap", 949},
			{"Halloumi Saj Wrap", 899},
		}},
		{"Loaded Fries", []struct {
			name  string
			price int64
		}{
			{"Chicken Loaded Fries", 1049},
			{"Brisket Loaded Fries", 1149},
		}},
		{"Rice Bowls", []struct {
			name  string
			price int64
		}{
			{"Chicken Rice Bowl", 1099},
			{"Brisket Rice Bowl", 1199},
		}},
	}

	for ci, cat := range categories {
		c := entity.Category{Name: cat.name, SortOrder: ci + 1}
		if err := db.Create(&c).Error; err != nil {
			return err
		}
		for _, it := range cat.items {
			item := entity.MenuItem{
				Name:       it.name,
				Price:      it.price,
				IsActive:   true,
				CategoryID: c.ID,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
			if err := seedGroupsForItem(item.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedGroupsForItem(itemID uint) error {
	db := DB()

	groups := []struct {
		name       string
		kind       string
		isRequired bool
		options    []seedOption
	}{
		{"Spice Level", "single", true, []seedOption{
			{"Mild", 0, true},
			{"Spicy (harissa instead of hot honey)", 0, false},
		}},
		{"Remove Items", "multiple", false, []seedOption{
			{"No cheese", 0, false},
			{"No garlic", 0, false},
			{"No salad (fries only)", 0, false},
			{"No hot honey", 0, false},
		}},
		{"Add-ons", "multiple", false, []seedOption{
			{"Chicken topping on fries", 300, false},
			{"Brisket topping on fries", 400, false},
			{"Mixed topping on fries", 500, false},
		}},
		{"Extras", "multiple", false, []seedOption{
			{"Grilled Halloumi Sticks", 650, false},
			{"Cheesy Pizza Poppers", 650, false},
		}},
		{"Add a Drink", "single_optional", false, []seedOption{
			{"Shani Can 330ml", 250, false},
			{"Rubicon Mango Can 330ml", 250, false},
			{"Bottled Water 350ml", 250, false},
		}},
	}

	for gi, g := range groups {
		row := entity.CustomizationGroup{
			MenuItemID: itemID,
			Name:       g.name,
			Type:       g.kind,
			IsRequired: g.isRequired,
			SortOrder:  gi + 1,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		for oi, o := range g.options {
			opt := entity.CustomizationOption{
				GroupID:         row.ID,
				Name:            o.name,
				AdditionalPrice: o.price,
				IsDefault:       o.isDefault,
				SortOrder:       oi + 1,
			}
			if err := db.Create(&opt).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedBuilder loads the step builder config (base / protein / sauce /
// toppings) and attaches component items. Idempotent.
func SeedBuilder() error {
	db := DB()

	var count int64
	db.Model(&entity.BuilderStep{}).Count(&count)
	if count > 0 {
		return nil
	}

	// one buildable category + component items of their own
	buildCat := entity.Category{Name: "Build Your Own", SortOrder: 10}
	if err := db.Create(&buildCat).Error; err != nil {
		return err
	}
	base := entity.MenuItem{Name: "Build Your Own Wrap", Price: 450, IsActive: true, CategoryID: buildCat.ID}
	if err := db.Create(&base).Error; err != nil {
		return err
	}

	componentCat := entity.Category{Name: "Builder Components", SortOrder: 99}
	if err := db.Create(&componentCat).Error; err != nil {
		return err
	}

	three := 3
	steps := []struct {
		name     string
		key      string
		kind     string
		required bool
		min      int
		max      *int
		items    []struct {
			name  string
			price int64
		}
	}{
		{"Choose a base", "base", "single", true, 1, nil, []struct {
			name  string
			price int64
		}{{"Pita", 0}, {"Saj Bread", 0}, {"Rice", 0}}},
		{"Choose a protein", "protein", "single", true, 1, nil, []struct {
			name  string
			price int64
		}{{"Chicken", 200}, {"Brisket", 300}, {"Halloumi", 250}}},
		{"Pick a sauce", "sauce", "single", true, 1, nil, []struct {
			name  string
			price int64
		}{{"Garlic", 0}, {"Harissa", 0}, {"Hot Honey", 0}}},
		{"Toppings", "toppings", "multiple", false, 0, &three, []struct {
			name  string
			price int64
		}{{"Onions", 50}, {"Pickles", 50}, {"Jalapenos", 75}, {"Olives", 75}}},
	}

	for si, st := range steps {
		row := entity.BuilderStep{
			Name:          st.name,
			StepKey:       st.key,
			Type:          st.kind,
			IsRequired:    st.required,
			MinSelections: st.min,
			MaxSelections: st.max,
			SortOrder:     si + 1,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		for ii, it := range st.items {
			component := entity.MenuItem{Name: it.name, Price: it.price, IsActive: true, CategoryID: componentCat.ID}
			if err := db.Create(&component).Error; err != nil {
				return err
			}
			stepItem := entity.BuilderStepItem{
				StepID:     row.ID,
				MenuItemID: component.ID,
				IsActive:   true,
				SortOrder:  ii + 1,
			}
			if err := db.Create(&stepItem).Error; err != nil {
				return err
			}
		}
	}

	setting := entity.BuilderSetting{
		Enabled:              true,
		BuilderCategoryIDs:   fmt.Sprint(buildCat.ID),
		IncludeBaseItemPrice: false,
	}
	return db.Create(&setting).Error
}

// SeedFAQs loads a starter FAQ set. Idempotent.
func SeedFAQs() error {
	db := DB()

	var count int64
	db.Model(&entity.FAQ{}).Count(&count)
	if count > 0 {
		return nil
	}

	faqs := []entity.FAQ{
		{Question: "Is everything halal?", Answer: "Yes, all our meat is certified halal.", Category: "Food", SortOrder: 1},
		{Question: "Can I remove ingredients?", Answer: "Every item has a Remove Items section when customizing.", Category: "Ordering", SortOrder: 2},
		{Question: "How spicy is spicy?", Answer: "Spicy swaps hot honey for harissa. It has a kick.", Category: "Food", SortOrder: 3},
		{Question: "Do you deliver?", Answer: "Collection only for now.", Category: "Ordering", SortOrder: 4},
	}
	return db.Create(&faqs).Error
}
