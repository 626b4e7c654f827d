package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"storefront/entity"
	"storefront/pricing"
	"storefront/repository"

	"gorm.io/gorm"
)

// ErrPriceMismatch: the client's provisional builder price disagrees with the
// server-computed one. The client should refresh its catalog and retry.
var ErrPriceMismatch = errors.New("builder price mismatch")

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	MenuRepo    *repository.MenuRepository
	BuilderRepo *repository.BuilderRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, br *repository.BuilderRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, BuilderRepo: br}
}

type SelectionIn struct {
	GroupID  uint `json:"groupId" binding:"required"`
	OptionID uint `json:"optionId" binding:"required"`
}

type AddToCartIn struct {
	MenuItemID uint          `json:"itemId" binding:"required"`
	Qty        int           `json:"quantity" binding:"min=1"`
	Note       string        `json:"note"`
	Selections []SelectionIn `json:"selectedCustomizations"`
}

type AddBuilderIn struct {
	MenuItemID       uint              `json:"itemId" binding:"required"`
	Qty              int               `json:"quantity" binding:"min=1"`
	BuilderSelection map[string][]uint `json:"builderSelections" binding:"required"` // step key -> step item ids
	BuilderUnitPrice int64             `json:"builderUnitPrice"`
	Note             string            `json:"note"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range c.Items {
		subtotal += it.LineTotal
	}
	return c, subtotal, nil
}

// Add rebuilds a selection session from the posted customizations, validates
// and prices it server-side (the client's total is provisional), then merges
// the materialized line into the cart.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	item, err := s.MenuRepo.FindItemWithGroups(in.MenuItemID)
	if err != nil {
		return err
	}
	if !item.IsActive {
		return errors.New("item is not available")
	}

	session, err := pricing.NewSession(*item)
	if err != nil {
		return err
	}
	for _, sel := range in.Selections {
		if err := session.Toggle(sel.GroupID, sel.OptionID); err != nil {
			return err
		}
	}

	sels, err := session.Validate(in.Qty)
	if err != nil {
		return err
	}

	line, err := pricing.MaterializeSimple(*item, sels, in.Qty)
	if err != nil {
		return err
	}

	row := &entity.CartItem{
		MenuItemID:     line.MenuItemID,
		ItemName:       line.ItemName,
		Qty:            line.Qty,
		UnitPrice:      line.UnitPrice,
		LineTotal:      line.LineTotal,
		Note:           in.Note,
		SelectionsHash: hashSimple(line.Customizations),
	}
	for _, sel := range line.Customizations {
		row.Selections = append(row.Selections, entity.CartItemSelection{
			GroupID:    sel.GroupID,
			OptionID:   sel.OptionID,
			GroupName:  sel.GroupName,
			OptionName: sel.OptionName,
			PriceDelta: sel.PriceDelta,
		})
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, c.ID, row)
	})
}

// AddBuilder rebuilds a builder session from the posted step selections,
// validates completion, and reconciles the client's provisional unit price
// against the server-computed one before persisting.
func (s *CartService) AddBuilder(userID uint, in *AddBuilderIn) error {
	setting, err := s.BuilderRepo.GetSetting()
	if err != nil {
		return err
	}
	if !setting.Enabled {
		return errors.New("builder is disabled")
	}

	item, err := s.MenuRepo.FindItemBasics(in.MenuItemID)
	if err != nil {
		return err
	}
	if !builderCategory(setting, item.CategoryID) {
		return errors.New("item is not a builder item")
	}

	steps, err := s.BuilderRepo.FindSteps()
	if err != nil {
		return err
	}

	session := pricing.NewBuilderSession(*item, steps)
	for _, st := range steps { // step order, not map order
		for _, id := range in.BuilderSelection[st.StepKey] {
			if err := session.Select(st.StepKey, id); err != nil {
				return err
			}
		}
	}

	if err := session.ValidateComplete(); err != nil {
		return err
	}

	unit := session.Total(setting.IncludeBaseItemPrice)
	if in.BuilderUnitPrice != 0 && in.BuilderUnitPrice != unit {
		return ErrPriceMismatch
	}

	line, err := pricing.MaterializeBuilder(*item, session.Materialize(), in.Qty, unit)
	if err != nil {
		return err
	}

	row := &entity.CartItem{
		MenuItemID:     line.MenuItemID,
		ItemName:       line.ItemName,
		Qty:            line.Qty,
		UnitPrice:      line.UnitPrice,
		LineTotal:      line.LineTotal,
		Note:           in.Note,
		SelectionsHash: hashBuilder(line.Picks),
		IsBuilderItem:  true,
	}
	for _, st := range steps {
		for _, p := range line.Picks[st.StepKey] {
			row.BuilderPicks = append(row.BuilderPicks, entity.CartItemBuilderPick{
				StepKey:    st.StepKey,
				MenuItemID: p.MenuItemID,
				ItemName:   p.Name,
				Price:      p.Price,
			})
		}
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, c.ID, row)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}

func builderCategory(setting *entity.BuilderSetting, categoryID uint) bool {
	for _, part := range strings.Split(setting.BuilderCategoryIDs, ",") {
		if strings.TrimSpace(part) == fmt.Sprint(categoryID) {
			return true
		}
	}
	return false
}

// hashSimple fingerprints a selection set so identical lines merge. Order
// independent: two carts with the same options in different toggle order
// still merge.
func hashSimple(sels []pricing.Selected) string {
	keys := make([]string, 0, len(sels))
	for _, sel := range sels {
		keys = append(keys, fmt.Sprintf("%d:%d", sel.GroupID, sel.OptionID))
	}
	sort.Strings(keys)
	sum := sha256.Sum256([]byte(strings.Join(keys, "|")))
	return hex.EncodeToString(sum[:])
}

func hashBuilder(picks map[string][]pricing.Pick) string {
	keys := make([]string, 0, len(picks))
	for stepKey, ps := range picks {
		for _, p := range ps {
			keys = append(keys, fmt.Sprintf("%s:%d", stepKey, p.StepItemID))
		}
	}
	sort.Strings(keys)
	sum := sha256.Sum256([]byte("builder|" + strings.Join(keys, "|")))
	return hex.EncodeToString(sum[:])
}
