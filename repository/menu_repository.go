package repository

import (
	"storefront/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// FindCategoriesWithItems returns the full storefront catalog: active items
// with their customization groups and options, everything in sort order.
func (r *MenuRepository) FindCategoriesWithItems() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.
		Preload("Items", "is_active = ?", true, func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_items.id")
		}).
		Preload("Items.Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("customization_groups.sort_order")
		}).
		Preload("Items.Groups.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("customization_options.sort_order")
		}).
		Order("sort_order").
		Find(&cats).Error
	return cats, err
}

// FindItemWithGroups loads one item with its full customization tree — the
// working set a selection session freezes at start.
func (r *MenuRepository) FindItemWithGroups(itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("customization_groups.sort_order")
		}).
		Preload("Groups.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("customization_options.sort_order")
		}).
		First(&item, itemID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) FindItemBasics(itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ---------------- admin catalog editor ----------------

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) DeleteItem(itemID uint) error {
	return r.DB.Delete(&entity.MenuItem{}, itemID).Error
}

func (r *MenuRepository) CreateGroup(g *entity.CustomizationGroup) error {
	return r.DB.Create(g).Error
}

func (r *MenuRepository) UpdateGroup(g *entity.CustomizationGroup) error {
	return r.DB.Save(g).Error
}

func (r *MenuRepository) DeleteGroup(groupID uint) error {
	if err := r.DB.Where("group_id = ?", groupID).Delete(&entity.CustomizationOption{}).Error; err != nil {
		return err
	}
	return r.DB.Delete(&entity.CustomizationGroup{}, groupID).Error
}

func (r *MenuRepository) CreateOption(o *entity.CustomizationOption) error {
	return r.DB.Create(o).Error
}

func (r *MenuRepository) UpdateOption(o *entity.CustomizationOption) error {
	return r.DB.Save(o).Error
}

func (r *MenuRepository) DeleteOption(optionID uint) error {
	return r.DB.Delete(&entity.CustomizationOption{}, optionID).Error
}
