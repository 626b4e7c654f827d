package services

import (
	"context"
	"encoding/json"
	"time"

	"storefront/entity"
	"storefront/pkg/cache"
	"storefront/repository"
)

const menuCacheKey = "storefront:menu:v1"

type MenuService struct {
	Repo  *repository.MenuRepository
	Cache *cache.Cache // nil = no caching
}

func NewMenuService(repo *repository.MenuRepository, c *cache.Cache) *MenuService {
	return &MenuService{Repo: repo, Cache: c}
}

// GetMenu returns the full storefront catalog, served from redis when warm.
func (s *MenuService) GetMenu(ctx context.Context) ([]entity.Category, error) {
	if b, ok := s.Cache.Get(ctx, menuCacheKey); ok {
		var cats []entity.Category
		if json.Unmarshal(b, &cats) == nil {
			return cats, nil
		}
	}

	cats, err := s.Repo.FindCategoriesWithItems()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(cats); err == nil {
		s.Cache.Set(ctx, menuCacheKey, b, 5*time.Minute)
	}
	return cats, nil
}

func (s *MenuService) GetItem(itemID uint) (*entity.MenuItem, error) {
	return s.Repo.FindItemWithGroups(itemID)
}

// ---------------- admin catalog editor ----------------

func (s *MenuService) invalidate(ctx context.Context) {
	s.Cache.Invalidate(ctx, menuCacheKey)
}

func (s *MenuService) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	defer s.invalidate(ctx)
	return s.Repo.CreateItem(item)
}

func (s *MenuService) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	defer s.invalidate(ctx)
	return s.Repo.UpdateItem(item)
}

func (s *MenuService) DeleteItem(ctx context.Context, itemID uint) error {
	defer s.invalidate(ctx)
	return s.Repo.DeleteItem(itemID)
}

func (s *MenuService) CreateGroup(ctx context.Context, g *entity.CustomizationGroup) error {
	defer s.invalidate(ctx)
	return s.Repo.CreateGroup(g)
}

func (s *MenuService) UpdateGroup(ctx context.Context, g *entity.CustomizationGroup) error {
	defer s.invalidate(ctx)
	return s.Repo.UpdateGroup(g)
}

func (s *MenuService) DeleteGroup(ctx context.Context, groupID uint) error {
	defer s.invalidate(ctx)
	return s.Repo.DeleteGroup(groupID)
}

func (s *MenuService) CreateOption(ctx context.Context, o *entity.CustomizationOption) error {
	defer s.invalidate(ctx)
	return s.Repo.CreateOption(o)
}

func (s *MenuService) UpdateOption(ctx context.Context, o *entity.CustomizationOption) error {
	defer s.invalidate(ctx)
	return s.Repo.UpdateOption(o)
}

func (s *MenuService) DeleteOption(ctx context.Context, optionID uint) error {
	defer s.invalidate(ctx)
	return s.Repo.DeleteOption(optionID)
}
