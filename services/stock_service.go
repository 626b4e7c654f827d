package services

import (
	"storefront/entity"
	"storefront/repository"

	"gorm.io/gorm"
)

type StockService struct {
	DB   *gorm.DB
	Repo *repository.StockRepository
}

func NewStockService(db *gorm.DB, repo *repository.StockRepository) *StockService {
	return &StockService{DB: db, Repo: repo}
}

type AdjustStockIn struct {
	MenuItemID uint   `json:"itemId" binding:"required"`
	Delta      int    `json:"delta" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

func (s *StockService) Adjust(staffID uint, in *AdjustStockIn) (*entity.StockAdjustment, error) {
	var adj *entity.StockAdjustment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		a, err := s.Repo.Adjust(tx, in.MenuItemID, in.Delta, in.Reason, staffID)
		if err != nil {
			return err
		}
		adj = a
		return nil
	})
	return adj, err
}

func (s *StockService) ListAdjustments(itemID uint, limit int) ([]entity.StockAdjustment, error) {
	return s.Repo.ListAdjustments(itemID, limit)
}
