package services

import (
	"errors"

	"storefront/entity"
	"storefront/repository"
)

type DiscountService struct {
	Repo *repository.DiscountRepository
}

func NewDiscountService(repo *repository.DiscountRepository) *DiscountService {
	return &DiscountService{Repo: repo}
}

func (s *DiscountService) GetAll() ([]entity.Discount, error) {
	return s.Repo.FindAll()
}

func (s *DiscountService) Create(d *entity.Discount, adminID uint) error {
	if err := validateDiscount(d); err != nil {
		return err
	}
	d.CreatedByID = adminID
	return s.Repo.Create(d)
}

func (s *DiscountService) Update(id uint, d *entity.Discount) error {
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	d.ID = existing.ID
	d.CreatedByID = existing.CreatedByID
	if err := validateDiscount(d); err != nil {
		return err
	}
	return s.Repo.Update(d)
}

func (s *DiscountService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func validateDiscount(d *entity.Discount) error {
	switch d.Kind {
	case "fixed":
		if d.AmountOff <= 0 {
			return errors.New("fixed discount needs amountOff > 0")
		}
	case "percent":
		if d.PercentOff <= 0 || d.PercentOff > 100 {
			return errors.New("percent discount must be 1-100")
		}
	default:
		return errors.New("kind must be fixed or percent")
	}
	if d.ValidFrom != nil && d.ValidUntil != nil && d.ValidUntil.Before(*d.ValidFrom) {
		return errors.New("validUntil before validFrom")
	}
	return nil
}
