package services

import (
	"storefront/entity"
	"storefront/repository"
)

type CustomerService struct {
	UserRepo  *repository.UserRepository
	OrderRepo *repository.OrderRepository
}

func NewCustomerService(ur *repository.UserRepository, or *repository.OrderRepository) *CustomerService {
	return &CustomerService{UserRepo: ur, OrderRepo: or}
}

type CustomerListOut struct {
	Items []entity.User `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (s *CustomerService) List(search string, page, limit int) (*CustomerListOut, error) {
	items, total, err := s.UserRepo.ListCustomers(search, page, limit)
	if err != nil {
		return nil, err
	}
	return &CustomerListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

type CustomerProfileOut struct {
	User   *entity.User              `json:"user"`
	Orders []repository.OrderSummary `json:"orders"`
}

func (s *CustomerService) Profile(userID uint) (*CustomerProfileOut, error) {
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	orders, err := s.OrderRepo.ListOrdersForUser(userID, 20)
	if err != nil {
		return nil, err
	}
	return &CustomerProfileOut{User: u, Orders: orders}, nil
}
