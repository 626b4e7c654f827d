package services

import (
	"storefront/entity"
	"storefront/repository"
)

type FAQService struct {
	Repo *repository.FAQRepository
}

func NewFAQService(repo *repository.FAQRepository) *FAQService {
	return &FAQService{Repo: repo}
}

func (s *FAQService) Search(query string) ([]entity.FAQ, error) {
	return s.Repo.Search(query)
}

func (s *FAQService) Create(f *entity.FAQ) error { return s.Repo.Create(f) }
func (s *FAQService) Update(f *entity.FAQ) error { return s.Repo.Update(f) }
func (s *FAQService) Delete(id uint) error       { return s.Repo.Delete(id) }
