package services

import (
	"strconv"
	"strings"

	"storefront/entity"
	"storefront/repository"
)

type BuilderService struct {
	Repo *repository.BuilderRepository
}

func NewBuilderService(repo *repository.BuilderRepository) *BuilderService {
	return &BuilderService{Repo: repo}
}

// BuilderConfigOut is the client-facing builder config: which categories
// route to the step builder, and whether the base item's own price counts.
type BuilderConfigOut struct {
	Enabled              bool   `json:"enabled"`
	BuilderCategoryIDs   []uint `json:"builderCategoryIds"`
	IncludeBaseItemPrice bool   `json:"includeBaseItemPrice"`
}

func (s *BuilderService) GetConfig() (*BuilderConfigOut, error) {
	setting, err := s.Repo.GetSetting()
	if err != nil {
		return nil, err
	}
	out := &BuilderConfigOut{
		Enabled:              setting.Enabled,
		IncludeBaseItemPrice: setting.IncludeBaseItemPrice,
		BuilderCategoryIDs:   []uint{},
	}
	for _, part := range strings.Split(setting.BuilderCategoryIDs, ",") {
		if id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32); err == nil {
			out.BuilderCategoryIDs = append(out.BuilderCategoryIDs, uint(id))
		}
	}
	return out, nil
}

func (s *BuilderService) GetSteps() ([]entity.BuilderStep, error) {
	return s.Repo.FindSteps()
}

// ---------------- admin ----------------

type BuilderSettingIn struct {
	Enabled              bool   `json:"enabled"`
	BuilderCategoryIDs   []uint `json:"builderCategoryIds"`
	IncludeBaseItemPrice bool   `json:"includeBaseItemPrice"`
}

func (s *BuilderService) SaveSetting(in *BuilderSettingIn) error {
	parts := make([]string, 0, len(in.BuilderCategoryIDs))
	for _, id := range in.BuilderCategoryIDs {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return s.Repo.SaveSetting(&entity.BuilderSetting{
		Enabled:              in.Enabled,
		BuilderCategoryIDs:   strings.Join(parts, ","),
		IncludeBaseItemPrice: in.IncludeBaseItemPrice,
	})
}

func (s *BuilderService) CreateStep(st *entity.BuilderStep) error { return s.Repo.CreateStep(st) }
func (s *BuilderService) UpdateStep(st *entity.BuilderStep) error { return s.Repo.UpdateStep(st) }
func (s *BuilderService) DeleteStep(id uint) error { return s.Repo.DeleteStep(id) }
func (s *BuilderService) CreateStepItem(it *entity.BuilderStepItem) error {
	return s.Repo.CreateStepItem(it)
}
func (s *BuilderService) UpdateStepItem(it *entity.BuilderStepItem) error {
	return s.Repo.UpdateStepItem(it)
}
func (s *BuilderService) DeleteStepItem(id uint) error { return s.Repo.DeleteStepItem(id) }
