package service

import (
	"context"
	"errors"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/modules/repo"
	"github.com/brickfolio/property-portal/internal/pkg/optional"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
	"gorm.io/gorm"
)

type PortfolioService interface {
	Create(ctx context.Context, in CreatePortfolioProjectInput) (*model.PortfolioProject, error)
	Get(ctx context.Context, id uint) (*model.PortfolioProject, error)
	List(ctx context.Context, page paging.Params) (*paging.Page[model.PortfolioProject], error)
	Update(ctx context.Context, id uint, in UpdatePortfolioProjectInput) (*model.PortfolioProject, error)
	Delete(ctx context.Context, id uint) error
}

type portfolioService struct {
	r repo.PortfolioProjectRepo
}

func NewPortfolioService(r repo.PortfolioProjectRepo) PortfolioService {
	return &portfolioService{r: r}
}

type CreatePortfolioProjectInput struct {
	Title       string
	Description *string
}

func (s *portfolioService) Create(ctx context.Context, in CreatePortfolioProjectInput) (*model.PortfolioProject, error) {
	project := &model.PortfolioProject{
		Title:       in.Title,
		Description: in.Description,
	}
	if err := s.r.Create(ctx, project); err != nil {
		return nil, err
	}
	if project.ServiceProjects == nil {
		project.ServiceProjects = []model.ServiceProject{}
	}
	return project, nil
}

func (s *portfolioService) Get(ctx context.Context, id uint) (*model.PortfolioProject, error) {
	project, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *portfolioService) List(ctx context.Context, page paging.Params) (*paging.Page[model.PortfolioProject], error) {
	page = page.Normalize()
	items, total, err := s.r.List(ctx, page)
	if err != nil {
		return nil, err
	}
	out := paging.NewPage(items, total, page)
	return &out, nil
}

type UpdatePortfolioProjectInput struct {
	Title       optional.Field[string] `json:"title"`
	Description optional.Field[string] `json:"description"`
}

func (s *portfolioService) Update(ctx context.Context, id uint, in UpdatePortfolioProjectInput) (*model.PortfolioProject, error) {
	cols := map[string]any{}
	if err := setRequired(cols, "title", in.Title); err != nil {
		return nil, err
	}
	setNullable(cols, "description", in.Description)

	project, err := s.r.Update(ctx, id, cols)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *portfolioService) Delete(ctx context.Context, id uint) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
