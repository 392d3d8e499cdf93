package repo

import (
	"context"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
	"gorm.io/gorm"
)

type PortfolioProjectRepo interface {
	Create(ctx context.Context, p *model.PortfolioProject) error
	Get(ctx context.Context, id uint) (*model.PortfolioProject, error)
	List(ctx context.Context, page paging.Params) ([]model.PortfolioProject, int64, error)
	Update(ctx context.Context, id uint, cols map[string]any) (*model.PortfolioProject, error)
	Delete(ctx context.Context, id uint) error
}

type portfolioProjectRepo struct{ db *gorm.DB }

func NewPortfolioProjectRepo(db *gorm.DB) PortfolioProjectRepo {
	return &portfolioProjectRepo{db: db}
}

func (r *portfolioProjectRepo) Create(ctx context.Context, p *model.PortfolioProject) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *portfolioProjectRepo) Get(ctx context.Context, id uint) (*model.PortfolioProject, error) {
	var p model.PortfolioProject
	err := r.db.WithContext(ctx).
		Preload("ServiceProjects.Images").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *portfolioProjectRepo) List(ctx context.Context, page paging.Params) ([]model.PortfolioProject, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.PortfolioProject{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.PortfolioProject
	err := r.db.WithContext(ctx).
		Preload("ServiceProjects.Images").
		Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&items).Error
	return items, total, err
}

func (r *portfolioProjectRepo) Update(ctx context.Context, id uint, cols map[string]any) (*model.PortfolioProject, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PortfolioProject
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			return err
		}
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(&model.PortfolioProject{ID: id}).Updates(cols).Error
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete cascades through the whole aggregate: portfolio images of every
// owned service project, then the service projects, then the project row.
func (r *portfolioProjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"service_project_id IN (?)",
			tx.Model(&model.ServiceProject{}).Select("id").Where("portfolio_project_id = ?", id),
		).Delete(&model.PortfolioImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("portfolio_project_id = ?", id).Delete(&model.ServiceProject{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.PortfolioProject{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
