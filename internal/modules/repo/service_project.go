package repo

import (
	"context"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
	"gorm.io/gorm"
)

type ServiceProjectRepo interface {
	Create(ctx context.Context, s *model.ServiceProject) error
	Get(ctx context.Context, id uint) (*model.ServiceProject, error)
	List(ctx context.Context, page paging.Params) ([]model.ServiceProject, int64, error)
	Update(ctx context.Context, id uint, cols map[string]any, images *[]model.PortfolioImage) (*model.ServiceProject, error)
	Delete(ctx context.Context, id uint) error
}

type serviceProjectRepo struct{ db *gorm.DB }

func NewServiceProjectRepo(db *gorm.DB) ServiceProjectRepo {
	return &serviceProjectRepo{db: db}
}

// Create inserts the service project plus images in one transaction. The
// parent portfolio project is checked first so a dangling FK surfaces as
// ErrRecordNotFound instead of a constraint violation.
func (r *serviceProjectRepo) Create(ctx context.Context, s *model.ServiceProject) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent model.PortfolioProject
		if err := tx.Select("id").First(&parent, s.PortfolioProjectID).Error; err != nil {
			return err
		}
		return tx.Create(s).Error
	})
}

func (r *serviceProjectRepo) Get(ctx context.Context, id uint) (*model.ServiceProject, error) {
	var s model.ServiceProject
	if err := r.db.WithContext(ctx).Preload("Images").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceProjectRepo) List(ctx context.Context, page paging.Params) ([]model.ServiceProject, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.ServiceProject{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.ServiceProject
	err := r.db.WithContext(ctx).
		Preload("Images").
		Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&items).Error
	return items, total, err
}

func (r *serviceProjectRepo) Update(ctx context.Context, id uint, cols map[string]any, images *[]model.PortfolioImage) (*model.ServiceProject, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.ServiceProject
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			return err
		}
		if len(cols) > 0 {
			if err := tx.Model(&model.ServiceProject{ID: id}).Updates(cols).Error; err != nil {
				return err
			}
		}
		if images != nil {
			if err := tx.Where("service_project_id = ?", id).Delete(&model.PortfolioImage{}).Error; err != nil {
				return err
			}
			if len(*images) > 0 {
				replacement := make([]model.PortfolioImage, len(*images))
				for i, img := range *images {
					replacement[i] = model.PortfolioImage{ServiceProjectID: id, URL: img.URL}
				}
				if err := tx.Create(&replacement).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *serviceProjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_project_id = ?", id).Delete(&model.PortfolioImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ServiceProject{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
