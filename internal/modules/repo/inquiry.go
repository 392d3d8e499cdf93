package repo

import (
	"context"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
	"gorm.io/gorm"
)

type InquiryRepo interface {
	Create(ctx context.Context, in *model.Inquiry) error
	List(ctx context.Context, propertyID *uint, page paging.Params) ([]model.Inquiry, int64, error)
}

type inquiryRepo struct{ db *gorm.DB }

func NewInquiryRepo(db *gorm.DB) InquiryRepo {
	return &inquiryRepo{db: db}
}

// Create inserts the inquiry. When a property reference is supplied the
// listing must exist; a missing one surfaces as ErrRecordNotFound.
func (r *inquiryRepo) Create(ctx context.Context, in *model.Inquiry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.PropertyID != nil {
			var prop model.Property
			if err := tx.Select("id").First(&prop, *in.PropertyID).Error; err != nil {
				return err
			}
		}
		return tx.Create(in).Error
	})
}

func (r *inquiryRepo) List(ctx context.Context, propertyID *uint, page paging.Params) ([]model.Inquiry, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if propertyID != nil {
			db = db.Where("property_id = ?", *propertyID)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Inquiry{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.Inquiry
	err := r.db.WithContext(ctx).Scopes(scope).
		Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&items).Error
	return items, total, err
}
