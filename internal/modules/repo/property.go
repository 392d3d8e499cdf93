package repo

import (
	"context"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PropertyFilter holds the optional list predicates. Zero values mean
// "no constraint"; Location is a case-insensitive substring match.
type PropertyFilter struct {
	Type     string
	Location string
	Status   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type PropertyRepo interface {
	Create(ctx context.Context, p *model.Property) error
	Get(ctx context.Context, id uint) (*model.Property, error)
	List(ctx context.Context, f PropertyFilter, page paging.Params) ([]model.Property, int64, error)
	Update(ctx context.Context, id uint, cols map[string]any, images *[]model.PropertyImage) (*model.Property, error)
	Delete(ctx context.Context, id uint) error
}

type propertyRepo struct{ db *gorm.DB }

func NewPropertyRepo(db *gorm.DB) PropertyRepo {
	return &propertyRepo{db: db}
}

// Create inserts the property and any images as one unit. GORM wraps the
// association insert in a single transaction, so a partial write is never
// observable.
func (r *propertyRepo) Create(ctx context.Context, p *model.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *propertyRepo) Get(ctx context.Context, id uint) (*model.Property, error) {
	var p model.Property
	if err := r.db.WithContext(ctx).Preload("Images").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func propertyFilterScope(f PropertyFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Type != "" {
			db = db.Where("type = ?", f.Type)
		}
		if f.Location != "" {
			db = db.Where("location ILIKE ?", "%"+f.Location+"%")
		}
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.MinPrice != nil {
			db = db.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("price <= ?", *f.MaxPrice)
		}
		return db
	}
}

// List returns one page ordered by id descending plus the filtered total.
func (r *propertyRepo) List(ctx context.Context, f PropertyFilter, page paging.Params) ([]model.Property, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Property{}).
		Scopes(propertyFilterScope(f)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.Property
	err := r.db.WithContext(ctx).Scopes(propertyFilterScope(f)).
		Preload("Images").
		Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&items).Error
	return items, total, err
}

// Update applies the column set and, when images is non-nil, atomically
// replaces the whole image collection (delete-all-then-insert). A nil
// images pointer leaves the collection untouched.
func (r *propertyRepo) Update(ctx context.Context, id uint, cols map[string]any, images *[]model.PropertyImage) (*model.Property, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Property
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			return err
		}
		if len(cols) > 0 {
			if err := tx.Model(&model.Property{ID: id}).Updates(cols).Error; err != nil {
				return err
			}
		}
		if images != nil {
			if err := tx.Where("property_id = ?", id).Delete(&model.PropertyImage{}).Error; err != nil {
				return err
			}
			if len(*images) > 0 {
				replacement := make([]model.PropertyImage, len(*images))
				for i, img := range *images {
					replacement[i] = model.PropertyImage{PropertyID: id, URL: img.URL}
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

// Delete removes the property and its images and nulls the property
// reference on any inquiries, all in one transaction. Inquiries outlive
// the listing they were about.
func (r *propertyRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Inquiry{}).
			Where("property_id = ?", id).
			Update("property_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&model.PropertyImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Property{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
