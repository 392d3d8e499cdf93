package service

import (
	"context"
	"errors"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/modules/repo"
	"github.com/brickfolio/property-portal/internal/pkg/optional"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PropertyService interface {
	Create(ctx context.Context, in CreatePropertyInput) (*model.Property, error)
	Get(ctx context.Context, id uint) (*model.Property, error)
	List(ctx context.Context, in ListPropertiesInput) (*paging.Page[model.Property], error)
	Update(ctx context.Context, id uint, in UpdatePropertyInput) (*model.Property, error)
	Delete(ctx context.Context, id uint) error
}

type propertyService struct {
	r repo.PropertyRepo
}

func NewPropertyService(r repo.PropertyRepo) PropertyService {
	return &propertyService{r: r}
}

// ImageInput is a child image in create/update payloads.
type ImageInput struct {
	URL string `json:"url" binding:"required"`
}

type CreatePropertyInput struct {
	Name     string
	Type     string
	Price    decimal.Decimal
	Location string
	Status   string
	Images   []ImageInput
}

func (s *propertyService) Create(ctx context.Context, in CreatePropertyInput) (*model.Property, error) {
	prop := &model.Property{
		Name:     in.Name,
		Type:     in.Type,
		Price:    in.Price,
		Location: in.Location,
		Status:   in.Status,
	}
	for _, img := range in.Images {
		prop.Images = append(prop.Images, model.PropertyImage{URL: img.URL})
	}
	if err := s.r.Create(ctx, prop); err != nil {
		return nil, err
	}
	if prop.Images == nil {
		prop.Images = []model.PropertyImage{}
	}
	return prop, nil
}

func (s *propertyService) Get(ctx context.Context, id uint) (*model.Property, error) {
	prop, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return prop, nil
}

type ListPropertiesInput struct {
	Type     string
	Location string
	Status   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     paging.Params
}

func (s *propertyService) List(ctx context.Context, in ListPropertiesInput) (*paging.Page[model.Property], error) {
	page := in.Page.Normalize()
	items, total, err := s.r.List(ctx, repo.PropertyFilter{
		Type:     in.Type,
		Location: in.Location,
		Status:   in.Status,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	}, page)
	if err != nil {
		return nil, err
	}
	out := paging.NewPage(items, total, page)
	return &out, nil
}

// UpdatePropertyInput carries partial-update fields: absent fields are
// untouched, a present images field (even an empty list) replaces the whole
// image collection.
type UpdatePropertyInput struct {
	Name     optional.Field[string]          `json:"name"`
	Type     optional.Field[string]          `json:"type"`
	Price    optional.Field[decimal.Decimal] `json:"price"`
	Location optional.Field[string]          `json:"location"`
	Status   optional.Field[string]          `json:"status"`
	Images   optional.Field[[]ImageInput]    `json:"images"`
}

func (in UpdatePropertyInput) changeSet() (map[string]any, error) {
	cols := map[string]any{}
	for col, f := range map[string]optional.Field[string]{
		"name":     in.Name,
		"type":     in.Type,
		"location": in.Location,
		"status":   in.Status,
	} {
		if err := setRequired(cols, col, f); err != nil {
			return nil, err
		}
	}
	if err := setRequired(cols, "price", in.Price); err != nil {
		return nil, err
	}
	return cols, nil
}

func (s *propertyService) Update(ctx context.Context, id uint, in UpdatePropertyInput) (*model.Property, error) {
	cols, err := in.changeSet()
	if err != nil {
		return nil, err
	}

	var images *[]model.PropertyImage
	if urls, ok := in.Images.Value(); ok {
		replacement := make([]model.PropertyImage, len(urls))
		for i, img := range urls {
			replacement[i] = model.PropertyImage{URL: img.URL}
		}
		images = &replacement
	}

	prop, err := s.r.Update(ctx, id, cols, images)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return prop, nil
}

func (s *propertyService) Delete(ctx context.Context, id uint) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
