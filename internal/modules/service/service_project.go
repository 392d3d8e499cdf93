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

type ServiceProjectService interface {
	Create(ctx context.Context, in CreateServiceProjectInput) (*model.ServiceProject, error)
	Get(ctx context.Context, id uint) (*model.ServiceProject, error)
	List(ctx context.Context, page paging.Params) (*paging.Page[model.ServiceProject], error)
	Update(ctx context.Context, id uint, in UpdateServiceProjectInput) (*model.ServiceProject, error)
	Delete(ctx context.Context, id uint) error
}

type serviceProjectService struct {
	r repo.ServiceProjectRepo
}

func NewServiceProjectService(r repo.ServiceProjectRepo) ServiceProjectService {
	return &serviceProjectService{r: r}
}

type CreateServiceProjectInput struct {
	PortfolioProjectID uint
	Title              string
	Description        *string
	Location           *string
	ContactEmail       *string
	ContactPhone       *string
	Images             []ImageInput
}

func (s *serviceProjectService) Create(ctx context.Context, in CreateServiceProjectInput) (*model.ServiceProject, error) {
	svc := &model.ServiceProject{
		PortfolioProjectID: in.PortfolioProjectID,
		Title:              in.Title,
		Description:        in.Description,
		Location:           in.Location,
		ContactEmail:       in.ContactEmail,
		ContactPhone:       in.ContactPhone,
	}
	for _, img := range in.Images {
		svc.Images = append(svc.Images, model.PortfolioImage{URL: img.URL})
	}
	if err := s.r.Create(ctx, svc); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// the parent portfolio project does not exist
			return nil, ErrNotFound
		}
		return nil, err
	}
	if svc.Images == nil {
		svc.Images = []model.PortfolioImage{}
	}
	return svc, nil
}

func (s *serviceProjectService) Get(ctx context.Context, id uint) (*model.ServiceProject, error) {
	svc, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *serviceProjectService) List(ctx context.Context, page paging.Params) (*paging.Page[model.ServiceProject], error) {
	page = page.Normalize()
	items, total, err := s.r.List(ctx, page)
	if err != nil {
		return nil, err
	}
	out := paging.NewPage(items, total, page)
	return &out, nil
}

type UpdateServiceProjectInput struct {
	Title        optional.Field[string]       `json:"title"`
	Description  optional.Field[string]       `json:"description"`
	Location     optional.Field[string]       `json:"location"`
	ContactEmail optional.Field[string]       `json:"contact_email"`
	ContactPhone optional.Field[string]       `json:"contact_phone"`
	Images       optional.Field[[]ImageInput] `json:"images"`
}

func (s *serviceProjectService) Update(ctx context.Context, id uint, in UpdateServiceProjectInput) (*model.ServiceProject, error) {
	cols := map[string]any{}
	if err := setRequired(cols, "title", in.Title); err != nil {
		return nil, err
	}
	setNullable(cols, "description", in.Description)
	setNullable(cols, "location", in.Location)
	setNullable(cols, "contact_email", in.ContactEmail)
	setNullable(cols, "contact_phone", in.ContactPhone)

	var images *[]model.PortfolioImage
	if urls, ok := in.Images.Value(); ok {
		replacement := make([]model.PortfolioImage, len(urls))
		for i, img := range urls {
			replacement[i] = model.PortfolioImage{URL: img.URL}
		}
		images = &replacement
	}

	svc, err := s.r.Update(ctx, id, cols, images)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *serviceProjectService) Delete(ctx context.Context, id uint) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
