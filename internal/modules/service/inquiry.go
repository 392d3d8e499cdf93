package service

import (
	"context"
	"errors"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/modules/repo"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
	"gorm.io/gorm"
)

type InquiryService interface {
	Create(ctx context.Context, in CreateInquiryInput) (*model.Inquiry, error)
	List(ctx context.Context, in ListInquiriesInput) (*paging.Page[model.Inquiry], error)
}

type inquiryService struct {
	r repo.InquiryRepo
}

func NewInquiryService(r repo.InquiryRepo) InquiryService {
	return &inquiryService{r: r}
}

type CreateInquiryInput struct {
	PropertyID *uint
	Name       string
	Phone      string
	Message    string
}

func (s *inquiryService) Create(ctx context.Context, in CreateInquiryInput) (*model.Inquiry, error) {
	inquiry := &model.Inquiry{
		PropertyID: in.PropertyID,
		Name:       in.Name,
		Phone:      in.Phone,
		Message:    in.Message,
	}
	if err := s.r.Create(ctx, inquiry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// the referenced property does not exist
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inquiry, nil
}

type ListInquiriesInput struct {
	PropertyID *uint
	Page       paging.Params
}

func (s *inquiryService) List(ctx context.Context, in ListInquiriesInput) (*paging.Page[model.Inquiry], error) {
	page := in.Page.Normalize()
	items, total, err := s.r.List(ctx, in.PropertyID, page)
	if err != nil {
		return nil, err
	}
	out := paging.NewPage(items, total, page)
	return &out, nil
}
