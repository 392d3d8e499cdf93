package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/pkg/optional"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
)

type MockServiceProjectRepo struct {
	mock.Mock
}

func (m *MockServiceProjectRepo) Create(ctx context.Context, s *model.ServiceProject) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceProjectRepo) Get(ctx context.Context, id uint) (*model.ServiceProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceProject), args.Error(1)
}

func (m *MockServiceProjectRepo) List(ctx context.Context, page paging.Params) ([]model.ServiceProject, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.ServiceProject), args.Get(1).(int64), args.Error(2)
}

func (m *MockServiceProjectRepo) Update(ctx context.Context, id uint, cols map[string]any, images *[]model.PortfolioImage) (*model.ServiceProject, error) {
	args := m.Called(ctx, id, cols, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceProject), args.Error(1)
}

func (m *MockServiceProjectRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestServiceProjectService_Create(t *testing.T) {
	t.Run("missing parent project maps to not found", func(t *testing.T) {
		r := &MockServiceProjectRepo{}
		r.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

		svc := NewServiceProjectService(r)
		_, err := svc.Create(context.Background(), CreateServiceProjectInput{
			PortfolioProjectID: 99,
			Title:              "Orphan",
		})

		assert.ErrorIs(t, err, ErrNotFound)
		r.AssertExpectations(t)
	})
}

func TestServiceProjectService_Update(t *testing.T) {
	t.Run("nullable columns accept explicit null", func(t *testing.T) {
		r := &MockServiceProjectRepo{}
		r.On("Update", mock.Anything, uint(10), mock.MatchedBy(func(cols map[string]any) bool {
			v, ok := cols["contact_email"]
			if !ok {
				return false
			}
			ptr, isPtr := v.(*string)
			return isPtr && ptr == nil && len(cols) == 1
		}), (*[]model.PortfolioImage)(nil)).Return(&model.ServiceProject{ID: 10}, nil)

		svc := NewServiceProjectService(r)
		_, err := svc.Update(context.Background(), 10, UpdateServiceProjectInput{
			ContactEmail: optional.Null[string](),
		})

		assert.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("title cannot be nulled", func(t *testing.T) {
		r := &MockServiceProjectRepo{}

		svc := NewServiceProjectService(r)
		_, err := svc.Update(context.Background(), 10, UpdateServiceProjectInput{
			Title: optional.Null[string](),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
		r.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("image replacement converts urls to rows", func(t *testing.T) {
		r := &MockServiceProjectRepo{}
		r.On("Update", mock.Anything, uint(10), map[string]any{},
			&[]model.PortfolioImage{{URL: "https://cdn.brickfolio.com/new.jpg"}},
		).Return(&model.ServiceProject{ID: 10}, nil)

		svc := NewServiceProjectService(r)
		_, err := svc.Update(context.Background(), 10, UpdateServiceProjectInput{
			Images: optional.Of([]ImageInput{{URL: "https://cdn.brickfolio.com/new.jpg"}}),
		})

		assert.NoError(t, err)
		r.AssertExpectations(t)
	})
}
