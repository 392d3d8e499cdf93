package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/modules/service"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
)

type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) Create(ctx context.Context, in service.CreateInquiryInput) (*model.Inquiry, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryService) List(ctx context.Context, in service.ListInquiriesInput) (*paging.Page[model.Inquiry], error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paging.Page[model.Inquiry]), args.Error(1)
}

func setupInquiryRouter(h *InquiryHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/inquiries", h.Create)
	r.GET("/inquiries", h.List)
	return r
}

func TestInquiryHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockInquiryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "general inquiry without a property",
			body: `{"name":"Asha","phone":"9999999999","message":"Call me back"}`,
			setup: func(svc *MockInquiryService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateInquiryInput) bool {
					return in.PropertyID == nil && in.Name == "Asha"
				})).Return(&model.Inquiry{ID: 1, Name: "Asha"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "inquiry against a missing property",
			body: `{"property_id":404,"name":"Asha","phone":"9999999999","message":"Is it available?"}`,
			setup: func(svc *MockInquiryService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"detail":"Property not found"`,
		},
		{
			name:           "missing message rejected",
			body:           `{"name":"Asha","phone":"9999999999"}`,
			setup:          func(svc *MockInquiryService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockInquiryService{}
			tt.setup(mockService)

			router := setupInquiryRouter(NewInquiryHandler(mockService))
			req := httptest.NewRequest("POST", "/inquiries", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestInquiryHandler_List(t *testing.T) {
	t.Run("property filter forwarded", func(t *testing.T) {
		mockService := &MockInquiryService{}
		mockService.On("List", mock.Anything, mock.MatchedBy(func(in service.ListInquiriesInput) bool {
			return in.PropertyID != nil && *in.PropertyID == 12
		})).Return(&paging.Page[model.Inquiry]{
			Items:    []model.Inquiry{{ID: 1, Name: "Asha"}},
			Total:    1,
			Page:     1,
			PageSize: 10,
		}, nil)

		router := setupInquiryRouter(NewInquiryHandler(mockService))
		req := httptest.NewRequest("GET", "/inquiries?property_id=12", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
		mockService.AssertExpectations(t)
	})
}
