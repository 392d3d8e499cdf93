package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brickfolio/property-portal/internal/modules/serializer"
	"github.com/brickfolio/property-portal/internal/modules/service"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
)

type InquiryHandler struct {
	svc service.InquiryService
}

func NewInquiryHandler(s service.InquiryService) *InquiryHandler {
	return &InquiryHandler{svc: s}
}

type CreateInquiryReq struct {
	PropertyID *uint  `json:"property_id"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// Create records a visitor inquiry; no authentication required.
func (h *InquiryHandler) Create(c *gin.Context) {
	req := CreateInquiryReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	inquiry, err := h.svc.Create(c.Request.Context(), service.CreateInquiryInput{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Phone:      req.Phone,
		Message:    req.Message,
	})
	if err != nil {
		abortWithServiceErr(c, err, "Property not found")
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

type ListInquiriesReq struct {
	paging.Params
	PropertyID *uint `form:"property_id"`
}

func (h *InquiryHandler) List(c *gin.Context) {
	req := ListInquiriesReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	out, err := h.svc.List(c.Request.Context(), service.ListInquiriesInput{
		PropertyID: req.PropertyID,
		Page:       req.Params,
	})
	if err != nil {
		abortWithServiceErr(c, err, "")
		return
	}

	c.JSON(http.StatusOK, out)
}
