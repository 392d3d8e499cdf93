package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/brickfolio/property-portal/internal/modules/serializer"
	"github.com/brickfolio/property-portal/internal/modules/service"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
)

type PropertyHandler struct {
	svc service.PropertyService
}

func NewPropertyHandler(s service.PropertyService) *PropertyHandler {
	return &PropertyHandler{svc: s}
}

type ListPropertiesReq struct {
	paging.Params
	Type     string   `form:"type"`
	Location string   `form:"location"`
	Status   string   `form:"status"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
}

// List returns a filtered page of properties, newest first.
func (h *PropertyHandler) List(c *gin.Context) {
	req := ListPropertiesReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	in := service.ListPropertiesInput{
		Type:     req.Type,
		Location: req.Location,
		Status:   req.Status,
		Page:     req.Params,
	}
	if req.MinPrice != nil {
		min := decimal.NewFromFloat(*req.MinPrice)
		in.MinPrice = &min
	}
	if req.MaxPrice != nil {
		max := decimal.NewFromFloat(*req.MaxPrice)
		in.MaxPrice = &max
	}

	page, err := h.svc.List(c.Request.Context(), in)
	if err != nil {
		abortWithServiceErr(c, err, "")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	prop, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithServiceErr(c, err, "Property not found")
		return
	}

	c.JSON(http.StatusOK, prop)
}

type CreatePropertyReq struct {
	Name     string               `json:"name" binding:"required"`
	Type     string               `json:"type" binding:"required"`
	Price    *decimal.Decimal     `json:"price" binding:"required"`
	Location string               `json:"location" binding:"required"`
	Status   string               `json:"status" binding:"required"`
	Images   []service.ImageInput `json:"images" binding:"omitempty,dive"`
}

func (h *PropertyHandler) Create(c *gin.Context) {
	req := CreatePropertyReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	prop, err := h.svc.Create(c.Request.Context(), service.CreatePropertyInput{
		Name:     req.Name,
		Type:     req.Type,
		Price:    *req.Price,
		Location: req.Location,
		Status:   req.Status,
		Images:   req.Images,
	})
	if err != nil {
		abortWithServiceErr(c, err, "")
		return
	}

	c.JSON(http.StatusOK, prop)
}

// Update applies a partial update; only fields present in the body change,
// and a present images list (even empty) replaces the whole collection.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	in := service.UpdatePropertyInput{}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	prop, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		abortWithServiceErr(c, err, "Property not found")
		return
	}

	c.JSON(http.StatusOK, prop)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceErr(c, err, "Property not found")
		return
	}

	c.Status(http.StatusNoContent)
}
