package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brickfolio/property-portal/internal/modules/serializer"
	"github.com/brickfolio/property-portal/internal/modules/service"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
)

type ServiceProjectHandler struct {
	svc service.ServiceProjectService
}

func NewServiceProjectHandler(s service.ServiceProjectService) *ServiceProjectHandler {
	return &ServiceProjectHandler{svc: s}
}

func (h *ServiceProjectHandler) List(c *gin.Context) {
	page := paging.Params{}
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	out, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		abortWithServiceErr(c, err, "")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *ServiceProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithServiceErr(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusOK, svc)
}

type CreateServiceProjectReq struct {
	PortfolioProjectID uint                 `json:"portfolio_project_id" binding:"required"`
	Title              string               `json:"title" binding:"required"`
	Description        *string              `json:"description"`
	Location           *string              `json:"location"`
	ContactEmail       *string              `json:"contact_email" binding:"omitempty,email"`
	ContactPhone       *string              `json:"contact_phone"`
	Images             []service.ImageInput `json:"images" binding:"omitempty,dive"`
}

func (h *ServiceProjectHandler) Create(c *gin.Context) {
	req := CreateServiceProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	svc, err := h.svc.Create(c.Request.Context(), service.CreateServiceProjectInput{
		PortfolioProjectID: req.PortfolioProjectID,
		Title:              req.Title,
		Description:        req.Description,
		Location:           req.Location,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		Images:             req.Images,
	})
	if err != nil {
		abortWithServiceErr(c, err, "Portfolio project not found")
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	in := service.UpdateServiceProjectInput{}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	svc, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		abortWithServiceErr(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceErr(c, err, "Service not found")
		return
	}

	c.Status(http.StatusNoContent)
}
