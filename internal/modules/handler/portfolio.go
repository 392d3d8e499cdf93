package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brickfolio/property-portal/internal/modules/serializer"
	"github.com/brickfolio/property-portal/internal/modules/service"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
)

type PortfolioHandler struct {
	svc service.PortfolioService
}

func NewPortfolioHandler(s service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: s}
}

func (h *PortfolioHandler) List(c *gin.Context) {
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

func (h *PortfolioHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithServiceErr(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}

type CreatePortfolioProjectReq struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	req := CreatePortfolioProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	project, err := h.svc.Create(c.Request.Context(), service.CreatePortfolioProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		abortWithServiceErr(c, err, "")
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	in := service.UpdatePortfolioProjectInput{}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		abortWithServiceErr(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceErr(c, err, "Project not found")
		return
	}

	c.Status(http.StatusNoContent)
}
