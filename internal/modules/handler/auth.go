package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brickfolio/property-portal/internal/middleware"
	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/modules/serializer"
	"github.com/brickfolio/property-portal/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

// LoginReq is form-encoded: username carries the email, OAuth2
// password-flow style.
type LoginReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithServiceErr(c, err, "")
		return
	}

	c.JSON(http.StatusOK, serializer.NewTokenResponse(token))
}

type CreateUserReq struct {
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role" binding:"required,oneof=admin staff"`
	Password string  `json:"password" binding:"required"`
}

// CreateUser provisions an account. Open only for the very first user;
// afterwards an admin token is required (policy enforced in the service).
func (h *AuthHandler) CreateUser(c *gin.Context) {
	req := CreateUserReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), middleware.CurrentUser(c), service.CreateUserInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     model.Role(req.Role),
		Password: req.Password,
	})
	if err != nil {
		abortWithServiceErr(c, err, "")
		return
	}

	c.JSON(http.StatusOK, user)
}
