package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brickfolio/property-portal/internal/modules/serializer"
	"github.com/brickfolio/property-portal/internal/modules/service"
	"github.com/brickfolio/property-portal/internal/pkg/security"
)

// abortWithServiceErr maps domain errors to transport status codes.
// Anything unrecognized is logged and flattened to an opaque 500.
func abortWithServiceErr(c *gin.Context, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.Err(notFoundDetail))
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, serializer.Err(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr())
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, security.ErrPasswordTooLong):
		c.JSON(http.StatusUnprocessableEntity, serializer.Err(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, serializer.InternalErr(err))
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err))
		return 0, false
	}
	return uint(id), true
}
