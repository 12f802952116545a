package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"quickbite/pkg/resp"
	"quickbite/services"
)

// handleServiceError maps the service error taxonomy onto HTTP. Anything
// unrecognized is a persistence failure: logged, generic 500 out.
func handleServiceError(c *gin.Context, err error) {
	var fieldErrs services.ValidationErrors
	switch {
	case errors.As(err, &fieldErrs):
		resp.ValidationFailed(c, fieldErrs)
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrSameStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMultiRestaurantCart),
		errors.Is(err, services.ErrRestaurantNotFound):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
