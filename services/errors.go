package services

import (
	"errors"
	"fmt"
	"strings"
)

// Workflow/precondition errors. Controllers map these to HTTP codes and
// user-facing messages; anything else is treated as a persistence failure.
var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrSameStatus          = errors.New("status unchanged")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMultiRestaurantCart = errors.New("cart has more than one restaurant")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
)

// ValidationErrors reports input failures per field.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for field, msg := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
