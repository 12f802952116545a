package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"quickbite/entity"
	"quickbite/pkg/resp"
	"quickbite/services"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(svc *services.CatalogService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menu/restaurants/:id/items
func (mc *MenuController) Items(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, items, err := mc.Svc.MenuItems(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	byCategory := make(map[string][]entity.MenuItem)
	for _, it := range items {
		cat := it.Category
		if cat == "" {
			cat = "Other"
		}
		byCategory[cat] = append(byCategory[cat], it)
	}

	resp.OK(c, gin.H{
		"restaurant_id":   rest.ID,
		"restaurant_name": rest.Name,
		"items":           items,
		"by_category":     byCategory,
	})
}
