package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"quickbite/pkg/resp"
	"quickbite/services"
)

type RestaurantController struct{ Svc *services.CatalogService }

func NewRestaurantController(svc *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// GET /restaurants?city=&search=
func (rc *RestaurantController) List(c *gin.Context) {
	list, cities, err := rc.Svc.ListRestaurants(c.Query("city"), c.Query("search"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": list, "cities": cities})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := rc.Svc.FindRestaurant(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}
