package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite/pkg/resp"
	"quickbite/services"
	"quickbite/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// cartResponse is the body every cart mutation returns.
func cartResponse(c *gin.Context, message string, sum services.CartSummary) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"item_count": sum.ItemCount,
		"cart_total": sum.CartTotal,
	})
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	cart, sum := cc.Svc.Get(utils.CurrentUserID(c))
	resp.OK(c, gin.H{
		"cart":       cart,
		"item_count": sum.ItemCount,
		"cart_total": sum.CartTotal,
	})
}

// POST /cart/add
func (cc *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sum, err := cc.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	cartResponse(c, req.Name+" added to cart", sum)
}

// POST /cart/remove
func (cc *CartController) Remove(c *gin.Context) {
	var req struct {
		RestaurantID string `json:"restaurant_id" binding:"required"`
		ItemID       string `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sum := cc.Svc.Remove(utils.CurrentUserID(c), req.RestaurantID, req.ItemID)
	cartResponse(c, "item removed from cart", sum)
}

// POST /cart/update
func (cc *CartController) Update(c *gin.Context) {
	var req struct {
		RestaurantID string `json:"restaurant_id" binding:"required"`
		ItemID       string `json:"item_id" binding:"required"`
		Quantity     *int   `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sum, err := cc.Svc.UpdateQuantity(utils.CurrentUserID(c), req.RestaurantID, req.ItemID, *req.Quantity)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	cartResponse(c, "cart updated", sum)
}

// POST /cart/clear
func (cc *CartController) Clear(c *gin.Context) {
	sum := cc.Svc.Clear(utils.CurrentUserID(c))
	cartResponse(c, "cart cleared", sum)
}
