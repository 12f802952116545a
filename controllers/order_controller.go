package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"quickbite/pkg/resp"
	"quickbite/services"
	"quickbite/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

func currentActor(c *gin.Context) services.Actor {
	return services.Actor{
		UserID:  utils.CurrentUserID(c),
		IsAdmin: utils.CurrentIsAdmin(c),
	}
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	items, err := oc.Svc.ListForUser(currentActor(c), 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/create — cart review before checkout
func (oc *OrderController) ReviewCheckout(c *gin.Context) {
	review, err := oc.Svc.ReviewCheckout(currentActor(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, review)
}

// POST /orders/create — checkout รับได้ทั้ง JSON และ form
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.CreateOrder(currentActor(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{
		"id":          order.ID,
		"status":      order.Status,
		"total_price": order.TotalPrice,
	})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "not found")
		return
	}

	detail, err := oc.Svc.DetailForUser(currentActor(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /orders/:id/cancel — owner path, PENDING only
func (oc *OrderController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "not found")
		return
	}

	order, err := oc.Svc.RequestCancellation(uint(id), currentActor(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": order.ID, "status": order.Status})
}
