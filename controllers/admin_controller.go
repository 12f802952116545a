package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickbite/entity"
	"quickbite/pkg/resp"
	"quickbite/services"
)

type AdminController struct{ Svc *services.OrderService }

func NewAdminController(svc *services.OrderService) *AdminController {
	return &AdminController{Svc: svc}
}

// GET /admin/orders?status=
func (ac *AdminController) Orders(c *gin.Context) {
	orders, err := ac.Svc.ListAll(currentActor(c), c.Query("status"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /admin/orders/:id
func (ac *AdminController) OrderDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}

	detail, err := ac.Svc.DetailForAdmin(currentActor(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /admin/stats
func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.Svc.Stats(currentActor(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	out := gin.H{
		"total_orders":  stats.TotalOrders,
		"total_revenue": stats.TotalRevenue,
	}
	for status, count := range stats.ByStatus {
		out[string(status)] = count
	}
	c.JSON(http.StatusOK, out)
}

// POST /admin/orders/:id/status — รับได้ทั้ง JSON และ form, status ไม่สน case
func (ac *AdminController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}

	var req struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.ShouldBind(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	order, err := ac.Svc.RequestTransition(uint(id), status, currentActor(c))
	if err != nil {
		switch err {
		case services.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		case services.ErrForbidden:
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "forbidden"})
		case services.ErrSameStatus:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status unchanged"})
		case services.ErrInvalidTransition:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot transition to " + string(status)})
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status updated",
		"order":   gin.H{"id": order.ID, "status": order.Status},
	})
}
