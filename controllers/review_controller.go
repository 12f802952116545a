package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"quickbite/pkg/resp"
	"quickbite/services"
	"quickbite/utils"
)

type ReviewController struct {
	Svc  *services.CatalogService
	Auth *services.AuthService
}

func NewReviewController(svc *services.CatalogService, auth *services.AuthService) *ReviewController {
	return &ReviewController{Svc: svc, Auth: auth}
}

// GET /reviews/restaurants/:id
func (rc *ReviewController) List(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	reviews, avg, err := rc.Svc.Reviews(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"restaurant_id":  id,
		"reviews":        reviews,
		"average_rating": avg,
	})
}

// POST /reviews/restaurants/:id
func (rc *ReviewController) Create(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var req services.AddReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := rc.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := rc.Svc.AddReview(c.Request.Context(), uint(id), user, &req); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "review submitted"})
}
