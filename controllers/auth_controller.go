package controllers

import (
	"github.com/gin-gonic/gin"

	"quickbite/pkg/resp"
	"quickbite/services"
	"quickbite/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Svc.Register(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "email": user.Email, "username": user.Username})
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (ac *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		FirstName  *string `json:"firstName"`
		LastName   *string `json:"lastName"`
		Phone      *string `json:"phone"`
		Address    *string `json:"address"`
		City       *string `json:"city"`
		PostalCode *string `json:"postalCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}

	user, err := ac.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
