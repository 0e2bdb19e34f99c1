package controllers

import (
	"errors"

	"github.com/brianneil238/BikeRentalWebsite-sub000/pkg/resp"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"github.com/brianneil238/BikeRentalWebsite-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController is the admin account-management surface.
type UserController struct {
	Service *services.UserService
	Users   *repository.UserRepository
}

func NewUserController(s *services.UserService, users *repository.UserRepository) *UserController {
	return &UserController{Service: s, Users: users}
}

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=student admin"`
}

type UpdateUserRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        *string `json:"role" binding:"omitempty,oneof=student admin"`
}

// GET /api/admin/users: ?q= &page= &limit=
func (ctl *UserController) List(c *gin.Context) {
	page, limit := parsePage(c)
	users, total, err := ctl.Service.Search(c.DefaultQuery("q", ""), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users, "total": total, "page": page, "limit": limit})
}

// POST /api/admin/users
func (ctl *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Service.Create(req.Email, req.Password, req.FirstName, req.LastName, req.Role, adminFrom(c, ctl.Users))
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, user)
}

// PATCH /api/admin/users/:id
func (ctl *UserController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req UpdateUserRequest
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
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	user, err := ctl.Service.Update(id, updates, adminFrom(c, ctl.Users))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /api/admin/users/:id
func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	err := ctl.Service.Delete(id, adminFrom(c, ctl.Users))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "user not found")
		case errors.Is(err, services.ErrSelfDelete):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
