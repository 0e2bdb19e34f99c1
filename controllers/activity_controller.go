package controllers

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/pkg/resp"
	"github.com/brianneil238/BikeRentalWebsite-sub000/services"
	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Service *services.ActivityService
}

func NewActivityController(s *services.ActivityService) *ActivityController {
	return &ActivityController{Service: s}
}

// GET /api/admin/activity: ?page= &limit=
func (ctl *ActivityController) List(c *gin.Context) {
	page, limit := parsePage(c)
	rows, total, err := ctl.Service.List(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows, "total": total, "page": page, "limit": limit})
}
