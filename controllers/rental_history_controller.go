package controllers

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/pkg/resp"
	"github.com/brianneil238/BikeRentalWebsite-sub000/services"
	"github.com/gin-gonic/gin"
)

type RentalHistoryController struct {
	Service *services.RentalHistoryService
}

func NewRentalHistoryController(s *services.RentalHistoryService) *RentalHistoryController {
	return &RentalHistoryController{Service: s}
}

// GET /api/admin/rental-history: ?q= &page= &limit=
func (ctl *RentalHistoryController) List(c *gin.Context) {
	page, limit := parsePage(c)
	rows, total, err := ctl.Service.Search(c.DefaultQuery("q", ""), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows, "total": total, "page": page, "limit": limit})
}
