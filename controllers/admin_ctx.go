package controllers

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"github.com/brianneil238/BikeRentalWebsite-sub000/utils"
	"github.com/gin-gonic/gin"
)

// adminFrom loads the acting admin for the activity log. Nil when the
// account vanished mid-session; the action still proceeds.
func adminFrom(c *gin.Context, users *repository.UserRepository) *entity.User {
	admin, err := users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		return nil
	}
	return admin
}
