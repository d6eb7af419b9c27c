package routes

import (
	"servicoperto-backend/handlers/plans"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func PlansRoutes(r *gin.Engine, database *gorm.DB) {
	h := plans.NewHandler(database)
	r.GET("/plans", h.ListPlans)
}
