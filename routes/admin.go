package routes

import (
	"servicoperto-backend/handlers/admin"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AdminRoutes(r *gin.Engine, database *gorm.DB) {
	h := admin.NewHandler(database)
	adminRoutes := r.Group("/admin")
	{
		adminRoutes.GET("/stats", h.GetStats)
		adminRoutes.GET("/users", h.ListUsers)
	}
}
