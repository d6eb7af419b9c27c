package routes

import (
	"servicoperto-backend/handlers/leads"
	"servicoperto-backend/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func LeadsRoutes(r *gin.Engine, database *gorm.DB, ledger *storage.LeadLedger) {
	h := leads.NewHandler(database, ledger)
	r.POST("/leads", h.CreateLead)
	r.GET("/admin/leads", h.ListLeads)
}
