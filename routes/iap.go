package routes

import (
	"servicoperto-backend/handlers/iap"
	"servicoperto-backend/verification"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func IAPRoutes(r *gin.Engine, database *gorm.DB, verifiers *verification.Registry) {
	h := iap.NewHandler(database, verifiers)
	r.POST("/iap/verify", h.VerifyPurchase)
}
