package routes

import (
	"servicoperto-backend/handlers/webhooks"

	"github.com/gin-gonic/gin"
)

func WebhooksRoutes(r *gin.Engine) {
	r.POST("/webhooks/store", webhooks.HandleStoreNotification)
}
