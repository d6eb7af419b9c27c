package webhooks

import (
	"io"
	"net/http"

	"servicoperto-backend/utils"

	"github.com/gin-gonic/gin"
)

// HandleStoreNotification acknowledges asynchronous store notifications.
// The event is logged and acked so the store stops retrying.
//
// TODO: dispatch RTDN/App Store event types and verify signatures once the
// notification contract is settled.
// @Summary Receive a store notification
// @Description Acknowledge an asynchronous store notification (Real Time Developer Notifications)
// @Tags webhooks
// @Accept json
// @Success 200
// @Failure 503 {object} map[string]string "error: Could not read the request body"
// @Router /webhooks/store [post]
func HandleStoreNotification(c *gin.Context) {
	const maxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not read the request body"})
		return
	}

	utils.LogInfo("Store webhook received: " + string(payload))
	c.Status(http.StatusOK)
}
