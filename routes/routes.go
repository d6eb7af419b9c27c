package routes

import (
	"net/http"
	"time"

	"servicoperto-backend/storage"
	"servicoperto-backend/utils"
	"servicoperto-backend/verification"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRouter(database *gorm.DB, ledger *storage.LeadLedger, verifiers *verification.Registry) *gin.Engine {

	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", healthCheck)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	PlansRoutes(r, database)
	IAPRoutes(r, database, verifiers)
	LeadsRoutes(r, database, ledger)
	AdminRoutes(r, database)
	WebhooksRoutes(r)

	return r
}

// @Summary Health check
// @Description Service status and timestamp
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"service":   "ServicoPerto Backend",
		"timestamp": time.Now(),
	})
}
