package plans

import (
	"net/http"

	"servicoperto-backend/models"
	"servicoperto-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// ListPlans returns the active plans. The built-in catalog is served when the
// table is empty or the store is unreachable, so the pricing page never 500s.
// @Summary List active plans
// @Description List the active subscription plans, falling back to the built-in catalog when the store is unavailable
// @Tags plans
// @Produce json
// @Success 200 {array} models.Plan
// @Router /plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	var plans []models.Plan
	if err := h.db.Where("is_active = ?", true).Find(&plans).Error; err != nil {
		utils.LogError(err, "Error listing plans, serving the built-in catalog")
		c.JSON(http.StatusOK, models.DefaultPlans)
		return
	}
	if len(plans) == 0 {
		c.JSON(http.StatusOK, models.DefaultPlans)
		return
	}
	c.JSON(http.StatusOK, plans)
}
