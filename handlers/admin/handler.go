package admin

import (
	"net/http"
	"time"

	"servicoperto-backend/models"
	"servicoperto-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RoleCount is the number of accounts holding a role
type RoleCount struct {
	Role  models.Role `json:"role"`
	Count int64       `json:"count"`
}

// RegionCount is the number of providers in a neighborhood
type RegionCount struct {
	Neighborhood string `json:"neighborhood"`
	Count        int64  `json:"count"`
}

// TrendPoint is the number of signups on a day
type TrendPoint struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

type StatsSummary struct {
	TotalUsers int64       `json:"totalUsers"`
	Roles      []RoleCount `json:"roles"`
}

// StatsResponse is the aggregate dashboard payload
// @Description Aggregate dashboard payload
type StatsResponse struct {
	Summary StatsSummary  `json:"summary"`
	Regions []RegionCount `json:"regions"`
	Trends  []TrendPoint  `json:"trends"`
}

// UserRow is one account in the admin listing; provider columns are null for
// customers.
type UserRow struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         models.Role `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
	ServiceType  *string     `json:"service_type"`
	Neighborhood *string     `json:"neighborhood"`
}

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func emptyStats() StatsResponse {
	return StatsResponse{
		Summary: StatsSummary{TotalUsers: 0, Roles: []RoleCount{}},
		Regions: []RegionCount{},
		Trends:  []TrendPoint{},
	}
}

// GetStats aggregates the dashboard numbers. Any store failure degrades to
// the zero-valued payload: the admin view stays up over being fresh.
// Neighborhood ordering beyond count-descending is whatever the store
// returns.
// @Summary Aggregate dashboard data
// @Description Aggregate account, region and signup-trend numbers, degrading to zeros when the store is unavailable
// @Tags admin
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /admin/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats := emptyStats()

	if err := h.db.Model(&models.User{}).Count(&stats.Summary.TotalUsers).Error; err != nil {
		utils.LogError(err, "Error loading admin stats, serving the empty dashboard")
		c.JSON(http.StatusOK, emptyStats())
		return
	}

	if err := h.db.Model(&models.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&stats.Summary.Roles).Error; err != nil {
		utils.LogError(err, "Error loading role counts, serving the empty dashboard")
		c.JSON(http.StatusOK, emptyStats())
		return
	}

	if err := h.db.Model(&models.Provider{}).
		Select("neighborhood, COUNT(*) AS count").
		Group("neighborhood").
		Order("COUNT(*) DESC").
		Limit(10).
		Scan(&stats.Regions).Error; err != nil {
		utils.LogError(err, "Error loading region counts, serving the empty dashboard")
		c.JSON(http.StatusOK, emptyStats())
		return
	}

	if err := h.db.Raw(`
		SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*) AS count
		FROM users
		WHERE created_at > NOW() - INTERVAL '30 days'
		GROUP BY day
		ORDER BY day DESC
	`).Scan(&stats.Trends).Error; err != nil {
		utils.LogError(err, "Error loading signup trends, serving the empty dashboard")
		c.JSON(http.StatusOK, emptyStats())
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListUsers lists accounts with their provider profile columns, newest
// first. A store failure degrades to an empty list.
// @Summary List accounts
// @Description List accounts joined with provider profiles, newest first, degrading to an empty list when the store is unavailable
// @Tags admin
// @Produce json
// @Success 200 {array} UserRow
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	rows := []UserRow{}
	if err := h.db.Table("users u").
		Select("u.id, u.name, u.email, u.role, u.created_at, p.service_type, p.neighborhood").
		Joins("LEFT JOIN providers p ON u.id = p.user_id").
		Order("u.created_at DESC").
		Scan(&rows).Error; err != nil {
		utils.LogError(err, "Error listing users, serving an empty list")
		c.JSON(http.StatusOK, []UserRow{})
		return
	}
	c.JSON(http.StatusOK, rows)
}
