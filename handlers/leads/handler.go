package leads

import (
	"net/http"

	"servicoperto-backend/models"
	"servicoperto-backend/storage"
	"servicoperto-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateResponse is the outcome of recording a lead. Fallback is set when the
// record went to the ledger file instead of the database.
// @Description Outcome of recording a lead
type CreateResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	Fallback bool   `json:"fallback,omitempty"`
}

type Handler struct {
	db     *gorm.DB
	ledger *storage.LeadLedger
}

func NewHandler(db *gorm.DB, ledger *storage.LeadLedger) *Handler {
	return &Handler{db: db, ledger: ledger}
}

// CreateLead records a pre-registration lead. Lead capture must not block on
// store health: when the database write fails, the lead goes to the fallback
// ledger and the response flags it.
// @Summary Record a lead
// @Description Record a pre-registration lead, falling back to the ledger file when the store is unavailable
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body models.LeadCreate true "Lead information"
// @Success 200 {object} CreateResponse
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Failed to save lead"
// @Router /leads [post]
func (h *Handler) CreateLead(c *gin.Context) {
	var input models.LeadCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	lead := models.Lead{
		Name:      input.Name,
		Whatsapp:  input.Whatsapp,
		Type:      input.Type,
		Specialty: input.Specialty,
	}
	if err := h.db.Create(&lead).Error; err != nil {
		utils.LogError(err, "Error saving lead, using the fallback ledger")
		saved, ferr := h.ledger.Append(input)
		if ferr != nil {
			utils.LogError(ferr, "Error saving lead to the fallback ledger")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lead"})
			return
		}
		c.JSON(http.StatusOK, CreateResponse{Success: true, ID: saved.ID, Fallback: true})
		return
	}

	c.JSON(http.StatusOK, CreateResponse{Success: true, ID: lead.ID})
}

// ListLeads serves the admin listing, most recent first. A store failure
// falls back to the ledger file instead of erroring.
// @Summary List leads
// @Description List recorded leads for the admin dashboard, most recent first
// @Tags admin
// @Produce json
// @Success 200 {array} models.Lead
// @Router /admin/leads [get]
func (h *Handler) ListLeads(c *gin.Context) {
	var leads []models.Lead
	if err := h.db.Order("created_at DESC").Find(&leads).Error; err != nil {
		utils.LogError(err, "Error listing leads, serving the fallback ledger")
		c.JSON(http.StatusOK, h.ledger.ListAll())
		return
	}
	c.JSON(http.StatusOK, leads)
}
