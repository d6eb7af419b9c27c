package iap

import (
	"errors"
	"net/http"

	"servicoperto-backend/subscription"
	"servicoperto-backend/utils"
	"servicoperto-backend/verification"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VerifyRequest is the request body for purchase verification
// @Description Request body for purchase verification
type VerifyRequest struct {
	Platform   string `json:"platform" binding:"required" example:"GOOGLE"`
	ProductID  string `json:"productId" binding:"required" example:"com.servicoperto.pro"`
	Receipt    string `json:"receipt" binding:"required"`
	ProviderID string `json:"providerId" binding:"required"`
}

// VerifyResponse is the outcome of purchase verification
// @Description Outcome of purchase verification
type VerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Handler struct {
	activator *subscription.Activator
	verifiers *verification.Registry
}

func NewHandler(db *gorm.DB, verifiers *verification.Registry) *Handler {
	return &Handler{activator: subscription.NewActivator(db), verifiers: verifiers}
}

// VerifyPurchase verifies a store receipt and activates the provider's
// subscription. Persistence failures come back as 503 so the app retries the
// same receipt; a rejected receipt is a definitive 400.
// @Summary Verify an in-app purchase
// @Description Verify a store receipt and activate the provider's subscription and entitlements
// @Tags iap
// @Accept json
// @Produce json
// @Param purchase body VerifyRequest true "Purchase information"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} VerifyResponse "Invalid input or rejected receipt"
// @Failure 503 {object} VerifyResponse "Store backend or primary store unavailable, retry later"
// @Router /iap/verify [post]
func (h *Handler) VerifyPurchase(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, VerifyResponse{Success: false, Message: "Invalid input: " + err.Error()})
		return
	}

	verifier, err := h.verifiers.For(req.Platform)
	if err != nil {
		utils.LogErrorWithProvider(req.ProviderID, err, "Unsupported platform in VerifyPurchase: "+req.Platform)
		c.JSON(http.StatusBadRequest, VerifyResponse{Success: false, Message: "Unsupported platform"})
		return
	}

	result, err := verifier.Verify(req.ProductID, req.Receipt)
	if err != nil {
		if errors.Is(err, verification.ErrVerificationUnavailable) {
			utils.LogErrorWithProvider(req.ProviderID, err, "Store verification unavailable in VerifyPurchase")
			c.JSON(http.StatusServiceUnavailable, VerifyResponse{Success: false, Message: "Store verification unavailable, retry later"})
			return
		}
		utils.LogErrorWithProvider(req.ProviderID, err, "Receipt rejected in VerifyPurchase")
		c.JSON(http.StatusBadRequest, VerifyResponse{Success: false, Message: "Invalid receipt"})
		return
	}
	if !result.Valid {
		c.JSON(http.StatusBadRequest, VerifyResponse{Success: false, Message: "Invalid receipt"})
		return
	}

	if err := h.activator.Activate(req.ProviderID, req.Platform, req.ProductID, result.ExternalTransactionID); err != nil {
		c.JSON(http.StatusServiceUnavailable, VerifyResponse{Success: false, Message: "Activation could not be completed, retry later"})
		return
	}

	utils.LogSuccessWithProvider(req.ProviderID, "Purchase verified")
	c.JSON(http.StatusOK, VerifyResponse{Success: true, Message: "Purchase verified"})
}
