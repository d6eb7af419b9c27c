package subscription

import (
	"errors"
	"fmt"
	"time"

	"servicoperto-backend/models"
	"servicoperto-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPersistenceUnavailable reports that the primary store could not complete
// the activation writes. Safe to retry as a whole: the subscription upsert is
// keyed by provider id, so a repeat cannot duplicate rows.
var ErrPersistenceUnavailable = errors.New("primary store unavailable")

// Promotional ceiling on the 0-100 ranking scale.
const maxRankingScore = 100

const billingInterval = 1 // months

// Activator turns a verified purchase into an active, entitled provider.
type Activator struct {
	db *gorm.DB
}

func NewActivator(db *gorm.DB) *Activator {
	return &Activator{db: db}
}

// Activate upserts the provider's subscription and raises its entitlement
// (verified flag, ranking score). Both writes run in a single transaction:
// either the provider ends up fully activated or the caller gets an error
// and can retry. Calling Activate again for the same provider refreshes the
// existing subscription row instead of inserting a second one.
func (a *Activator) Activate(providerID, platform, productID, externalTxnID string) error {
	now := time.Now()
	sub := models.Subscription{
		ID:                     uuid.NewString(),
		ProviderID:             providerID,
		PlanID:                 a.resolvePlan(productID),
		Status:                 models.SubscriptionActive,
		Platform:               platform,
		ExternalSubscriptionID: externalTxnID,
		CurrentPeriodEnd:       now.AddDate(0, billingInterval, 0),
	}

	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "provider_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":             models.SubscriptionActive,
				"current_period_end": sub.CurrentPeriodEnd,
				"updated_at":         now,
			}),
		}).Create(&sub).Error; err != nil {
			return err
		}

		return tx.Model(&models.Provider{}).
			Where("user_id = ?", providerID).
			Updates(map[string]interface{}{
				"is_verified":   true,
				"ranking_score": maxRankingScore,
			}).Error
	})
	if err != nil {
		utils.LogErrorWithProvider(providerID, err, "Error activating subscription")
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	return nil
}

// resolvePlan maps a store SKU to a catalog plan id. Store catalogs can lag
// the database, so an unmapped SKU gets a synthetic plan reference instead
// of a rejected purchase.
func (a *Activator) resolvePlan(productID string) string {
	var plan models.Plan
	err := a.db.Where("google_id = ? OR apple_id = ?", productID, productID).First(&plan).Error
	if err == nil {
		return plan.ID
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error resolving plan for product "+productID)
	}

	for _, p := range models.DefaultPlans {
		if p.GoogleID == productID || p.AppleID == productID {
			return p.ID
		}
	}
	return uuid.NewString()
}
