package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "ACTIVE"
	SubscriptionExpired SubscriptionStatus = "EXPIRED"
)

// Subscription records a provider's store purchase. ProviderID is unique:
// re-verifying a purchase refreshes the existing row instead of adding one.
type Subscription struct {
	ID                     string             `json:"id" gorm:"primaryKey;type:uuid"`
	ProviderID             string             `json:"provider_id" gorm:"type:uuid;uniqueIndex;not null"`
	PlanID                 string             `json:"plan_id"`
	Status                 SubscriptionStatus `json:"status" gorm:"type:varchar(20)"`
	Platform               string             `json:"platform" gorm:"type:varchar(20)"`
	ExternalSubscriptionID string             `json:"external_subscription_id"`
	CurrentPeriodEnd       time.Time          `json:"current_period_end"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
