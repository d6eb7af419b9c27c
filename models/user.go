package models

import (
	"time"
)

type Role string

const (
	CustomerRole Role = "CUSTOMER"
	ProviderRole Role = "PROVIDER"
	AdminRole    Role = "ADMIN"
)

// User is an account in the directory. Accounts are created elsewhere; this
// service only reads them for the admin views.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Provider is the service-provider profile attached to a user account.
// IsVerified and RankingScore are the entitlement fields raised when a
// subscription activates.
type Provider struct {
	UserID       string `json:"user_id" gorm:"primaryKey;type:uuid"`
	ServiceType  string `json:"service_type"`
	Neighborhood string `json:"neighborhood"`
	IsVerified   bool   `json:"is_verified"`
	RankingScore int    `json:"ranking_score"`
}

func (Provider) TableName() string {
	return "providers"
}
