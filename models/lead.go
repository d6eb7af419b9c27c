package models

import (
	"time"
)

type LeadType string

const (
	CustomerLead LeadType = "CUSTOMER"
	ProviderLead LeadType = "PROVIDER"
)

// Lead is a pre-registration captured from the landing pages. Append-only.
// @Description Pre-registration lead
type Lead struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name"`
	Whatsapp  string    `json:"whatsapp"`
	Type      LeadType  `json:"type" gorm:"type:varchar(20)"`
	Specialty string    `json:"specialty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Lead) TableName() string {
	return "leads"
}

// LeadCreate is the request body for recording a lead
// @Description Request body for recording a lead
type LeadCreate struct {
	Name      string   `json:"name" binding:"required" example:"Ana"`
	Whatsapp  string   `json:"whatsapp" binding:"required" example:"+5511999999999"`
	Type      LeadType `json:"type" binding:"required,oneof=CUSTOMER PROVIDER" example:"CUSTOMER"`
	Specialty string   `json:"specialty" example:"Eletricista"`
}
