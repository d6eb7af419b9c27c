package models

// Plan is a subscription plan from the catalog. Reference data: seeded at
// startup, read-only at runtime except for the is_active flag.
// @Description Subscription plan with per-store product identifiers
type Plan struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name"`
	Price    float64 `json:"price" gorm:"type:numeric(10,2)"`
	GoogleID string  `json:"google_id" gorm:"column:google_id"`
	AppleID  string  `json:"apple_id" gorm:"column:apple_id"`
	IsActive bool    `json:"is_active" gorm:"default:true"`
}

func (Plan) TableName() string {
	return "plans"
}

// DefaultPlans is the built-in catalog, served whenever the plans table is
// empty or unreachable and used to seed it on first migration.
var DefaultPlans = []Plan{
	{
		ID:       "pla_pro_monthly",
		Name:     "Profissional",
		Price:    49.90,
		GoogleID: "com.servicoperto.pro",
		AppleID:  "com.servicoperto.pro",
		IsActive: true,
	},
}
