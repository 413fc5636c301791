package models

import "time"

type MembershipPlan struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PlanName    string  `gorm:"size:50;not null" json:"plan_name"`
	MonthlyFee  float64 `gorm:"not null" json:"monthly_fee"`
	AccessLevel string  `gorm:"size:20" json:"access_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
