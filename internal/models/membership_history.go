package models

import "time"

type MembershipHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID uint   `gorm:"not null" json:"member_id"`
	Member   Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PlanID uint           `gorm:"not null" json:"plan_id"`
	Plan   MembershipPlan `gorm:"foreignKey:PlanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartDate string `gorm:"size:10;not null" json:"start_date"`
	EndDate   string `gorm:"size:10" json:"end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
