package models

import "time"

type Member struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	// DATE columns travel as "2006-01-02"; empty string means unset.
	DateOfBirth string `gorm:"size:10" json:"date_of_birth"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`

	CurrentPlanID *uint           `json:"current_plan_id"`
	CurrentPlan   *MembershipPlan `gorm:"foreignKey:CurrentPlanID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"current_plan,omitempty"`

	MembershipStatus    string `gorm:"size:20;default:'active'" json:"membership_status"`
	MembershipStartDate string `gorm:"size:10" json:"membership_start_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
