package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID uint   `gorm:"not null" json:"member_id"`
	Member   Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Amount        float64 `gorm:"not null" json:"amount"`
	PaymentDate   string  `gorm:"size:10;not null" json:"payment_date"`
	PaymentMethod string  `gorm:"size:50" json:"payment_method"`
	PaymentStatus string  `gorm:"size:20;default:'pending'" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
