package models

import "time"

type Trainer struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Specialty string `gorm:"size:100" json:"specialty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
