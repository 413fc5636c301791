package models

import "time"

type FitnessClass struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ClassName   string `gorm:"size:50;not null" json:"class_name"`
	Description string `gorm:"type:text" json:"description"`
	Capacity    int    `gorm:"not null" json:"capacity"`

	RoomID uint `gorm:"not null" json:"room_id"`
	Room   Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	TrainerID uint    `gorm:"not null" json:"trainer_id"`
	Trainer   Trainer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
