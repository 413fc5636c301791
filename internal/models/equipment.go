package models

import "time"

type Equipment struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	EquipmentName string `gorm:"size:50;not null" json:"equipment_name"`
	PurchaseDate  string `gorm:"size:10" json:"purchase_date"`
	Condition     string `gorm:"size:50" json:"condition"`

	RoomID *uint `json:"room_id"`
	Room   *Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
