package models

import "time"

type Room struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RoomName string `gorm:"size:50;not null" json:"room_name"`
	Capacity int    `gorm:"not null" json:"capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
