package models

import "time"

type ClassSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClassID uint         `gorm:"not null" json:"class_id"`
	Class   FitnessClass `gorm:"foreignKey:ClassID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ScheduleDate string `gorm:"size:10;not null" json:"schedule_date"`

	// Clock times stored as "15:04", same convention as the date columns.
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
