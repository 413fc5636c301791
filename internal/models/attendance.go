package models

import "time"

type Attendance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID uint   `gorm:"not null" json:"member_id"`
	Member   Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ScheduleID uint          `gorm:"not null" json:"schedule_id"`
	Schedule   ClassSchedule `gorm:"foreignKey:ScheduleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Status string `gorm:"size:20;default:'present'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
