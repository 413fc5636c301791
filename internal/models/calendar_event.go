package models

import "time"

// CalendarEvent is deliberately free-standing: events can outlive the
// user that created them, so CreatedByID carries no FK constraint.
type CalendarEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Location    string    `gorm:"size:100" json:"location"`
	CreatedByID uint      `json:"created_by_id"`
	EventType   string    `gorm:"size:20;default:'other'" json:"event_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
