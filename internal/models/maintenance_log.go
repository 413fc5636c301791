package models

import "time"

type MaintenanceLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EquipmentID uint      `gorm:"not null" json:"equipment_id"`
	Equipment   Equipment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ReportedByID uint  `gorm:"not null" json:"reported_by_id"`
	ReportedBy   Staff `gorm:"foreignKey:ReportedByID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Description     string `gorm:"type:text" json:"description"`
	MaintenanceDate string `gorm:"size:10;not null" json:"maintenance_date"`

	ResolutionStatus string `gorm:"size:20;default:'open'" json:"resolution_status"`
	ResolutionNotes  string `gorm:"type:text" json:"resolution_notes"`
	ResolvedDate     string `gorm:"size:10" json:"resolved_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
