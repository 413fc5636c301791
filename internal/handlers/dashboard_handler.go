package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/httperr"
	"github.com/gymstack/gym-manager/internal/httpresp"
	"github.com/gymstack/gym-manager/internal/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type DashboardStats struct {
	Users           int64   `json:"users"`
	Members         int64   `json:"members"`
	ActiveMembers   int64   `json:"active_members"`
	Trainers        int64   `json:"trainers"`
	Classes         int64   `json:"classes"`
	Equipment       int64   `json:"equipment"`
	OpenMaintenance int64   `json:"open_maintenance"`
	Payments        int64   `json:"payments"`
	Revenue         float64 `json:"revenue"`
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	var stats DashboardStats

	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.User{}, &stats.Users},
		{&models.Member{}, &stats.Members},
		{&models.Trainer{}, &stats.Trainers},
		{&models.FitnessClass{}, &stats.Classes},
		{&models.Equipment{}, &stats.Equipment},
		{&models.Payment{}, &stats.Payments},
	}
	for _, cnt := range counts {
		if err := h.db.Model(cnt.model).Count(cnt.dest).Error; err != nil {
			httperr.Internal(c, "failed_to_load_stats", err.Error())
			return
		}
	}

	if err := h.db.Model(&models.Member{}).
		Where("membership_status = ?", "active").
		Count(&stats.ActiveMembers).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", err.Error())
		return
	}

	if err := h.db.Model(&models.MaintenanceLog{}).
		Where("resolution_status = ?", "open").
		Count(&stats.OpenMaintenance).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", err.Error())
		return
	}

	// COALESCE keeps the sum at 0 when no paid payments exist yet.
	if err := h.db.Model(&models.Payment{}).
		Where("payment_status = ?", "paid").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.Revenue).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", err.Error())
		return
	}

	httpresp.OK(c, stats)
}
