package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/audit"
	"github.com/gymstack/gym-manager/internal/httperr"
	"github.com/gymstack/gym-manager/internal/httpresp"
	"github.com/gymstack/gym-manager/internal/models"
)

type MaintenanceHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewMaintenanceHandler(db *gorm.DB, aud *audit.Dispatcher) *MaintenanceHandler {
	return &MaintenanceHandler{db: db, aud: aud}
}

// --------- Requests ---------

type CreateMaintenanceRequest struct {
	EquipmentID     uint   `json:"equipment_id" binding:"required"`
	ReportedByID    uint   `json:"reported_by_id" binding:"required"`
	Description     string `json:"description" binding:"required"`
	MaintenanceDate string `json:"maintenance_date" binding:"required,datetime=2006-01-02"`
}

// UpdateMaintenanceRequest only touches the resolution side of a log;
// the original report stays as filed.
type UpdateMaintenanceRequest struct {
	ResolutionStatus string `json:"resolution_status" binding:"required"`
	ResolutionNotes  string `json:"resolution_notes"`
	ResolvedDate     string `json:"resolved_date" binding:"omitempty,datetime=2006-01-02"`
}

// --------- Handlers ---------

func (h *MaintenanceHandler) List(c *gin.Context) {
	q := h.db.Order("id DESC")

	if equipmentID := c.Query("equipment_id"); equipmentID != "" {
		q = q.Where("equipment_id = ?", equipmentID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("resolution_status = ?", status)
	}

	var logs []models.MaintenanceLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_maintenance", err.Error())
		return
	}

	httpresp.List(c, logs)
}

func (h *MaintenanceHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var log models.MaintenanceLog
	if err := h.db.First(&log, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "maintenance_not_found", "no maintenance log with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_maintenance", err.Error())
		return
	}

	httpresp.OK(c, log)
}

func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	log := models.MaintenanceLog{
		EquipmentID:      req.EquipmentID,
		ReportedByID:     req.ReportedByID,
		Description:      req.Description,
		MaintenanceDate:  req.MaintenanceDate,
		ResolutionStatus: "open",
	}

	if err := h.db.Create(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "invalid_reference", "equipment_id or reported_by_id references no row")
			return
		}
		httperr.Internal(c, "failed_to_create_maintenance", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "maintenance_created",
		Entity:   "maintenance_log",
		EntityID: &log.ID,
	})

	httpresp.Created(c, log)
}

func (h *MaintenanceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var log models.MaintenanceLog
	if err := h.db.First(&log, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "maintenance_not_found", "no maintenance log with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_maintenance", err.Error())
		return
	}

	var req UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	log.ResolutionStatus = req.ResolutionStatus
	log.ResolutionNotes = req.ResolutionNotes
	log.ResolvedDate = req.ResolvedDate

	if err := h.db.Save(&log).Error; err != nil {
		httperr.Internal(c, "failed_to_update_maintenance", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "maintenance_updated",
		Entity:   "maintenance_log",
		EntityID: &log.ID,
	})

	httpresp.OK(c, log)
}

func (h *MaintenanceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.MaintenanceLog{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_maintenance", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "maintenance_not_found", "no maintenance log with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "maintenance_deleted",
		Entity:   "maintenance_log",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "maintenance_deleted"})
}
