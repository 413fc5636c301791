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

type AttendanceHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewAttendanceHandler(db *gorm.DB, aud *audit.Dispatcher) *AttendanceHandler {
	return &AttendanceHandler{db: db, aud: aud}
}

// --------- Requests ---------

type AttendanceRequest struct {
	MemberID   uint   `json:"member_id" binding:"required"`
	ScheduleID uint   `json:"schedule_id" binding:"required"`
	Status     string `json:"status"`
}

// --------- Handlers ---------

func (h *AttendanceHandler) List(c *gin.Context) {
	q := h.db.Order("id ASC")

	if memberID := c.Query("member_id"); memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}
	if scheduleID := c.Query("schedule_id"); scheduleID != "" {
		q = q.Where("schedule_id = ?", scheduleID)
	}

	var records []models.Attendance
	if err := q.Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list_attendance", err.Error())
		return
	}

	httpresp.List(c, records)
}

func (h *AttendanceHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var record models.Attendance
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "attendance_not_found", "no attendance record with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_attendance", err.Error())
		return
	}

	httpresp.OK(c, record)
}

func (h *AttendanceHandler) Create(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	status := req.Status
	if status == "" {
		status = "present"
	}

	record := models.Attendance{
		MemberID:   req.MemberID,
		ScheduleID: req.ScheduleID,
		Status:     status,
	}

	if err := h.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "invalid_reference", "member_id or schedule_id references no row")
			return
		}
		httperr.Internal(c, "failed_to_create_attendance", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "attendance_created",
		Entity:   "attendance",
		EntityID: &record.ID,
	})

	httpresp.Created(c, record)
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var record models.Attendance
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "attendance_not_found", "no attendance record with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_attendance", err.Error())
		return
	}

	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	record.MemberID = req.MemberID
	record.ScheduleID = req.ScheduleID
	if req.Status != "" {
		record.Status = req.Status
	}

	if err := h.db.Save(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "invalid_reference", "member_id or schedule_id references no row")
			return
		}
		httperr.Internal(c, "failed_to_update_attendance", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "attendance_updated",
		Entity:   "attendance",
		EntityID: &record.ID,
	})

	httpresp.OK(c, record)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.Attendance{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_attendance", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "attendance_not_found", "no attendance record with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "attendance_deleted",
		Entity:   "attendance",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "attendance_deleted"})
}
