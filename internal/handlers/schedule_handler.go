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
	"github.com/gymstack/gym-manager/internal/validators"
)

type ScheduleHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewScheduleHandler(db *gorm.DB, aud *audit.Dispatcher) *ScheduleHandler {
	return &ScheduleHandler{db: db, aud: aud}
}

// --------- Requests ---------

type ScheduleRequest struct {
	ClassID      uint   `json:"class_id" binding:"required"`
	ScheduleDate string `json:"schedule_date" binding:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
}

func (r *ScheduleRequest) validateTimes(c *gin.Context) bool {
	if !validators.IsClockTime(r.StartTime) || !validators.IsClockTime(r.EndTime) {
		httperr.BadRequest(c, "invalid_time", "start_time and end_time must be HH:MM")
		return false
	}
	if !validators.ClockTimeBefore(r.StartTime, r.EndTime) {
		httperr.BadRequest(c, "invalid_time_range", "end_time must be after start_time")
		return false
	}
	return true
}

// --------- Handlers ---------

func (h *ScheduleHandler) List(c *gin.Context) {
	q := h.db.Order("schedule_date ASC, start_time ASC")

	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("class_id = ?", classID)
	}

	var schedules []models.ClassSchedule
	if err := q.Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedules", err.Error())
		return
	}

	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var schedule models.ClassSchedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "schedule_not_found", "no schedule with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_schedule", err.Error())
		return
	}

	httpresp.OK(c, schedule)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.validateTimes(c) {
		return
	}

	schedule := models.ClassSchedule{
		ClassID:      req.ClassID,
		ScheduleDate: req.ScheduleDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}

	if err := h.db.Create(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "class_not_found", "class_id references no class")
			return
		}
		httperr.Internal(c, "failed_to_create_schedule", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "schedule_created",
		Entity:   "class_schedule",
		EntityID: &schedule.ID,
	})

	httpresp.Created(c, schedule)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var schedule models.ClassSchedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "schedule_not_found", "no schedule with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_schedule", err.Error())
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.validateTimes(c) {
		return
	}

	schedule.ClassID = req.ClassID
	schedule.ScheduleDate = req.ScheduleDate
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime

	if err := h.db.Save(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "class_not_found", "class_id references no class")
			return
		}
		httperr.Internal(c, "failed_to_update_schedule", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "schedule_updated",
		Entity:   "class_schedule",
		EntityID: &schedule.ID,
	})

	httpresp.OK(c, schedule)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.ClassSchedule{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_schedule", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "schedule_not_found", "no schedule with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "schedule_deleted",
		Entity:   "class_schedule",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "schedule_deleted"})
}
