package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/audit"
	"github.com/gymstack/gym-manager/internal/httperr"
	"github.com/gymstack/gym-manager/internal/httpresp"
	"github.com/gymstack/gym-manager/internal/models"
)

type CalendarHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewCalendarHandler(db *gorm.DB, aud *audit.Dispatcher) *CalendarHandler {
	return &CalendarHandler{db: db, aud: aud}
}

// --------- Requests ---------

type CalendarEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Location    string    `json:"location"`
	EventType   string    `json:"event_type"`
}

func (r *CalendarEventRequest) validateRange(c *gin.Context) bool {
	if !r.EndTime.After(r.StartTime) {
		httperr.BadRequest(c, "invalid_time_range", "end_time must be after start_time")
		return false
	}
	return true
}

// --------- Handlers ---------

func (h *CalendarHandler) List(c *gin.Context) {
	var events []models.CalendarEvent
	if err := h.db.Order("start_time ASC").Find(&events).Error; err != nil {
		httperr.Internal(c, "failed_to_list_events", err.Error())
		return
	}

	httpresp.List(c, events)
}

func (h *CalendarHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var event models.CalendarEvent
	if err := h.db.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "event_not_found", "no event with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_event", err.Error())
		return
	}

	httpresp.OK(c, event)
}

func (h *CalendarHandler) Create(c *gin.Context) {
	var req CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.validateRange(c) {
		return
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = "other"
	}

	var createdBy uint
	if id := actorID(c); id != nil {
		createdBy = *id
	}

	event := models.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		CreatedByID: createdBy,
		EventType:   eventType,
	}

	if err := h.db.Create(&event).Error; err != nil {
		httperr.Internal(c, "failed_to_create_event", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "event_created",
		Entity:   "calendar_event",
		EntityID: &event.ID,
	})

	httpresp.Created(c, event)
}

func (h *CalendarHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var event models.CalendarEvent
	if err := h.db.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "event_not_found", "no event with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_event", err.Error())
		return
	}

	var req CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.validateRange(c) {
		return
	}

	event.Title = req.Title
	event.Description = req.Description
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Location = req.Location
	if req.EventType != "" {
		event.EventType = req.EventType
	}

	if err := h.db.Save(&event).Error; err != nil {
		httperr.Internal(c, "failed_to_update_event", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "event_updated",
		Entity:   "calendar_event",
		EntityID: &event.ID,
	})

	httpresp.OK(c, event)
}

func (h *CalendarHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.CalendarEvent{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_event", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "event_not_found", "no event with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "event_deleted",
		Entity:   "calendar_event",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "event_deleted"})
}
