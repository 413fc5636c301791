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

type HistoryHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewHistoryHandler(db *gorm.DB, aud *audit.Dispatcher) *HistoryHandler {
	return &HistoryHandler{db: db, aud: aud}
}

// --------- Requests ---------

type HistoryRequest struct {
	MemberID  uint   `json:"member_id" binding:"required"`
	PlanID    uint   `json:"plan_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// --------- Handlers ---------

func (h *HistoryHandler) List(c *gin.Context) {
	q := h.db.Order("id ASC")

	// Optional per-member view, as on the member detail screen.
	if memberID := c.Query("member_id"); memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}

	var history []models.MembershipHistory
	if err := q.Find(&history).Error; err != nil {
		httperr.Internal(c, "failed_to_list_history", err.Error())
		return
	}

	httpresp.List(c, history)
}

func (h *HistoryHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var entry models.MembershipHistory
	if err := h.db.First(&entry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "history_not_found", "no history entry with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_history", err.Error())
		return
	}

	httpresp.OK(c, entry)
}

func (h *HistoryHandler) Create(c *gin.Context) {
	var req HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	entry := models.MembershipHistory{
		MemberID:  req.MemberID,
		PlanID:    req.PlanID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "invalid_reference", "member_id or plan_id references no row")
			return
		}
		httperr.Internal(c, "failed_to_create_history", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "history_created",
		Entity:   "membership_history",
		EntityID: &entry.ID,
	})

	httpresp.Created(c, entry)
}

func (h *HistoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var entry models.MembershipHistory
	if err := h.db.First(&entry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "history_not_found", "no history entry with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_history", err.Error())
		return
	}

	var req HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	entry.MemberID = req.MemberID
	entry.PlanID = req.PlanID
	entry.StartDate = req.StartDate
	entry.EndDate = req.EndDate

	if err := h.db.Save(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "invalid_reference", "member_id or plan_id references no row")
			return
		}
		httperr.Internal(c, "failed_to_update_history", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "history_updated",
		Entity:   "membership_history",
		EntityID: &entry.ID,
	})

	httpresp.OK(c, entry)
}

func (h *HistoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.MembershipHistory{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_history", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "history_not_found", "no history entry with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "history_deleted",
		Entity:   "membership_history",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "history_deleted"})
}
