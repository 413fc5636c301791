package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/audit"
	"github.com/gymstack/gym-manager/internal/httperr"
	"github.com/gymstack/gym-manager/internal/httpresp"
	"github.com/gymstack/gym-manager/internal/models"
)

type StaffHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewStaffHandler(db *gorm.DB, aud *audit.Dispatcher) *StaffHandler {
	return &StaffHandler{db: db, aud: aud}
}

// --------- Requests ---------

type StaffRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	var staff []models.Staff
	if err := h.db.Order("id ASC").Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", err.Error())
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var member models.Staff
	if err := h.db.First(&member, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "no staff member with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", err.Error())
		return
	}

	httpresp.OK(c, member)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	role := req.Role
	if role == "" {
		role = "staff"
	}

	member := models.Staff{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      role,
	}

	if err := h.db.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_taken", "a staff member with that email already exists")
			return
		}
		httperr.Internal(c, "failed_to_create_staff", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "staff_created",
		Entity:   "staff",
		EntityID: &member.ID,
	})

	httpresp.Created(c, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var member models.Staff
	if err := h.db.First(&member, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "no staff member with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", err.Error())
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	member.FirstName = strings.TrimSpace(req.FirstName)
	member.LastName = strings.TrimSpace(req.LastName)
	member.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Role != "" {
		member.Role = req.Role
	}

	if err := h.db.Save(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_taken", "a staff member with that email already exists")
			return
		}
		httperr.Internal(c, "failed_to_update_staff", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "staff_updated",
		Entity:   "staff",
		EntityID: &member.ID,
	})

	httpresp.OK(c, member)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.Staff{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_staff", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "staff_not_found", "no staff member with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "staff_deleted",
		Entity:   "staff",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "staff_deleted"})
}
