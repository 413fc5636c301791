package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/audit"
	"github.com/gymstack/gym-manager/internal/dto"
	"github.com/gymstack/gym-manager/internal/httperr"
	"github.com/gymstack/gym-manager/internal/httpresp"
	"github.com/gymstack/gym-manager/internal/models"
)

type MemberHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewMemberHandler(db *gorm.DB, aud *audit.Dispatcher) *MemberHandler {
	return &MemberHandler{db: db, aud: aud}
}

// --------- Requests ---------

type MemberRequest struct {
	FirstName           string `json:"first_name" binding:"required"`
	LastName            string `json:"last_name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	DateOfBirth         string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	PhoneNumber         string `json:"phone_number"`
	CurrentPlanID       *uint  `json:"current_plan_id"`
	MembershipStatus    string `json:"membership_status"`
	MembershipStartDate string `json:"membership_start_date" binding:"omitempty,datetime=2006-01-02"`
}

// --------- Handlers ---------

// List returns members joined with their current plan's name.
func (h *MemberHandler) List(c *gin.Context) {
	var rows []dto.MemberListDTO
	if err := h.db.
		Table("members").
		Select(`members.id, members.first_name, members.last_name, members.email,
			members.date_of_birth, members.phone_number, members.current_plan_id,
			membership_plans.plan_name, members.membership_status, members.membership_start_date`).
		Joins("LEFT JOIN membership_plans ON membership_plans.id = members.current_plan_id").
		Order("members.id ASC").
		Scan(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_members", err.Error())
		return
	}

	httpresp.List(c, rows)
}

func (h *MemberHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var member models.Member
	if err := h.db.Preload("CurrentPlan").First(&member, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "member_not_found", "no member with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_member", err.Error())
		return
	}

	httpresp.OK(c, member)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	status := req.MembershipStatus
	if status == "" {
		status = "active"
	}

	member := models.Member{
		FirstName:           strings.TrimSpace(req.FirstName),
		LastName:            strings.TrimSpace(req.LastName),
		Email:               strings.ToLower(strings.TrimSpace(req.Email)),
		DateOfBirth:         req.DateOfBirth,
		PhoneNumber:         req.PhoneNumber,
		CurrentPlanID:       req.CurrentPlanID,
		MembershipStatus:    status,
		MembershipStartDate: req.MembershipStartDate,
	}

	if err := h.db.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_taken", "a member with that email already exists")
			return
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "plan_not_found", "current_plan_id references no plan")
			return
		}
		httperr.Internal(c, "failed_to_create_member", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "member_created",
		Entity:   "member",
		EntityID: &member.ID,
	})

	httpresp.Created(c, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var member models.Member
	if err := h.db.First(&member, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "member_not_found", "no member with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_member", err.Error())
		return
	}

	var req MemberRequest
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
	member.DateOfBirth = req.DateOfBirth
	member.PhoneNumber = req.PhoneNumber
	member.CurrentPlanID = req.CurrentPlanID
	if req.MembershipStatus != "" {
		member.MembershipStatus = req.MembershipStatus
	}
	member.MembershipStartDate = req.MembershipStartDate

	if err := h.db.Save(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_taken", "a member with that email already exists")
			return
		}
		httperr.Internal(c, "failed_to_update_member", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "member_updated",
		Entity:   "member",
		EntityID: &member.ID,
	})

	httpresp.OK(c, member)
}

// Delete removes the member; history, attendance and payment rows go
// with it via the schema's CASCADE rules.
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.Member{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_member", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "member_not_found", "no member with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "member_deleted",
		Entity:   "member",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "member_deleted"})
}
