package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/audit"
	"github.com/gymstack/gym-manager/internal/httperr"
	"github.com/gymstack/gym-manager/internal/httpresp"
	"github.com/gymstack/gym-manager/internal/models"
)

type PlanHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewPlanHandler(db *gorm.DB, aud *audit.Dispatcher) *PlanHandler {
	return &PlanHandler{db: db, aud: aud}
}

// --------- Requests ---------

type PlanRequest struct {
	PlanName    string  `json:"plan_name" binding:"required"`
	MonthlyFee  float64 `json:"monthly_fee" binding:"required"`
	AccessLevel string  `json:"access_level"`
}

// --------- Handlers ---------

func (h *PlanHandler) List(c *gin.Context) {
	var plans []models.MembershipPlan
	if err := h.db.Order("id ASC").Find(&plans).Error; err != nil {
		httperr.Internal(c, "failed_to_list_plans", err.Error())
		return
	}

	httpresp.List(c, plans)
}

func (h *PlanHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var plan models.MembershipPlan
	if err := h.db.First(&plan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "plan_not_found", "no plan with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_plan", err.Error())
		return
	}

	httpresp.OK(c, plan)
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	plan := models.MembershipPlan{
		PlanName:    req.PlanName,
		MonthlyFee:  req.MonthlyFee,
		AccessLevel: req.AccessLevel,
	}

	if err := h.db.Create(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_create_plan", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "plan_created",
		Entity:   "membership_plan",
		EntityID: &plan.ID,
	})

	httpresp.Created(c, plan)
}

func (h *PlanHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var plan models.MembershipPlan
	if err := h.db.First(&plan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "plan_not_found", "no plan with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_plan", err.Error())
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	plan.PlanName = req.PlanName
	plan.MonthlyFee = req.MonthlyFee
	plan.AccessLevel = req.AccessLevel

	if err := h.db.Save(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_update_plan", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "plan_updated",
		Entity:   "membership_plan",
		EntityID: &plan.ID,
	})

	httpresp.OK(c, plan)
}

// Delete removes the plan; members pointing at it fall back to no
// plan (SET NULL) while history rows referencing it are cascaded.
func (h *PlanHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.MembershipPlan{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_plan", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "plan_not_found", "no plan with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "plan_deleted",
		Entity:   "membership_plan",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "plan_deleted"})
}
