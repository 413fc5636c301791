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

type TrainerHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewTrainerHandler(db *gorm.DB, aud *audit.Dispatcher) *TrainerHandler {
	return &TrainerHandler{db: db, aud: aud}
}

// --------- Requests ---------

type TrainerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty"`
}

// --------- Handlers ---------

func (h *TrainerHandler) List(c *gin.Context) {
	var trainers []models.Trainer
	if err := h.db.Order("id ASC").Find(&trainers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_trainers", err.Error())
		return
	}

	httpresp.List(c, trainers)
}

func (h *TrainerHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var trainer models.Trainer
	if err := h.db.First(&trainer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "trainer_not_found", "no trainer with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_trainer", err.Error())
		return
	}

	httpresp.OK(c, trainer)
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	trainer := models.Trainer{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Specialty: req.Specialty,
	}

	if err := h.db.Create(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_taken", "a trainer with that email already exists")
			return
		}
		httperr.Internal(c, "failed_to_create_trainer", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "trainer_created",
		Entity:   "trainer",
		EntityID: &trainer.ID,
	})

	httpresp.Created(c, trainer)
}

func (h *TrainerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var trainer models.Trainer
	if err := h.db.First(&trainer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "trainer_not_found", "no trainer with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_trainer", err.Error())
		return
	}

	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	trainer.FirstName = strings.TrimSpace(req.FirstName)
	trainer.LastName = strings.TrimSpace(req.LastName)
	trainer.Email = strings.ToLower(strings.TrimSpace(req.Email))
	trainer.Specialty = req.Specialty

	if err := h.db.Save(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_taken", "a trainer with that email already exists")
			return
		}
		httperr.Internal(c, "failed_to_update_trainer", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "trainer_updated",
		Entity:   "trainer",
		EntityID: &trainer.ID,
	})

	httpresp.OK(c, trainer)
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.Trainer{}, id)
	if res.Error != nil {
		// RESTRICT: trainers still teaching classes cannot go away.
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			httperr.Conflict(c, "trainer_in_use", "trainer is assigned to one or more classes")
			return
		}
		httperr.Internal(c, "failed_to_delete_trainer", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "trainer_not_found", "no trainer with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "trainer_deleted",
		Entity:   "trainer",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "trainer_deleted"})
}
