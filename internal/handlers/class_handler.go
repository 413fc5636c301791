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

type ClassHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewClassHandler(db *gorm.DB, aud *audit.Dispatcher) *ClassHandler {
	return &ClassHandler{db: db, aud: aud}
}

// --------- Requests ---------

type ClassRequest struct {
	ClassName   string `json:"class_name" binding:"required"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	RoomID      uint   `json:"room_id" binding:"required"`
	TrainerID   uint   `json:"trainer_id" binding:"required"`
}

// --------- Handlers ---------

func (h *ClassHandler) List(c *gin.Context) {
	var classes []models.FitnessClass
	if err := h.db.Order("id ASC").Find(&classes).Error; err != nil {
		httperr.Internal(c, "failed_to_list_classes", err.Error())
		return
	}

	httpresp.List(c, classes)
}

func (h *ClassHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var class models.FitnessClass
	if err := h.db.First(&class, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "class_not_found", "no class with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_class", err.Error())
		return
	}

	httpresp.OK(c, class)
}

// checkClassRefs verifies the referenced room and trainer exist
// before anything is written. Returns false after writing the error
// response when either is missing.
func (h *ClassHandler) checkClassRefs(c *gin.Context, roomID, trainerID uint) bool {
	var count int64
	if err := h.db.Model(&models.Room{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_check_room", err.Error())
		return false
	}
	if count == 0 {
		httperr.BadRequest(c, "room_not_found", "room_id references no room")
		return false
	}

	if err := h.db.Model(&models.Trainer{}).Where("id = ?", trainerID).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_check_trainer", err.Error())
		return false
	}
	if count == 0 {
		httperr.BadRequest(c, "trainer_not_found", "trainer_id references no trainer")
		return false
	}

	return true
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !h.checkClassRefs(c, req.RoomID, req.TrainerID) {
		return
	}

	class := models.FitnessClass{
		ClassName:   req.ClassName,
		Description: req.Description,
		Capacity:    req.Capacity,
		RoomID:      req.RoomID,
		TrainerID:   req.TrainerID,
	}

	if err := h.db.Create(&class).Error; err != nil {
		httperr.Internal(c, "failed_to_create_class", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "class_created",
		Entity:   "fitness_class",
		EntityID: &class.ID,
	})

	httpresp.Created(c, class)
}

func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var class models.FitnessClass
	if err := h.db.First(&class, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "class_not_found", "no class with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_class", err.Error())
		return
	}

	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !h.checkClassRefs(c, req.RoomID, req.TrainerID) {
		return
	}

	class.ClassName = req.ClassName
	class.Description = req.Description
	class.Capacity = req.Capacity
	class.RoomID = req.RoomID
	class.TrainerID = req.TrainerID

	if err := h.db.Save(&class).Error; err != nil {
		httperr.Internal(c, "failed_to_update_class", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "class_updated",
		Entity:   "fitness_class",
		EntityID: &class.ID,
	})

	httpresp.OK(c, class)
}

func (h *ClassHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.FitnessClass{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_class", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "class_not_found", "no class with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "class_deleted",
		Entity:   "fitness_class",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "class_deleted"})
}
