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

type EquipmentHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewEquipmentHandler(db *gorm.DB, aud *audit.Dispatcher) *EquipmentHandler {
	return &EquipmentHandler{db: db, aud: aud}
}

// --------- Requests ---------

type EquipmentRequest struct {
	EquipmentName string `json:"equipment_name" binding:"required"`
	PurchaseDate  string `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	Condition     string `json:"condition"`
	RoomID        *uint  `json:"room_id"`
}

// --------- Handlers ---------

func (h *EquipmentHandler) List(c *gin.Context) {
	q := h.db.Order("id ASC")

	if roomID := c.Query("room_id"); roomID != "" {
		q = q.Where("room_id = ?", roomID)
	}

	var items []models.Equipment
	if err := q.Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_equipment", err.Error())
		return
	}

	httpresp.List(c, items)
}

func (h *EquipmentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var item models.Equipment
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "equipment_not_found", "no equipment with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_equipment", err.Error())
		return
	}

	httpresp.OK(c, item)
}

func (h *EquipmentHandler) Create(c *gin.Context) {
	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	item := models.Equipment{
		EquipmentName: req.EquipmentName,
		PurchaseDate:  req.PurchaseDate,
		Condition:     req.Condition,
		RoomID:        req.RoomID,
	}

	if err := h.db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "room_not_found", "room_id references no room")
			return
		}
		httperr.Internal(c, "failed_to_create_equipment", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "equipment_created",
		Entity:   "equipment",
		EntityID: &item.ID,
	})

	httpresp.Created(c, item)
}

func (h *EquipmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var item models.Equipment
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "equipment_not_found", "no equipment with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_equipment", err.Error())
		return
	}

	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	item.EquipmentName = req.EquipmentName
	item.PurchaseDate = req.PurchaseDate
	item.Condition = req.Condition
	item.RoomID = req.RoomID

	if err := h.db.Save(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "room_not_found", "room_id references no room")
			return
		}
		httperr.Internal(c, "failed_to_update_equipment", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "equipment_updated",
		Entity:   "equipment",
		EntityID: &item.ID,
	})

	httpresp.OK(c, item)
}

func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.Equipment{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_equipment", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "equipment_not_found", "no equipment with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "equipment_deleted",
		Entity:   "equipment",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "equipment_deleted"})
}
