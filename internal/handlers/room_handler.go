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

type RoomHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewRoomHandler(db *gorm.DB, aud *audit.Dispatcher) *RoomHandler {
	return &RoomHandler{db: db, aud: aud}
}

// --------- Requests ---------

type RoomRequest struct {
	RoomName string `json:"room_name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

// --------- Handlers ---------

func (h *RoomHandler) List(c *gin.Context) {
	var rooms []models.Room
	if err := h.db.Order("id ASC").Find(&rooms).Error; err != nil {
		httperr.Internal(c, "failed_to_list_rooms", err.Error())
		return
	}

	httpresp.List(c, rooms)
}

func (h *RoomHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var room models.Room
	if err := h.db.First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "room_not_found", "no room with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_room", err.Error())
		return
	}

	httpresp.OK(c, room)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	room := models.Room{
		RoomName: req.RoomName,
		Capacity: req.Capacity,
	}

	if err := h.db.Create(&room).Error; err != nil {
		httperr.Internal(c, "failed_to_create_room", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "room_created",
		Entity:   "room",
		EntityID: &room.ID,
	})

	httpresp.Created(c, room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var room models.Room
	if err := h.db.First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "room_not_found", "no room with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_room", err.Error())
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	room.RoomName = req.RoomName
	room.Capacity = req.Capacity

	if err := h.db.Save(&room).Error; err != nil {
		httperr.Internal(c, "failed_to_update_room", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "room_updated",
		Entity:   "room",
		EntityID: &room.ID,
	})

	httpresp.OK(c, room)
}

// Delete removes the room. Equipment placed there is detached (SET
// NULL); classes using it block the delete (RESTRICT).
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.Room{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			httperr.Conflict(c, "room_in_use", "room is assigned to one or more classes")
			return
		}
		httperr.Internal(c, "failed_to_delete_room", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "room_not_found", "no room with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "room_deleted",
		Entity:   "room",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "room_deleted"})
}
