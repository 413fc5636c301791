package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/audit"
	"github.com/gymstack/gym-manager/internal/httperr"
	"github.com/gymstack/gym-manager/internal/httpresp"
	"github.com/gymstack/gym-manager/internal/models"
	ucuser "github.com/gymstack/gym-manager/internal/usecase/user"
)

type UserHandler struct {
	db       *gorm.DB
	aud      *audit.Dispatcher
	deleteUC *ucuser.DeleteUser
}

func NewUserHandler(db *gorm.DB, aud *audit.Dispatcher, deleteUC *ucuser.DeleteUser) *UserHandler {
	return &UserHandler{db: db, aud: aud, deleteUC: deleteUC}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Role     string `json:"role" binding:"required"`
	// Optional: when present, the account password is reset too.
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", err.Error())
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "no user with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_user", err.Error())
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !models.IsValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "role must be one of admin, manager, trainer, member")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", err.Error())
		return
	}

	user := models.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hashed),
		Role:         req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "username_taken", "that username already exists")
			return
		}
		httperr.Internal(c, "failed_to_create_user", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "no user with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_user", err.Error())
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !models.IsValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "role must be one of admin, manager, trainer, member")
		return
	}

	user.Username = strings.TrimSpace(req.Username)
	user.Role = req.Role

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", err.Error())
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	actor := actorID(c)
	var actorVal uint
	if actor != nil {
		actorVal = *actor
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actorVal, id); err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			httperr.NotFound(c, "user_not_found", "no user with that id")
			return
		}
		if httperr.IsBusiness(err, "last_admin") {
			httperr.BadRequest(c, "last_admin", "cannot delete the only remaining admin")
			return
		}
		httperr.Internal(c, "failed_to_delete_user", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user_deleted"})
}
