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

type PaymentHandler struct {
	db  *gorm.DB
	aud *audit.Dispatcher
}

func NewPaymentHandler(db *gorm.DB, aud *audit.Dispatcher) *PaymentHandler {
	return &PaymentHandler{db: db, aud: aud}
}

// --------- Requests ---------

type PaymentRequest struct {
	MemberID      uint    `json:"member_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate   string  `json:"payment_date" binding:"required,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
}

// --------- Handlers ---------

func (h *PaymentHandler) List(c *gin.Context) {
	q := h.db.Order("payment_date DESC, id DESC")

	if memberID := c.Query("member_id"); memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}

	var payments []models.Payment
	if err := q.Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", err.Error())
		return
	}

	httpresp.List(c, payments)
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "payment_not_found", "no payment with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_payment", err.Error())
		return
	}

	httpresp.OK(c, payment)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	status := req.PaymentStatus
	if status == "" {
		status = "pending"
	}

	payment := models.Payment{
		MemberID:      req.MemberID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: status,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "member_not_found", "member_id references no member")
			return
		}
		httperr.Internal(c, "failed_to_create_payment", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "payment_created",
		Entity:   "payment",
		EntityID: &payment.ID,
	})

	httpresp.Created(c, payment)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "payment_not_found", "no payment with that id")
			return
		}
		httperr.Internal(c, "failed_to_get_payment", err.Error())
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	payment.MemberID = req.MemberID
	payment.Amount = req.Amount
	payment.PaymentDate = req.PaymentDate
	payment.PaymentMethod = req.PaymentMethod
	if req.PaymentStatus != "" {
		payment.PaymentStatus = req.PaymentStatus
	}

	if err := h.db.Save(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.BadRequest(c, "member_not_found", "member_id references no member")
			return
		}
		httperr.Internal(c, "failed_to_update_payment", err.Error())
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "payment_updated",
		Entity:   "payment",
		EntityID: &payment.ID,
	})

	httpresp.OK(c, payment)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	res := h.db.Delete(&models.Payment{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_payment", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "payment_not_found", "no payment with that id")
		return
	}

	h.aud.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "payment_deleted",
		Entity:   "payment",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "payment_deleted"})
}
