package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"banglabet-backend/internal/models"
	"banglabet-backend/internal/services"
)

type AdminHandler struct {
	store *services.Store
}

func NewAdminHandler(store *services.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": h.store.ListUsers()})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	// A balance may be set to zero or negative; it only has to parse.
	if upd.Balance != nil {
		if _, err := decimal.NewFromString(*upd.Balance); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Balance must be a decimal number"})
			return
		}
	}

	user := h.store.UpdateUser(id, upd)
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.store.AdminStats()})
}

func (h *AdminHandler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transactions": h.store.GetAllTransactions()})
}

// CreateTransaction lets an admin record a manual movement (bonus, win,
// correction). Created with status success it credits or debits right away.
func (h *AdminHandler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type"})
		return
	}
	if req.Status != "" && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction status"})
		return
	}
	if _, err := models.ParseAmount(req.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.store.CreateTransaction(&models.Transaction{
		UserID:  req.UserID,
		Type:    req.Type,
		Amount:  req.Amount,
		Method:  req.Method,
		Details: req.Details,
		Status:  req.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserMissing) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Error().Err(err).Msg("failed to create transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

func (h *AdminHandler) UpdateTransactionStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction status"})
		return
	}

	tx, err := h.store.UpdateTransactionStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, services.ErrUserMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction references unknown user"})
		default:
			log.Error().Err(err).Int64("tx_id", id).Msg("failed to update transaction status")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (h *AdminHandler) ListDepositPhones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phones": h.store.ListDepositPhones()})
}

func (h *AdminHandler) CreateDepositPhone(c *gin.Context) {
	var phone models.DepositPhone
	if err := c.ShouldBindJSON(&phone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"phone": h.store.CreateDepositPhone(&phone)})
}

func (h *AdminHandler) UpdateDepositPhone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var upd models.DepositPhoneUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	phone := h.store.UpdateDepositPhone(id, upd)
	if phone == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deposit phone not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phone": phone})
}

func (h *AdminHandler) DeleteDepositPhone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.store.DeleteDepositPhone(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deposit phone not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deposit phone deleted"})
}

func (h *AdminHandler) ToggleDepositPhone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	phone := h.store.ToggleDepositPhoneStatus(id)
	if phone == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deposit phone not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phone": phone})
}
