package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"banglabet-backend/internal/models"
	"banglabet-backend/internal/services"
)

type WalletHandler struct {
	store *services.Store
}

func NewWalletHandler(store *services.Store) *WalletHandler {
	return &WalletHandler{store: store}
}

func (h *WalletHandler) ListTransactions(c *gin.Context) {
	transactions := h.store.GetUserTransactions(c.GetInt64("user_id"))
	if transactions == nil {
		transactions = []*models.Transaction{}
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// Deposit records a pending deposit request. The amount must be positive
// and the external payment reference non-empty; an admin later confirms the
// transaction, which is when the balance is credited.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.store.CreateTransaction(&models.Transaction{
		UserID:  c.GetInt64("user_id"),
		Type:    models.TransactionTypeDeposit,
		Amount:  amount.String(),
		Method:  req.Method,
		Details: req.Reference,
		Status:  models.TransactionStatusPending,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create deposit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// Withdraw records a pending withdrawal request. The sufficiency check and
// the insert happen atomically in the store, but the amount is not reserved:
// the balance only moves if an admin marks the transaction successful.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.store.CreateWithdrawal(c.GetInt64("user_id"), amount, req.Method, req.Account)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
			return
		}
		log.Error().Err(err).Msg("failed to create withdrawal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}
