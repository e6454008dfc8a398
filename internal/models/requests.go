package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type MakeAdminRequest struct {
	Secret string `json:"secret" binding:"required"`
}

type DepositRequest struct {
	Amount string `json:"amount" binding:"required"`
	Method string `json:"method" binding:"required"`
	// Reference is the external payment transaction id the player submits.
	Reference string `json:"reference" binding:"required"`
}

type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required"`
	Method string `json:"method" binding:"required"`
	// Account is the destination wallet/account number.
	Account string `json:"account" binding:"required"`
}

type ProfileUpdateRequest struct {
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type StatusUpdateRequest struct {
	Status TransactionStatus `json:"status" binding:"required"`
}

type CreateTransactionRequest struct {
	UserID  int64             `json:"user_id" binding:"required"`
	Type    TransactionType   `json:"type" binding:"required"`
	Amount  string            `json:"amount" binding:"required"`
	Method  string            `json:"method"`
	Details string            `json:"details"`
	Status  TransactionStatus `json:"status"`
}

// ParseAmount validates a money amount from a request: it must be a decimal
// number and strictly positive.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount must be a decimal number")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("amount must be positive")
	}
	return amount, nil
}
