package models

import "time"

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeBonus    TransactionType = "bonus"
	TransactionTypeWin      TransactionType = "win"
	TransactionTypeLose     TransactionType = "lose"
)

// Credit reports whether the type increases the owner's balance.
// Deposits, wins and bonuses credit; withdrawals and losses debit.
func (t TransactionType) Credit() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWin, TransactionTypeBonus:
		return true
	}
	return false
}

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdraw,
		TransactionTypeBonus, TransactionTypeWin, TransactionTypeLose:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusSuccess, TransactionStatusFailed:
		return true
	}
	return false
}

type Transaction struct {
	ID      int64             `json:"id"`
	UserID  int64             `json:"user_id"`
	Type    TransactionType   `json:"type"`
	Amount  string            `json:"amount"`
	Method  string            `json:"method,omitempty"`
	Details string            `json:"details,omitempty"`
	Status  TransactionStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
