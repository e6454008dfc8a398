package services

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"banglabet-backend/internal/models"
)

// For any transaction and any sequence of status updates, the owner's
// balance moves by the signed amount exactly once per transition into
// success from a non-success status, and never otherwise.
func TestBalanceApplicationProperty(t *testing.T) {
	types := []models.TransactionType{
		models.TransactionTypeDeposit,
		models.TransactionTypeWithdraw,
		models.TransactionTypeBonus,
		models.TransactionTypeWin,
		models.TransactionTypeLose,
	}
	statuses := []models.TransactionStatus{
		models.TransactionStatusPending,
		models.TransactionStatusSuccess,
		models.TransactionStatusFailed,
	}

	rapid.Check(t, func(t *rapid.T) {
		store := NewStore()
		user, err := store.CreateUser(&models.User{Username: "karim", Password: "x"})
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		initial := "10000"
		store.UpdateUser(user.ID, models.UserUpdate{Balance: &initial})

		txType := rapid.SampledFrom(types).Draw(t, "type")
		amount := strconv.Itoa(rapid.IntRange(1, 5000).Draw(t, "amount"))
		sequence := rapid.SliceOfN(rapid.SampledFrom(statuses), 0, 12).Draw(t, "sequence")

		tx, err := store.CreateTransaction(&models.Transaction{
			UserID: user.ID,
			Type:   txType,
			Amount: amount,
			Status: models.TransactionStatusPending,
		})
		if err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}

		applications := 0
		current := models.TransactionStatusPending
		for _, next := range sequence {
			if _, err := store.UpdateTransactionStatus(tx.ID, next); err != nil {
				t.Fatalf("UpdateTransactionStatus failed: %v", err)
			}
			if current != models.TransactionStatusSuccess && next == models.TransactionStatusSuccess {
				applications++
			}
			current = next
		}

		delta := decimal.RequireFromString(amount).Mul(decimal.NewFromInt(int64(applications)))
		if !txType.Credit() {
			delta = delta.Neg()
		}
		want := decimal.RequireFromString(initial).Add(delta).String()

		if got := store.GetUser(user.ID).Balance; got != want {
			t.Fatalf("type=%s amount=%s sequence=%v: balance=%s, want %s",
				txType, amount, sequence, got, want)
		}
	})
}
