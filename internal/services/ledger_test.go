package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"banglabet-backend/internal/models"
)

func newLedgerUser(t *testing.T, store *Store, balance string) *models.User {
	t.Helper()

	user, err := store.CreateUser(&models.User{Username: "rahim", Password: "x"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if balance != "0" {
		user = store.UpdateUser(user.ID, models.UserUpdate{Balance: &balance})
	}
	return user
}

func TestPendingDepositAppliesOnceOnSuccess(t *testing.T) {
	store := NewStore()
	user := newLedgerUser(t, store, "0")

	tx, err := store.CreateTransaction(&models.Transaction{
		UserID: user.ID,
		Type:   models.TransactionTypeDeposit,
		Amount: "100",
		Status: models.TransactionStatusPending,
	})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	if got := store.GetUser(user.ID).Balance; got != "0" {
		t.Errorf("pending deposit should not move balance, got %s", got)
	}

	if _, err := store.UpdateTransactionStatus(tx.ID, models.TransactionStatusSuccess); err != nil {
		t.Fatalf("UpdateTransactionStatus failed: %v", err)
	}
	if got := store.GetUser(user.ID).Balance; got != "100" {
		t.Errorf("balance after success = %s, want 100", got)
	}

	// A repeated success must not re-apply.
	if _, err := store.UpdateTransactionStatus(tx.ID, models.TransactionStatusSuccess); err != nil {
		t.Fatalf("UpdateTransactionStatus failed: %v", err)
	}
	if got := store.GetUser(user.ID).Balance; got != "100" {
		t.Errorf("balance after repeated success = %s, want 100", got)
	}
}

func TestCreateSuccessfulTransactionAppliesImmediately(t *testing.T) {
	store := NewStore()
	user := newLedgerUser(t, store, "500")

	if _, err := store.CreateTransaction(&models.Transaction{
		UserID: user.ID,
		Type:   models.TransactionTypeWithdraw,
		Amount: "200",
		Status: models.TransactionStatusSuccess,
	}); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	if got := store.GetUser(user.ID).Balance; got != "300" {
		t.Errorf("balance = %s, want 300", got)
	}
}

func TestSignConvention(t *testing.T) {
	cases := []struct {
		txType models.TransactionType
		want   string
	}{
		{models.TransactionTypeDeposit, "1100"},
		{models.TransactionTypeWin, "1100"},
		{models.TransactionTypeBonus, "1100"},
		{models.TransactionTypeWithdraw, "900"},
		{models.TransactionTypeLose, "900"},
	}

	for _, tc := range cases {
		t.Run(string(tc.txType), func(t *testing.T) {
			store := NewStore()
			user := newLedgerUser(t, store, "1000")

			tx, err := store.CreateTransaction(&models.Transaction{
				UserID: user.ID,
				Type:   tc.txType,
				Amount: "100",
				Status: models.TransactionStatusPending,
			})
			if err != nil {
				t.Fatalf("CreateTransaction failed: %v", err)
			}
			if _, err := store.UpdateTransactionStatus(tx.ID, models.TransactionStatusSuccess); err != nil {
				t.Fatalf("UpdateTransactionStatus failed: %v", err)
			}

			if got := store.GetUser(user.ID).Balance; got != tc.want {
				t.Errorf("balance = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestNonSuccessTransitionsLeaveBalance(t *testing.T) {
	store := NewStore()
	user := newLedgerUser(t, store, "0")

	tx, err := store.CreateTransaction(&models.Transaction{
		UserID: user.ID,
		Type:   models.TransactionTypeDeposit,
		Amount: "50",
		Status: models.TransactionStatusPending,
	})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	for _, status := range []models.TransactionStatus{
		models.TransactionStatusFailed,
		models.TransactionStatusFailed,
		models.TransactionStatusPending,
	} {
		if _, err := store.UpdateTransactionStatus(tx.ID, status); err != nil {
			t.Fatalf("UpdateTransactionStatus(%s) failed: %v", status, err)
		}
		if got := store.GetUser(user.ID).Balance; got != "0" {
			t.Errorf("transition to %s moved balance to %s", status, got)
		}
	}

	// Into success applies; stepping back out does not undo it.
	if _, err := store.UpdateTransactionStatus(tx.ID, models.TransactionStatusSuccess); err != nil {
		t.Fatalf("UpdateTransactionStatus failed: %v", err)
	}
	if _, err := store.UpdateTransactionStatus(tx.ID, models.TransactionStatusFailed); err != nil {
		t.Fatalf("UpdateTransactionStatus failed: %v", err)
	}
	if got := store.GetUser(user.ID).Balance; got != "50" {
		t.Errorf("success then failed: balance = %s, want 50", got)
	}
}

func TestUpdateUnknownTransaction(t *testing.T) {
	store := NewStore()

	if _, err := store.UpdateTransactionStatus(42, models.TransactionStatusSuccess); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateTransactionForUnknownUser(t *testing.T) {
	store := NewStore()

	_, err := store.CreateTransaction(&models.Transaction{
		UserID: 999,
		Type:   models.TransactionTypeDeposit,
		Amount: "10",
		Status: models.TransactionStatusSuccess,
	})
	if !errors.Is(err, ErrUserMissing) {
		t.Errorf("expected ErrUserMissing, got %v", err)
	}
	if len(store.GetAllTransactions()) != 0 {
		t.Error("no transaction should be recorded for an unknown user")
	}
}

func TestWithdrawalInsufficientFunds(t *testing.T) {
	store := NewStore()
	user := newLedgerUser(t, store, "100")

	_, err := store.CreateWithdrawal(user.ID, decimal.RequireFromString("200"), "bkash", "01700000000")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
	if len(store.GetUserTransactions(user.ID)) != 0 {
		t.Error("a rejected withdrawal should not be recorded")
	}

	tx, err := store.CreateWithdrawal(user.ID, decimal.RequireFromString("100"), "bkash", "01700000000")
	if err != nil {
		t.Fatalf("CreateWithdrawal failed: %v", err)
	}
	if tx.Status != models.TransactionStatusPending {
		t.Errorf("withdrawal status = %s, want pending", tx.Status)
	}
	if got := store.GetUser(user.ID).Balance; got != "100" {
		t.Errorf("pending withdrawal moved balance to %s", got)
	}
}

func TestDecimalAmountsDoNotDrift(t *testing.T) {
	store := NewStore()
	user := newLedgerUser(t, store, "0")

	// 0.1 added ten times is exactly 1 in decimal arithmetic.
	for i := 0; i < 10; i++ {
		if _, err := store.CreateTransaction(&models.Transaction{
			UserID: user.ID,
			Type:   models.TransactionTypeDeposit,
			Amount: "0.1",
			Status: models.TransactionStatusSuccess,
		}); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	// Compare decimally: the stored string keeps the scale ("1.0").
	got := decimal.RequireFromString(store.GetUser(user.ID).Balance)
	if !got.Equal(decimal.RequireFromString("1")) {
		t.Errorf("balance = %s, want 1", got)
	}
}

func TestTransactionListingIsInsertionOrdered(t *testing.T) {
	store := NewStore()
	user := newLedgerUser(t, store, "0")

	for _, amount := range []string{"1", "2", "3"} {
		if _, err := store.CreateTransaction(&models.Transaction{
			UserID: user.ID,
			Type:   models.TransactionTypeDeposit,
			Amount: amount,
			Status: models.TransactionStatusPending,
		}); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	all := store.GetAllTransactions()
	if len(all) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(all))
	}
	for i, tx := range all {
		if tx.ID != int64(i+1) {
			t.Errorf("transaction %d has id %d, want %d", i, tx.ID, i+1)
		}
	}
}
