package services

import (
	"time"

	"github.com/shopspring/decimal"

	"banglabet-backend/internal/models"
)

// The ledger is the only code that mutates balances. A transaction's
// monetary effect is applied exactly once, at the moment its status becomes
// success: either at creation, or on the first transition from a non-success
// status into success. Every other transition leaves the balance untouched,
// so repeated or retried status updates cannot double-apply.

// CreateTransaction assigns the next id and current timestamp and inserts
// the record. If the record is created with status success, the balance
// delta is applied in the same critical section. A missing owner is a hard
// error; nothing is recorded.
func (s *Store) CreateTransaction(t *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := decimal.NewFromString(t.Amount); err != nil {
		return nil, ErrInvalidAmount
	}
	if _, ok := s.users[t.UserID]; !ok {
		return nil, ErrUserMissing
	}

	stored := *t
	stored.ID = s.nextTxID
	s.nextTxID++
	if stored.Status == "" {
		stored.Status = models.TransactionStatusPending
	}
	stored.CreatedAt = time.Now()

	if stored.Status == models.TransactionStatusSuccess {
		if err := s.applyBalanceDelta(&stored); err != nil {
			return nil, err
		}
	}

	s.transactions[stored.ID] = &stored

	out := stored
	return &out, nil
}

// CreateWithdrawal checks the requester's current balance and inserts a
// pending withdrawal in one critical section, so two concurrent requests
// cannot both pass the sufficiency check against the same starting balance.
func (s *Store) CreateWithdrawal(userID int64, amount decimal.Decimal, method, account string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrUserMissing
	}

	balance, err := decimal.NewFromString(u.Balance)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	if balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	stored := models.Transaction{
		ID:        s.nextTxID,
		UserID:    userID,
		Type:      models.TransactionTypeWithdraw,
		Amount:    amount.String(),
		Method:    method,
		Details:   account,
		Status:    models.TransactionStatusPending,
		CreatedAt: time.Now(),
	}
	s.nextTxID++
	s.transactions[stored.ID] = &stored

	out := stored
	return &out, nil
}

// UpdateTransactionStatus replaces the stored status. The balance delta is
// applied only when the previous status was not success and the new one is;
// success→success, success→failed, pending→failed and the like never touch
// the balance.
func (s *Store) UpdateTransactionStatus(id int64, status models.TransactionStatus) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}

	if tx.Status != models.TransactionStatusSuccess && status == models.TransactionStatusSuccess {
		if err := s.applyBalanceDelta(tx); err != nil {
			return nil, err
		}
	}
	tx.Status = status

	cp := *tx
	return &cp, nil
}

func (s *Store) GetTransaction(id int64) *models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx, ok := s.transactions[id]; ok {
		cp := *tx
		return &cp
	}
	return nil
}

func (s *Store) GetUserTransactions(userID int64) []*models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Transaction
	for id := int64(1); id < s.nextTxID; id++ {
		if tx, ok := s.transactions[id]; ok && tx.UserID == userID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out
}

func (s *Store) GetAllTransactions() []*models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Transaction, 0, len(s.transactions))
	for id := int64(1); id < s.nextTxID; id++ {
		if tx, ok := s.transactions[id]; ok {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out
}

// applyBalanceDelta adds or subtracts the transaction amount on the owning
// user's balance per the sign convention: deposit/win/bonus credit,
// withdraw/lose debit. Caller must hold s.mu.
func (s *Store) applyBalanceDelta(tx *models.Transaction) error {
	u, ok := s.users[tx.UserID]
	if !ok {
		return ErrUserMissing
	}

	balance, err := decimal.NewFromString(u.Balance)
	if err != nil {
		return ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(tx.Amount)
	if err != nil {
		return ErrInvalidAmount
	}

	if tx.Type.Credit() {
		balance = balance.Add(amount)
	} else {
		balance = balance.Sub(amount)
	}
	u.Balance = balance.String()
	return nil
}
