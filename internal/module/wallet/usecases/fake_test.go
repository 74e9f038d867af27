package usecases_test

import (
	"context"
	"sync"

	"marketplace-service/internal/module/wallet/models/entity"
	"marketplace-service/internal/pkg/errors"

	"github.com/shopspring/decimal"
)

// memRepo is an in-memory ledger used to check the balance projection
// against the entries actually written.
type memRepo struct {
	mu          sync.Mutex
	wallets     map[int64]*entity.Wallet
	trxs        []entity.Transaction
	payments    map[int64]entity.Payment
	withdrawals map[int64]*entity.WithdrawalRequest
}

func newMemRepo() *memRepo {
	return &memRepo{
		wallets:     map[int64]*entity.Wallet{},
		payments:    map[int64]entity.Payment{},
		withdrawals: map[int64]*entity.WithdrawalRequest{},
	}
}

type memTx struct {
	mu sync.Mutex
}

func (m *memTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func (r *memRepo) FindWalletByUserID(ctx context.Context, userID int64) (entity.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[userID]
	if !ok {
		return entity.Wallet{}, errors.NotFound("wallet not found")
	}
	return *w, nil
}

func (r *memRepo) LockWallet(ctx context.Context, userID int64) (entity.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[userID]
	if !ok {
		w = &entity.Wallet{ID: int64(len(r.wallets) + 1), UserID: userID}
		r.wallets[userID] = w
	}
	return *w, nil
}

func (r *memRepo) UpdateWallet(ctx context.Context, wallet entity.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := wallet
	r.wallets[wallet.UserID] = &w
	return nil
}

func (r *memRepo) InsertTransaction(ctx context.Context, trx entity.Transaction) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trx.ID = int64(len(r.trxs) + 1)
	r.trxs = append(r.trxs, trx)
	return trx.ID, nil
}

func (r *memRepo) HasBookingCredit(ctx context.Context, walletID int64, bookingID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.trxs {
		if t.WalletID == walletID && t.BookingID.Valid && t.BookingID.Int64 == bookingID && t.Type == entity.TransactionCredit {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) FindTransactions(ctx context.Context, walletID int64, limit int, offset int) ([]entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Transaction{}
	for i := len(r.trxs) - 1; i >= 0; i-- {
		if r.trxs[i].WalletID == walletID {
			out = append(out, r.trxs[i])
		}
	}
	if offset >= len(out) {
		return []entity.Transaction{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) InsertPayment(ctx context.Context, payment entity.Payment) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[payment.BookingID]; ok {
		return 0, errors.Conflict("payment already recorded for booking")
	}
	payment.ID = int64(len(r.payments) + 1)
	r.payments[payment.BookingID] = payment
	return payment.ID, nil
}

func (r *memRepo) FindPaymentByBookingID(ctx context.Context, bookingID int64) (entity.PaymentParties, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[bookingID]
	if !ok {
		return entity.PaymentParties{}, errors.NotFound("payment not found")
	}
	return entity.PaymentParties{Payment: p}, nil
}

func (r *memRepo) InsertWithdrawal(ctx context.Context, w entity.WithdrawalRequest) (entity.WithdrawalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = int64(len(r.withdrawals) + 1)
	r.withdrawals[w.ID] = &w
	return w, nil
}

func (r *memRepo) LockWithdrawal(ctx context.Context, id int64) (entity.WithdrawalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok {
		return entity.WithdrawalRequest{}, errors.NotFound("withdrawal request not found")
	}
	return *w, nil
}

func (r *memRepo) UpdateWithdrawal(ctx context.Context, w entity.WithdrawalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := w
	r.withdrawals[w.ID] = &cp
	return nil
}

func (r *memRepo) FindWithdrawalsByUserID(ctx context.Context, userID int64) ([]entity.WithdrawalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.WithdrawalRequest{}
	for _, w := range r.withdrawals {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *memRepo) FindWithdrawalsByStatus(ctx context.Context, statuses []entity.WithdrawalStatus) ([]entity.WithdrawalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.WithdrawalRequest{}
	for _, w := range r.withdrawals {
		for _, s := range statuses {
			if w.Status == s {
				out = append(out, *w)
			}
		}
	}
	return out, nil
}

// ledgerSum is the signed sum of every entry written for the wallet.
func (r *memRepo) ledgerSum(walletID int64) decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := decimal.Zero
	for _, t := range r.trxs {
		if t.WalletID != walletID {
			continue
		}
		sum = t.Type.Apply(sum, t.Amount)
	}
	return sum
}

func (r *memRepo) entriesFor(bookingID int64) []entity.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Transaction{}
	for _, t := range r.trxs {
		if t.BookingID.Valid && t.BookingID.Int64 == bookingID {
			out = append(out, t)
		}
	}
	return out
}
