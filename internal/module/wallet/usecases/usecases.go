package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"marketplace-service/internal/module/wallet/models/entity"
	"marketplace-service/internal/module/wallet/models/request"
	"marketplace-service/internal/module/wallet/models/response"
	"marketplace-service/internal/module/wallet/repositories"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

type usecase struct {
	repo repositories.Repositories
	tx   database.Transactor
	log  log.Logger
	now  func() time.Time
}

type Usecase interface {
	// ledger
	Credit(ctx context.Context, req request.Credit) (response.Credit, error)
	GetWallet(ctx context.Context, userID int64) (response.Wallet, error)
	ListTransactions(ctx context.Context, userID int64, req request.ListTransactions) ([]response.Transaction, error)
	GetPayment(ctx context.Context, bookingID int64, actorID int64, role string) (response.Payment, error)
	// withdrawal
	RequestWithdrawal(ctx context.Context, userID int64, req *request.Withdrawal) (response.Withdrawal, error)
	ResolveWithdrawal(ctx context.Context, requestID int64, req *request.ResolveWithdrawal) (response.Withdrawal, error)
	ListWithdrawals(ctx context.Context, userID int64) ([]response.Withdrawal, error)
	ListOpenWithdrawals(ctx context.Context) ([]response.Withdrawal, error)
}

func New(repo repositories.Repositories, tx database.Transactor, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		tx:   tx,
		log:  log,
		now:  time.Now,
	}
}

var hundred = decimal.NewFromInt(100)

// Credit books a completed booking's earnings into the provider wallet. A
// booking that already has a credit entry is left untouched.
func (u *usecase) Credit(ctx context.Context, req request.Credit) (response.Credit, error) {
	span, ctx := apm.StartSpan(ctx, "wallet.Credit", "usecase")
	defer span.End()

	if req.GrossAmount.IsNegative() {
		return response.Credit{}, errors.ValidationError("gross amount must not be negative")
	}
	if req.CommissionRate.IsNegative() || req.CommissionRate.GreaterThan(hundred) {
		return response.Credit{}, errors.ValidationError("commission rate must be between 0 and 100")
	}

	var out response.Credit
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		wallet, err := u.repo.LockWallet(ctx, req.ProviderUserID)
		if err != nil {
			return err
		}

		credited, err := u.repo.HasBookingCredit(ctx, wallet.ID, req.BookingID)
		if err != nil {
			return err
		}
		if credited {
			u.log.Info(ctx, fmt.Sprintf("booking %d already credited, skipping", req.BookingID))
			out = response.Credit{BookingID: req.BookingID, Balance: wallet.Balance, AlreadyCredited: true}
			return nil
		}

		commission, net := entity.SplitCommission(req.GrossAmount, req.CommissionRate)

		_, err = u.repo.InsertPayment(ctx, entity.Payment{
			BookingID:        req.BookingID,
			Amount:           req.GrossAmount,
			CommissionRate:   req.CommissionRate,
			CommissionAmount: commission,
			ProviderAmount:   net,
			Method:           req.Method,
			TransactionID:    uuid.NewString(),
			Status:           entity.PaymentSuccess,
		})
		if err != nil {
			return err
		}

		bookingRef := sql.NullInt64{Int64: req.BookingID, Valid: true}

		commissionTrx := entity.NewTransaction(wallet, entity.TransactionCommission, commission,
			fmt.Sprintf("platform commission %s%% on booking #%d", req.CommissionRate.StringFixed(2), req.BookingID))
		commissionTrx.BookingID = bookingRef
		if _, err := u.repo.InsertTransaction(ctx, commissionTrx); err != nil {
			return err
		}

		creditTrx := entity.NewTransaction(wallet, entity.TransactionCredit, net,
			fmt.Sprintf("earnings for booking #%d", req.BookingID))
		creditTrx.BookingID = bookingRef
		if _, err := u.repo.InsertTransaction(ctx, creditTrx); err != nil {
			return err
		}

		wallet.Balance = creditTrx.BalanceAfter
		wallet.TotalEarned = wallet.TotalEarned.Add(net)
		if err := u.repo.UpdateWallet(ctx, wallet); err != nil {
			return err
		}

		out = response.Credit{
			BookingID:        req.BookingID,
			CommissionAmount: commission,
			ProviderAmount:   net,
			Balance:          wallet.Balance,
		}
		return nil
	})
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error credit booking %d", req.BookingID), err)
		return response.Credit{}, err
	}

	return out, nil
}

func (u *usecase) GetWallet(ctx context.Context, userID int64) (response.Wallet, error) {
	wallet, err := u.repo.FindWalletByUserID(ctx, userID)
	if errors.Is(err, errors.KindNotFound) {
		// no earnings yet
		return response.Wallet{UserID: userID}, nil
	}
	if err != nil {
		return response.Wallet{}, err
	}
	return toWallet(wallet), nil
}

func (u *usecase) ListTransactions(ctx context.Context, userID int64, req request.ListTransactions) ([]response.Transaction, error) {
	wallet, err := u.repo.FindWalletByUserID(ctx, userID)
	if errors.Is(err, errors.KindNotFound) {
		return []response.Transaction{}, nil
	}
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	trxs, err := u.repo.FindTransactions(ctx, wallet.ID, limit, req.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]response.Transaction, 0, len(trxs))
	for _, t := range trxs {
		out = append(out, toTransaction(t))
	}
	return out, nil
}

func (u *usecase) GetPayment(ctx context.Context, bookingID int64, actorID int64, role string) (response.Payment, error) {
	p, err := u.repo.FindPaymentByBookingID(ctx, bookingID)
	if err != nil {
		return response.Payment{}, err
	}
	if role != "admin" && actorID != p.ClientID && actorID != p.ProviderUserID {
		return response.Payment{}, errors.Forbidden("not a participant of this booking")
	}

	return response.Payment{
		BookingID:        p.BookingID,
		Amount:           p.Amount,
		CommissionRate:   p.CommissionRate,
		CommissionAmount: p.CommissionAmount,
		ProviderAmount:   p.ProviderAmount,
		Method:           p.Method,
		TransactionID:    p.TransactionID,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
	}, nil
}

// RequestWithdrawal records a payout request and reserves its amount in the
// pending balance. The balance itself only moves when an admin approves it.
func (u *usecase) RequestWithdrawal(ctx context.Context, userID int64, req *request.Withdrawal) (response.Withdrawal, error) {
	span, ctx := apm.StartSpan(ctx, "wallet.RequestWithdrawal", "usecase")
	defer span.End()

	if !req.Amount.IsPositive() {
		return response.Withdrawal{}, errors.ValidationError("amount must be greater than zero")
	}
	if !req.Amount.Equal(req.Amount.Round(2)) {
		return response.Withdrawal{}, errors.ValidationError("amount must have at most 2 decimal places")
	}

	var out entity.WithdrawalRequest
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		wallet, err := u.repo.LockWallet(ctx, userID)
		if err != nil {
			return err
		}

		available := wallet.Available()
		if req.Amount.GreaterThan(available) {
			return errors.InsufficientFunds(fmt.Sprintf("requested %s exceeds available balance %s",
				req.Amount.StringFixed(2), available.StringFixed(2)))
		}

		out, err = u.repo.InsertWithdrawal(ctx, entity.WithdrawalRequest{
			UserID:         userID,
			WalletID:       wallet.ID,
			Amount:         req.Amount,
			Method:         req.Method,
			AccountDetails: req.AccountDetails,
			Status:         entity.WithdrawalPending,
		})
		if err != nil {
			return err
		}

		wallet.PendingBalance = wallet.PendingBalance.Add(req.Amount)
		return u.repo.UpdateWallet(ctx, wallet)
	})
	if err != nil {
		return response.Withdrawal{}, err
	}

	return toWithdrawal(out), nil
}

func (u *usecase) ResolveWithdrawal(ctx context.Context, requestID int64, req *request.ResolveWithdrawal) (response.Withdrawal, error) {
	span, ctx := apm.StartSpan(ctx, "wallet.ResolveWithdrawal", "usecase")
	defer span.End()

	var out entity.WithdrawalRequest
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		w, err := u.repo.LockWithdrawal(ctx, requestID)
		if err != nil {
			return err
		}
		if !w.Status.IsOpen() {
			return errors.InvalidTransition(fmt.Sprintf("withdrawal request is already %s", w.Status))
		}

		switch req.Decision {
		case "process":
			if w.Status != entity.WithdrawalPending {
				return errors.InvalidTransition("withdrawal request is already processing")
			}
			w.Status = entity.WithdrawalProcessing
		case "reject":
			if err := u.release(ctx, w); err != nil {
				return err
			}
			w.Status = entity.WithdrawalRejected
			w.ProcessedAt = sql.NullTime{Time: u.now(), Valid: true}
		case "approve":
			if err := u.payOut(ctx, w); err != nil {
				return err
			}
			w.Status = entity.WithdrawalCompleted
			w.ProcessedAt = sql.NullTime{Time: u.now(), Valid: true}
		default:
			return errors.ValidationError("decision must be approve, reject or process")
		}

		if req.AdminNote != "" {
			w.AdminNote = sql.NullString{String: req.AdminNote, Valid: true}
		}

		out = w
		return u.repo.UpdateWithdrawal(ctx, w)
	})
	if err != nil {
		return response.Withdrawal{}, err
	}

	return toWithdrawal(out), nil
}

// release hands a rejected request's reservation back to the available balance.
func (u *usecase) release(ctx context.Context, w entity.WithdrawalRequest) error {
	wallet, err := u.repo.LockWallet(ctx, w.UserID)
	if err != nil {
		return err
	}
	wallet.PendingBalance = wallet.Unreserve(w.Amount)
	return u.repo.UpdateWallet(ctx, wallet)
}

// payOut moves the reserved amount out of the balance. The balance is checked
// again since it may have changed since the request was made.
func (u *usecase) payOut(ctx context.Context, w entity.WithdrawalRequest) error {
	wallet, err := u.repo.LockWallet(ctx, w.UserID)
	if err != nil {
		return err
	}
	if w.Amount.GreaterThan(wallet.Balance) {
		return errors.InsufficientFunds(fmt.Sprintf("withdrawal %s exceeds available balance %s",
			w.Amount.StringFixed(2), wallet.Balance.StringFixed(2)))
	}

	trx := entity.NewTransaction(wallet, entity.TransactionWithdrawal, w.Amount, fmt.Sprintf("withdrawal #%d via %s", w.ID, w.Method))
	trx.WithdrawalID = sql.NullInt64{Int64: w.ID, Valid: true}
	if _, err := u.repo.InsertTransaction(ctx, trx); err != nil {
		return err
	}

	wallet.Balance = trx.BalanceAfter
	wallet.PendingBalance = wallet.Unreserve(w.Amount)
	wallet.TotalWithdrawn = wallet.TotalWithdrawn.Add(w.Amount)
	return u.repo.UpdateWallet(ctx, wallet)
}

func (u *usecase) ListWithdrawals(ctx context.Context, userID int64) ([]response.Withdrawal, error) {
	ws, err := u.repo.FindWithdrawalsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toWithdrawals(ws), nil
}

func (u *usecase) ListOpenWithdrawals(ctx context.Context) ([]response.Withdrawal, error) {
	ws, err := u.repo.FindWithdrawalsByStatus(ctx, []entity.WithdrawalStatus{entity.WithdrawalPending, entity.WithdrawalProcessing})
	if err != nil {
		return nil, err
	}
	return toWithdrawals(ws), nil
}

func toWallet(w entity.Wallet) response.Wallet {
	return response.Wallet{
		UserID:         w.UserID,
		Balance:        w.Balance,
		PendingBalance: w.PendingBalance,
		TotalEarned:    w.TotalEarned,
		TotalWithdrawn: w.TotalWithdrawn,
	}
}

func toTransaction(t entity.Transaction) response.Transaction {
	out := response.Transaction{
		ID:            t.ID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		BalanceBefore: t.BalanceBefore,
		BalanceAfter:  t.BalanceAfter,
		Status:        t.Status,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
	if t.BookingID.Valid {
		id := t.BookingID.Int64
		out.BookingID = &id
	}
	if t.WithdrawalID.Valid {
		id := t.WithdrawalID.Int64
		out.WithdrawalID = &id
	}
	return out
}

func toWithdrawal(w entity.WithdrawalRequest) response.Withdrawal {
	out := response.Withdrawal{
		ID:             w.ID,
		UserID:         w.UserID,
		Amount:         w.Amount,
		Method:         w.Method,
		AccountDetails: w.AccountDetails,
		Status:         string(w.Status),
		AdminNote:      w.AdminNote.String,
		CreatedAt:      w.CreatedAt,
	}
	if w.ProcessedAt.Valid {
		t := w.ProcessedAt.Time
		out.ProcessedAt = &t
	}
	return out
}

func toWithdrawals(ws []entity.WithdrawalRequest) []response.Withdrawal {
	out := make([]response.Withdrawal, 0, len(ws))
	for _, w := range ws {
		out = append(out, toWithdrawal(w))
	}
	return out
}
