package repositories

import (
	"context"

	"marketplace-service/internal/module/wallet/models/entity"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// wallet
	FindWalletByUserID(ctx context.Context, userID int64) (entity.Wallet, error)
	LockWallet(ctx context.Context, userID int64) (entity.Wallet, error)
	UpdateWallet(ctx context.Context, wallet entity.Wallet) error
	// ledger
	InsertTransaction(ctx context.Context, trx entity.Transaction) (int64, error)
	HasBookingCredit(ctx context.Context, walletID int64, bookingID int64) (bool, error)
	FindTransactions(ctx context.Context, walletID int64, limit int, offset int) ([]entity.Transaction, error)
	// payment
	InsertPayment(ctx context.Context, payment entity.Payment) (int64, error)
	FindPaymentByBookingID(ctx context.Context, bookingID int64) (entity.PaymentParties, error)
	// withdrawal
	InsertWithdrawal(ctx context.Context, w entity.WithdrawalRequest) (entity.WithdrawalRequest, error)
	LockWithdrawal(ctx context.Context, id int64) (entity.WithdrawalRequest, error)
	UpdateWithdrawal(ctx context.Context, w entity.WithdrawalRequest) error
	FindWithdrawalsByUserID(ctx context.Context, userID int64) ([]entity.WithdrawalRequest, error)
	FindWithdrawalsByStatus(ctx context.Context, statuses []entity.WithdrawalStatus) ([]entity.WithdrawalRequest, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const walletColumns = `id, user_id, balance, pending_balance, total_earned, total_withdrawn, created_at, updated_at`

func (r *repositories) FindWalletByUserID(ctx context.Context, userID int64) (entity.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	var wallet entity.Wallet
	err := database.Conn(ctx, r.db).GetContext(ctx, &wallet, query, userID)
	if err != nil {
		return entity.Wallet{}, database.Translate(err, "wallet not found", "error find wallet")
	}
	return wallet, nil
}

// LockWallet creates the wallet on first use and takes its row lock for the
// rest of the transaction.
func (r *repositories) LockWallet(ctx context.Context, userID int64) (entity.Wallet, error) {
	conn := database.Conn(ctx, r.db)

	_, err := conn.ExecContext(ctx, `INSERT INTO wallets (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		r.log.Error(ctx, "error ensure wallet", err)
		return entity.Wallet{}, errors.InternalServerError("error ensure wallet")
	}

	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE`
	var wallet entity.Wallet
	if err := conn.GetContext(ctx, &wallet, query, userID); err != nil {
		return entity.Wallet{}, database.Translate(err, "wallet not found", "error locking wallet")
	}
	return wallet, nil
}

func (r *repositories) UpdateWallet(ctx context.Context, wallet entity.Wallet) error {
	query := `UPDATE wallets
		SET balance = $1, pending_balance = $2, total_earned = $3, total_withdrawn = $4, updated_at = NOW()
		WHERE id = $5`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		wallet.Balance, wallet.PendingBalance, wallet.TotalEarned, wallet.TotalWithdrawn, wallet.ID)
	if err != nil {
		r.log.Error(ctx, "error update wallet", err)
		return errors.InternalServerError("error update wallet")
	}
	return nil
}

func (r *repositories) InsertTransaction(ctx context.Context, trx entity.Transaction) (int64, error) {
	query := `INSERT INTO wallet_transactions
		(wallet_id, booking_id, withdrawal_id, type, amount, balance_before, balance_after, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query,
		trx.WalletID, trx.BookingID, trx.WithdrawalID, trx.Type, trx.Amount,
		trx.BalanceBefore, trx.BalanceAfter, trx.Status, trx.Description,
	).Scan(&id)
	if err != nil {
		r.log.Error(ctx, "error insert wallet transaction", err)
		return 0, database.Translate(err, "wallet not found", "error insert wallet transaction")
	}
	return id, nil
}

func (r *repositories) HasBookingCredit(ctx context.Context, walletID int64, bookingID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM wallet_transactions WHERE wallet_id = $1 AND booking_id = $2 AND type = 'credit'
	)`
	var exists bool
	if err := database.Conn(ctx, r.db).GetContext(ctx, &exists, query, walletID, bookingID); err != nil {
		r.log.Error(ctx, "error check booking credit", err)
		return false, errors.InternalServerError("error check booking credit")
	}
	return exists, nil
}

func (r *repositories) FindTransactions(ctx context.Context, walletID int64, limit int, offset int) ([]entity.Transaction, error) {
	query := `SELECT id, wallet_id, booking_id, withdrawal_id, type, amount, balance_before, balance_after, status, description, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`
	trxs := []entity.Transaction{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &trxs, query, walletID, limit, offset); err != nil {
		r.log.Error(ctx, "error find wallet transactions", err)
		return nil, errors.InternalServerError("error find wallet transactions")
	}
	return trxs, nil
}

func (r *repositories) InsertPayment(ctx context.Context, payment entity.Payment) (int64, error) {
	query := `INSERT INTO payments
		(booking_id, amount, commission_rate, commission_amount, provider_amount, method, transaction_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query,
		payment.BookingID, payment.Amount, payment.CommissionRate, payment.CommissionAmount,
		payment.ProviderAmount, payment.Method, payment.TransactionID, payment.Status,
	).Scan(&id)
	if err != nil {
		if _, ok := database.IsUniqueViolation(err); ok {
			return 0, errors.Conflict("payment already recorded for booking")
		}
		r.log.Error(ctx, "error insert payment", err)
		return 0, errors.InternalServerError("error insert payment")
	}
	return id, nil
}

func (r *repositories) FindPaymentByBookingID(ctx context.Context, bookingID int64) (entity.PaymentParties, error) {
	query := `SELECT p.id, p.booking_id, p.amount, p.commission_rate, p.commission_amount, p.provider_amount,
			p.method, p.transaction_id, p.status, p.created_at,
			b.client_id, pp.user_id AS provider_user_id
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		JOIN provider_profiles pp ON pp.id = b.provider_id
		WHERE p.booking_id = $1`
	var payment entity.PaymentParties
	if err := database.Conn(ctx, r.db).GetContext(ctx, &payment, query, bookingID); err != nil {
		return entity.PaymentParties{}, database.Translate(err, "payment not found", "error find payment by booking id")
	}
	return payment, nil
}

const withdrawalColumns = `id, user_id, wallet_id, amount, method, account_details, status, admin_note, created_at, processed_at`

func (r *repositories) InsertWithdrawal(ctx context.Context, w entity.WithdrawalRequest) (entity.WithdrawalRequest, error) {
	query := `INSERT INTO withdrawal_requests (user_id, wallet_id, amount, method, account_details, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + withdrawalColumns
	var out entity.WithdrawalRequest
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query,
		w.UserID, w.WalletID, w.Amount, w.Method, w.AccountDetails, w.Status,
	).StructScan(&out)
	if err != nil {
		r.log.Error(ctx, "error insert withdrawal request", err)
		return entity.WithdrawalRequest{}, errors.InternalServerError("error insert withdrawal request")
	}
	return out, nil
}

func (r *repositories) LockWithdrawal(ctx context.Context, id int64) (entity.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`
	var w entity.WithdrawalRequest
	if err := database.Conn(ctx, r.db).GetContext(ctx, &w, query, id); err != nil {
		return entity.WithdrawalRequest{}, database.Translate(err, "withdrawal request not found", "error locking withdrawal request")
	}
	return w, nil
}

func (r *repositories) UpdateWithdrawal(ctx context.Context, w entity.WithdrawalRequest) error {
	query := `UPDATE withdrawal_requests SET status = $1, admin_note = $2, processed_at = $3 WHERE id = $4`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query, w.Status, w.AdminNote, w.ProcessedAt, w.ID)
	if err != nil {
		r.log.Error(ctx, "error update withdrawal request", err)
		return errors.InternalServerError("error update withdrawal request")
	}
	return nil
}

func (r *repositories) FindWithdrawalsByUserID(ctx context.Context, userID int64) ([]entity.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE user_id = $1 ORDER BY created_at DESC`
	ws := []entity.WithdrawalRequest{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &ws, query, userID); err != nil {
		r.log.Error(ctx, "error find withdrawal requests", err)
		return nil, errors.InternalServerError("error find withdrawal requests")
	}
	return ws, nil
}

func (r *repositories) FindWithdrawalsByStatus(ctx context.Context, statuses []entity.WithdrawalStatus) ([]entity.WithdrawalRequest, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE status = ANY($1) ORDER BY created_at ASC`
	ws := []entity.WithdrawalRequest{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &ws, query, pq.Array(values)); err != nil {
		r.log.Error(ctx, "error find withdrawal requests by status", err)
		return nil, errors.InternalServerError("error find withdrawal requests by status")
	}
	return ws, nil
}
