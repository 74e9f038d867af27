package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionCredit     TransactionType = "credit"
	TransactionDebit      TransactionType = "debit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionRefund     TransactionType = "refund"
	// TransactionCommission records the platform cut; it does not move the balance.
	TransactionCommission TransactionType = "commission"
)

// Sign is +1, -1 or 0: the direction the entry moves the available balance.
func (t TransactionType) Sign() int {
	switch t {
	case TransactionCredit, TransactionRefund:
		return 1
	case TransactionDebit, TransactionWithdrawal:
		return -1
	default:
		return 0
	}
}

// Apply returns the balance after an entry of this type and amount.
func (t TransactionType) Apply(balance decimal.Decimal, amount decimal.Decimal) decimal.Decimal {
	switch t.Sign() {
	case 1:
		return balance.Add(amount)
	case -1:
		return balance.Sub(amount)
	default:
		return balance
	}
}

type Wallet struct {
	ID             int64           `db:"id"`
	UserID         int64           `db:"user_id"`
	Balance        decimal.Decimal `db:"balance"`
	PendingBalance decimal.Decimal `db:"pending_balance"`
	TotalEarned    decimal.Decimal `db:"total_earned"`
	TotalWithdrawn decimal.Decimal `db:"total_withdrawn"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      sql.NullTime    `db:"updated_at"`
}

// Available is what a new withdrawal request may still claim: the balance
// minus the amounts reserved by open requests.
func (w Wallet) Available() decimal.Decimal {
	return w.Balance.Sub(w.PendingBalance)
}

// Unreserve returns the pending balance with amount released, never below zero.
func (w Wallet) Unreserve(amount decimal.Decimal) decimal.Decimal {
	pending := w.PendingBalance.Sub(amount)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

type Transaction struct {
	ID            int64           `db:"id"`
	WalletID      int64           `db:"wallet_id"`
	BookingID     sql.NullInt64   `db:"booking_id"`
	WithdrawalID  sql.NullInt64   `db:"withdrawal_id"`
	Type          TransactionType `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	Status        string          `db:"status"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}

// NewTransaction builds an entry against the wallet's current balance.
func NewTransaction(w Wallet, t TransactionType, amount decimal.Decimal, description string) Transaction {
	return Transaction{
		WalletID:      w.ID,
		Type:          t,
		Amount:        amount,
		BalanceBefore: w.Balance,
		BalanceAfter:  t.Apply(w.Balance, amount),
		Status:        "completed",
		Description:   description,
	}
}

type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
	WithdrawalRejected   WithdrawalStatus = "rejected"
)

func (s WithdrawalStatus) IsOpen() bool {
	return s == WithdrawalPending || s == WithdrawalProcessing
}

type WithdrawalRequest struct {
	ID             int64            `db:"id"`
	UserID         int64            `db:"user_id"`
	WalletID       int64            `db:"wallet_id"`
	Amount         decimal.Decimal  `db:"amount"`
	Method         string           `db:"method"`
	AccountDetails string           `db:"account_details"`
	Status         WithdrawalStatus `db:"status"`
	AdminNote      sql.NullString   `db:"admin_note"`
	CreatedAt      time.Time        `db:"created_at"`
	ProcessedAt    sql.NullTime     `db:"processed_at"`
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID               int64           `db:"id"`
	BookingID        int64           `db:"booking_id"`
	Amount           decimal.Decimal `db:"amount"`
	CommissionRate   decimal.Decimal `db:"commission_rate"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
	ProviderAmount   decimal.Decimal `db:"provider_amount"`
	Method           string          `db:"method"`
	TransactionID    string          `db:"transaction_id"`
	Status           PaymentStatus   `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
}

// PaymentParties is a payment plus the two users allowed to see it.
type PaymentParties struct {
	Payment
	ClientID       int64 `db:"client_id"`
	ProviderUserID int64 `db:"provider_user_id"`
}

var hundred = decimal.NewFromInt(100)

// SplitCommission returns the platform commission, rounded half up to the
// cent, and the remainder owed to the provider.
func SplitCommission(gross decimal.Decimal, ratePercent decimal.Decimal) (commission decimal.Decimal, provider decimal.Decimal) {
	commission = gross.Mul(ratePercent).Div(hundred).Round(2)
	provider = gross.Sub(commission)
	return commission, provider
}
