package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	UserID         int64           `json:"user_id"`
	Balance        decimal.Decimal `json:"balance"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
}

type Transaction struct {
	ID            int64           `json:"id"`
	BookingID     *int64          `json:"booking_id,omitempty"`
	WithdrawalID  *int64          `json:"withdrawal_id,omitempty"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Status        string          `json:"status"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Withdrawal struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method"`
	AccountDetails string          `json:"account_details"`
	Status         string          `json:"status"`
	AdminNote      string          `json:"admin_note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty"`
}

type Credit struct {
	BookingID        int64           `json:"booking_id"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	ProviderAmount   decimal.Decimal `json:"provider_amount"`
	Balance          decimal.Decimal `json:"balance"`
	// AlreadyCredited is set when the booking had been credited before; nothing moved.
	AlreadyCredited bool `json:"already_credited"`
}

type Payment struct {
	BookingID        int64           `json:"booking_id"`
	Amount           decimal.Decimal `json:"amount"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	ProviderAmount   decimal.Decimal `json:"provider_amount"`
	Method           string          `json:"method"`
	TransactionID    string          `json:"transaction_id"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}
