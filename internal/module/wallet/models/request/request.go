package request

import "github.com/shopspring/decimal"

// Credit is issued by the booking module when a booking completes.
type Credit struct {
	ProviderUserID int64
	BookingID      int64
	GrossAmount    decimal.Decimal
	CommissionRate decimal.Decimal
	Method         string
}

type Withdrawal struct {
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method" validate:"required,max=50"`
	AccountDetails string          `json:"account_details" validate:"required"`
}

type ResolveWithdrawal struct {
	Decision  string `json:"decision" validate:"required,oneof=approve reject process"`
	AdminNote string `json:"admin_note"`
}

type ListTransactions struct {
	Limit  int
	Offset int
}
