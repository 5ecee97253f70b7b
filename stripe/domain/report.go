package domain

// ChargeRecord is one payment event from the connected account's ledger,
// reduced to the fields the aggregation reads.
type ChargeRecord struct {
	ID              string `json:"id"`
	Amount          int64  `json:"amount"`
	AmountRefunded  int64  `json:"amountRefunded"`
	Paid            bool   `json:"paid"`
	Refunded        bool   `json:"refunded"`
	Created         int64  `json:"created"`
	Currency        string `json:"currency"`
	Description     string `json:"description"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerCreated int64  `json:"customerCreated"`
}

// PayoutSummary is one payout from the connected account.
type PayoutSummary struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	ArrivalDate int64  `json:"arrivalDate"`
}

// BalanceAmount is a single-currency balance figure.
type BalanceAmount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// BalanceSnapshot is the connected account's balance at report time.
type BalanceSnapshot struct {
	Available []BalanceAmount `json:"available"`
	Pending   []BalanceAmount `json:"pending"`
}

// WindowMetrics are the derived financial metrics over one time window.
// Fees is always zero: true fee totals need the balance-transaction feed,
// which this report does not consume.
type WindowMetrics struct {
	Revenue                 int64   `json:"revenue"`
	Transactions            int     `json:"transactions"`
	RefundsAmount           int64   `json:"refundsAmount"`
	AverageTransactionValue float64 `json:"averageTransactionValue"`
	Fees                    int64   `json:"fees"`
	TotalCustomers          int     `json:"totalCustomers"`
	NewCustomers            int     `json:"newCustomers"`
	ReturningCustomers      int     `json:"returningCustomers"`
}

// Report is the full reporting response for one connected account.
type Report struct {
	StripeAccountID string          `json:"stripeAccountId"`
	ReportDate      string          `json:"reportDate"`
	MTD             WindowMetrics   `json:"mtd"`
	YTD             WindowMetrics   `json:"ytd"`
	RecentCharges   []ChargeRecord  `json:"recentCharges"`
	RecentPayouts   []PayoutSummary `json:"recentPayouts"`
	Balance         BalanceSnapshot `json:"balance"`
}

// AggregateWindow reduces a window's charge set to its base metrics.
func AggregateWindow(charges []ChargeRecord) WindowMetrics {
	var m WindowMetrics

	for _, c := range charges {
		if c.Paid {
			m.Transactions++

			if !c.Refunded {
				m.Revenue += c.Amount
			}
		}

		if c.Refunded {
			m.RefundsAmount += c.AmountRefunded
		}
	}

	if m.Transactions > 0 {
		m.AverageTransactionValue = float64(m.Revenue) / float64(m.Transactions)
	}

	return m
}

// DistinctCustomers counts the distinct non-empty customer emails in a
// charge set.
func DistinctCustomers(charges []ChargeRecord) int {
	emails := make(map[string]struct{})

	for _, c := range charges {
		if c.CustomerEmail != "" {
			emails[c.CustomerEmail] = struct{}{}
		}
	}

	return len(emails)
}

// NewCustomers counts charges whose customer was created on or after the
// window start.
func NewCustomers(charges []ChargeRecord, windowStart int64) int {
	var n int

	for _, c := range charges {
		if c.CustomerCreated != 0 && c.CustomerCreated >= windowStart {
			n++
		}
	}

	return n
}
