package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateWindow(t *testing.T) {
	tests := []struct {
		name    string
		charges []ChargeRecord
		want    WindowMetrics
	}{
		{
			name:    "empty window",
			charges: nil,
			want:    WindowMetrics{},
		},
		{
			name: "paid and refunded mix",
			charges: []ChargeRecord{
				{Amount: 1000, Paid: true, Refunded: false},
				{Amount: 500, Paid: true, Refunded: true, AmountRefunded: 500},
			},
			want: WindowMetrics{
				Revenue:                 1000,
				Transactions:            2,
				RefundsAmount:           500,
				AverageTransactionValue: 500,
			},
		},
		{
			name: "no refunds sums to zero",
			charges: []ChargeRecord{
				{Amount: 700, Paid: true},
				{Amount: 300, Paid: true},
			},
			want: WindowMetrics{
				Revenue:                 1000,
				Transactions:            2,
				RefundsAmount:           0,
				AverageTransactionValue: 500,
			},
		},
		{
			name: "unpaid charges are ignored",
			charges: []ChargeRecord{
				{Amount: 900, Paid: false},
			},
			want: WindowMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateWindow(tt.charges))
		})
	}
}

func TestAggregateWindowZeroTransactionsAverage(t *testing.T) {
	m := AggregateWindow([]ChargeRecord{{Amount: 100, Paid: false}})

	assert.Zero(t, m.Transactions)
	assert.Zero(t, m.AverageTransactionValue)
}

func TestDistinctCustomers(t *testing.T) {
	charges := []ChargeRecord{
		{CustomerEmail: "a@example.com"},
		{CustomerEmail: "b@example.com"},
		{CustomerEmail: "a@example.com"},
		{CustomerEmail: ""},
	}

	assert.Equal(t, 2, DistinctCustomers(charges))
}

func TestNewCustomers(t *testing.T) {
	monthStart := int64(1700000000)

	charges := []ChargeRecord{
		{CustomerCreated: monthStart},
		{CustomerCreated: monthStart + 100},
		{CustomerCreated: monthStart - 1},
		{CustomerCreated: 0},
	}

	assert.Equal(t, 2, NewCustomers(charges, monthStart))
}
