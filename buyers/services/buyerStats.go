package services

import (
	"errors"
	"fmt"

	"plot-sales-backend/db/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTotalAmount marks a buyer whose total amount is zero or
	// negative. Progress is undefined for such a record, it is bad data.
	ErrInvalidTotalAmount = errors.New("buyer total amount must be positive")

	// ErrLedgerMismatch marks a record where paid + remaining != total.
	ErrLedgerMismatch = errors.New("buyer ledger does not balance")
)

var oneHundred = decimal.NewFromInt(100)

// CountByPaymentStatus partitions buyers by payment status. Every status
// bucket is present in the result, zero is a valid count.
func CountByPaymentStatus(buyers []models.Buyer) map[models.BuyerPaymentStatus]int {
	counts := map[models.BuyerPaymentStatus]int{
		models.CurrentBuyer:   0,
		models.OverdueBuyer:   0,
		models.CompletedBuyer: 0,
	}
	for _, buyer := range buyers {
		counts[buyer.PaymentStatus]++
	}
	return counts
}

// TotalPaidAmount sums collected payments across the buyers register.
// An empty register sums to zero.
func TotalPaidAmount(buyers []models.Buyer) decimal.Decimal {
	total := decimal.Zero
	for _, buyer := range buyers {
		total = total.Add(buyer.PaidAmount)
	}
	return total
}

// VerifyBuyerLedger checks the paid + remaining == total invariant.
func VerifyBuyerLedger(buyer *models.Buyer) error {
	if !buyer.PaidAmount.Add(buyer.RemainingAmount).Equal(buyer.TotalAmount) {
		return fmt.Errorf("buyer %s: %w", buyer.ID, ErrLedgerMismatch)
	}
	return nil
}

// PaymentProgress computes round(paid / total * 100) as an integer percentage.
// A non-positive total or an unbalanced ledger is surfaced as an error rather
// than clamped; under a balanced ledger the result always lands in [0, 100].
func PaymentProgress(buyer *models.Buyer) (int, error) {
	if !buyer.TotalAmount.IsPositive() {
		return 0, fmt.Errorf("buyer %s: %w", buyer.ID, ErrInvalidTotalAmount)
	}
	if err := VerifyBuyerLedger(buyer); err != nil {
		return 0, err
	}

	// Half away from zero, same convention the collected amounts are rounded with
	progress := buyer.PaidAmount.Mul(oneHundred).DivRound(buyer.TotalAmount, 0)
	value := int(progress.IntPart())
	if value < 0 || value > 100 {
		return 0, fmt.Errorf("buyer %s: progress %d out of range: %w", buyer.ID, value, ErrLedgerMismatch)
	}
	return value, nil
}
