package services

import (
	"errors"
	"fmt"

	"plot-sales-backend/db/models"

	"github.com/shopspring/decimal"
)

// ErrBadAmount marks a non-numeric or negative amount field. Aggregates are
// trust-sensitive, so a malformed amount fails the whole computation instead
// of being coerced to zero.
var ErrBadAmount = errors.New("malformed application amount")

// CountByStatus partitions applications by status. Every status bucket is
// present in the result; zero is a valid count.
func CountByStatus(applications []models.Application) map[models.ApplicationStatus]int {
	counts := map[models.ApplicationStatus]int{
		models.PendingApplication:  0,
		models.ApprovedApplication: 0,
		models.RejectedApplication: 0,
	}
	for _, app := range applications {
		counts[app.Status]++
	}
	return counts
}

// TotalAppliedAmount sums the amount field across applications. The string
// amounts are parsed into strict decimals here; an empty collection sums to 0.
func TotalAppliedAmount(applications []models.Application) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, app := range applications {
		amount, err := ParseAmount(app.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("application %s: %w", app.ID, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}

// ParseAmount converts a form-captured amount string into a decimal,
// rejecting anything non-numeric or negative.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative value %q", ErrBadAmount, raw)
	}
	return amount, nil
}
