package services

import (
	"strings"

	"plot-sales-backend/db/models"
)

// FilterBuyers narrows the buyers list by a case-insensitive substring match
// over name, email and purchased property. An empty term keeps every record.
// Input order is preserved and the input slice is never mutated.
func FilterBuyers(buyers []models.Buyer, searchTerm string) []models.Buyer {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]models.Buyer, 0, len(buyers))
	for _, buyer := range buyers {
		if buyerMatches(buyer, term) {
			filtered = append(filtered, buyer)
		}
	}
	return filtered
}

func buyerMatches(buyer models.Buyer, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(buyer.Name), term) ||
		strings.Contains(strings.ToLower(buyer.Email), term) ||
		strings.Contains(strings.ToLower(buyer.PropertyPurchased), term)
}
