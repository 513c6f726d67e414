package services

import (
	"errors"
	"strings"

	"plot-sales-backend/db/models"
)

// StatusFilterAll matches every application regardless of status.
const StatusFilterAll = "all"

var validStatusFilters = []string{
	StatusFilterAll,
	string(models.PendingApplication),
	string(models.ApprovedApplication),
	string(models.RejectedApplication),
}

// IsValidStatusFilter validates a status filter value coming off the wire.
func IsValidStatusFilter(filter string) error {
	for _, valid := range validStatusFilters {
		if filter == valid {
			return nil
		}
	}
	return errors.New("invalid status filter")
}

// FilterApplications returns the ordered subsequence of applications matching
// the search term and status filter. The filter is stable: source order is
// preserved and never re-sorted. An empty term matches everything.
func FilterApplications(applications []models.Application, searchTerm, statusFilter string) []models.Application {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]models.Application, 0, len(applications))
	for _, app := range applications {
		if statusFilter != "" && statusFilter != StatusFilterAll && string(app.Status) != statusFilter {
			continue
		}
		if term != "" && !applicationMatches(app, term) {
			continue
		}
		filtered = append(filtered, app)
	}
	return filtered
}

func applicationMatches(app models.Application, term string) bool {
	return strings.Contains(strings.ToLower(app.ApplicantName), term) ||
		strings.Contains(strings.ToLower(app.PropertyName), term) ||
		strings.Contains(strings.ToLower(app.ID), term)
}
