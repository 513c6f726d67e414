package services

import (
	"testing"

	"plot-sales-backend/db/models"
	"plot-sales-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleApplications() []models.Application {
	return []models.Application{
		{
			ID:            "APP001",
			PropertyName:  "Executive Heights Block A",
			ApplicantName: "Ali Raza",
			Email:         "ali.raza@example.com",
			Status:        models.PendingApplication,
			Amount:        "2500000",
			AppliedDate:   utils.MustDate("2024-03-15"),
		},
		{
			ID:            "APP002",
			PropertyName:  "Royal Residency Plot 45",
			ApplicantName: "Sana Malik",
			Email:         "sana.malik@example.com",
			Status:        models.ApprovedApplication,
			Amount:        "1800000",
			AppliedDate:   utils.MustDate("2024-03-10"),
		},
		{
			ID:            "APP003",
			PropertyName:  "Business Hub Office 501",
			ApplicantName: "Kamran Ahmed",
			Email:         "kamran.ahmed@example.com",
			Status:        models.RejectedApplication,
			Amount:        "3200000",
			AppliedDate:   utils.MustDate("2024-03-05"),
		},
	}
}

func TestFilterApplications_EmptyTermAllStatusPreservesOrder(t *testing.T) {
	apps := sampleApplications()

	filtered := FilterApplications(apps, "", StatusFilterAll)

	require.Len(t, filtered, 3)
	assert.Equal(t, "APP001", filtered[0].ID)
	assert.Equal(t, "APP002", filtered[1].ID)
	assert.Equal(t, "APP003", filtered[2].ID)
}

func TestFilterApplications_StatusOnly(t *testing.T) {
	filtered := FilterApplications(sampleApplications(), "", string(models.ApprovedApplication))

	require.Len(t, filtered, 1)
	assert.Equal(t, "APP002", filtered[0].ID)
}

func TestFilterApplications_TermMatchesApplicantName(t *testing.T) {
	filtered := FilterApplications(sampleApplications(), "sana", StatusFilterAll)

	require.Len(t, filtered, 1)
	assert.Equal(t, "Sana Malik", filtered[0].ApplicantName)
}

func TestFilterApplications_TermMatchesPropertyName(t *testing.T) {
	filtered := FilterApplications(sampleApplications(), "royal", StatusFilterAll)

	require.Len(t, filtered, 1)
	assert.Equal(t, "APP002", filtered[0].ID)
}

func TestFilterApplications_TermAndStatusCombine(t *testing.T) {
	// "a" appears in every applicant name, the status narrows it down
	filtered := FilterApplications(sampleApplications(), "a", string(models.PendingApplication))

	require.Len(t, filtered, 1)
	assert.Equal(t, "APP001", filtered[0].ID)
}

func TestFilterApplications_NoMatches(t *testing.T) {
	filtered := FilterApplications(sampleApplications(), "nonexistent", StatusFilterAll)

	assert.Empty(t, filtered)
	assert.NotNil(t, filtered)
}

func TestFilterApplications_Idempotent(t *testing.T) {
	apps := sampleApplications()

	once := FilterApplications(apps, "a", StatusFilterAll)
	twice := FilterApplications(once, "a", StatusFilterAll)

	assert.Equal(t, once, twice)
}

func TestFilterApplications_DoesNotMutateInput(t *testing.T) {
	apps := sampleApplications()

	FilterApplications(apps, "sana", string(models.ApprovedApplication))

	require.Len(t, apps, 3)
	assert.Equal(t, "APP001", apps[0].ID)
}

func TestIsValidStatusFilter(t *testing.T) {
	assert.NoError(t, IsValidStatusFilter("all"))
	assert.NoError(t, IsValidStatusFilter("pending"))
	assert.NoError(t, IsValidStatusFilter("approved"))
	assert.NoError(t, IsValidStatusFilter("rejected"))
	assert.Error(t, IsValidStatusFilter(""))
	assert.Error(t, IsValidStatusFilter("Approved"))
	assert.Error(t, IsValidStatusFilter("cancelled"))
}
