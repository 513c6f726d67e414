package services

import (
	"testing"

	"plot-sales-backend/db/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByStatus_CoversAllBuckets(t *testing.T) {
	counts := CountByStatus(sampleApplications())

	assert.Equal(t, 1, counts[models.PendingApplication])
	assert.Equal(t, 1, counts[models.ApprovedApplication])
	assert.Equal(t, 1, counts[models.RejectedApplication])
}

func TestCountByStatus_EmptyCollectionHasZeroBuckets(t *testing.T) {
	counts := CountByStatus(nil)

	require.Len(t, counts, 3)
	assert.Equal(t, 0, counts[models.PendingApplication])
	assert.Equal(t, 0, counts[models.ApprovedApplication])
	assert.Equal(t, 0, counts[models.RejectedApplication])
}

func TestCountByStatus_SumsToCollectionSize(t *testing.T) {
	apps := sampleApplications()
	counts := CountByStatus(apps)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(apps), total)
}

func TestTotalAppliedAmount(t *testing.T) {
	total, err := TotalAppliedAmount(sampleApplications())

	require.NoError(t, err)
	assert.Equal(t, "7500000", total.String())
}

func TestTotalAppliedAmount_EmptyCollectionIsZero(t *testing.T) {
	total, err := TotalAppliedAmount(nil)

	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestTotalAppliedAmount_MalformedAmountFailsWhole(t *testing.T) {
	apps := sampleApplications()
	apps[1].Amount = "1.8M"

	_, err := TotalAppliedAmount(apps)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadAmount)
	assert.Contains(t, err.Error(), "APP002")
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("2500000")
	require.NoError(t, err)
	assert.Equal(t, "2500000", amount.String())

	_, err = ParseAmount("not-a-number")
	assert.ErrorIs(t, err, ErrBadAmount)

	_, err = ParseAmount("-100")
	assert.ErrorIs(t, err, ErrBadAmount)

	_, err = ParseAmount("")
	assert.ErrorIs(t, err, ErrBadAmount)
}
