package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterBuyers_EmptyTermKeepsAllInOrder(t *testing.T) {
	buyers := sampleBuyers()

	filtered := FilterBuyers(buyers, "")

	require.Len(t, filtered, 3)
	assert.Equal(t, "BUY001", filtered[0].ID)
	assert.Equal(t, "BUY002", filtered[1].ID)
	assert.Equal(t, "BUY003", filtered[2].ID)
}

func TestFilterBuyers_MatchesName(t *testing.T) {
	filtered := FilterBuyers(sampleBuyers(), "ahmed")

	require.Len(t, filtered, 1)
	assert.Equal(t, "Ahmed Khan", filtered[0].Name)
}

func TestFilterBuyers_MatchesEmail(t *testing.T) {
	filtered := FilterBuyers(sampleBuyers(), "fatima.noor@")

	require.Len(t, filtered, 1)
	assert.Equal(t, "BUY002", filtered[0].ID)
}

func TestFilterBuyers_MatchesPropertyPurchased(t *testing.T) {
	filtered := FilterBuyers(sampleBuyers(), "business hub")

	require.Len(t, filtered, 1)
	assert.Equal(t, "BUY003", filtered[0].ID)
}

func TestFilterBuyers_NoMatches(t *testing.T) {
	filtered := FilterBuyers(sampleBuyers(), "nonexistent")

	assert.Empty(t, filtered)
	assert.NotNil(t, filtered)
}

func TestFilterBuyers_TrimsWhitespace(t *testing.T) {
	filtered := FilterBuyers(sampleBuyers(), "  usman  ")

	require.Len(t, filtered, 1)
	assert.Equal(t, "BUY003", filtered[0].ID)
}
