package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly_JSONRoundTrip(t *testing.T) {
	d := MustDate("2024-03-15")

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(raw))

	var parsed DateOnly
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, d.String(), parsed.String())
}

func TestDateOnly_ScanFromString(t *testing.T) {
	var d DateOnly
	require.NoError(t, d.Scan("2024-03-15"))
	assert.Equal(t, "2024-03-15", d.String())
}
